package Controllers

import (
	"fmt"
	"net/http"
	"testing"

	"Balaji/Models"
)

// saveResponse mirrors the SaveInvoice payload envelope.
type saveResponse struct {
	Message string         `json:"message"`
	Data    Models.Invoice `json:"data"`
}

func TestNewMemoNumberSequence(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/new-memo", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("new-memo status = %d, want 200", resp.StatusCode)
	}
	var draft Models.Invoice
	decodeBody(t, resp, &draft)
	if draft.MemoNo != "SBT-001" {
		t.Errorf("first memo number = %q, want SBT-001", draft.MemoNo)
	}
	if draft.TotalAmount != "0" || draft.FixedAmountDesc != "Fixed Amount" {
		t.Errorf("draft defaults = total %q, fixed amount desc %q", draft.TotalAmount, draft.FixedAmountDesc)
	}

	for _, memo := range []string{"SBT-003", "SBT-005"} {
		inv := Models.NewInvoice()
		inv.MemoNo = memo
		if err := db.Create(&inv).Error; err != nil {
			t.Fatalf("seed memo %s: %v", memo, err)
		}
	}

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/new-memo", nil)
	var next Models.Invoice
	decodeBody(t, resp, &next)
	if next.MemoNo != "SBT-006" {
		t.Errorf("memo number after SBT-005 = %q, want SBT-006", next.MemoNo)
	}
}

func TestSaveInvoiceRecomputesTotals(t *testing.T) {
	app, db := newTestApp(t)

	inv := Models.NewInvoice()
	inv.MemoNo = "SBT-010"
	inv.StartingTime1 = "08:00"
	inv.ClosingTime1 = "13:00"
	inv.MinimumHours1 = "4"
	inv.MinimumCharges1 = "1000"
	inv.AdditionalHourRate = "100"
	inv.StartingKm1 = "100"
	inv.ClosingKm1 = "160"
	inv.DriverBataRate = "12"
	inv.LessAdvance = "500"
	// Stale client-side figures must be replaced on save.
	inv.TotalAmount = "9999"
	inv.TotalAmountInWords = "Bogus"

	resp := doJSON(t, app, http.MethodPost, "/api/invoices", inv)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, want 200", resp.StatusCode)
	}
	var saved saveResponse
	decodeBody(t, resp, &saved)

	if saved.Data.TotalHours != "5" {
		t.Errorf("total hours = %q, want 5", saved.Data.TotalHours)
	}
	if saved.Data.ExtraHours != "1.00" {
		t.Errorf("extra hours = %q, want 1.00", saved.Data.ExtraHours)
	}
	if saved.Data.AdditionalHourAmount != "100" {
		t.Errorf("additional hour amount = %q, want 100", saved.Data.AdditionalHourAmount)
	}
	if saved.Data.TotalKm != "60" {
		t.Errorf("total km = %q, want 60", saved.Data.TotalKm)
	}
	if saved.Data.DriverBataAmount != "60.00" {
		t.Errorf("driver bata amount = %q, want 60.00", saved.Data.DriverBataAmount)
	}
	if saved.Data.TotalAmount != "1160.00" {
		t.Errorf("total amount = %q, want 1160.00", saved.Data.TotalAmount)
	}
	if saved.Data.Balance != "660.00" {
		t.Errorf("balance = %q, want 660.00", saved.Data.Balance)
	}
	if saved.Data.TotalAmountInWords != "One Thousand One Hundred Sixty Rupees Only" {
		t.Errorf("amount in words = %q", saved.Data.TotalAmountInWords)
	}

	var stored Models.Invoice
	if err := db.First(&stored, "memo_no = ?", "SBT-010").Error; err != nil {
		t.Fatalf("load stored memo: %v", err)
	}
	if stored.TotalAmount != "1160.00" {
		t.Errorf("stored total = %q, want 1160.00", stored.TotalAmount)
	}
}

func TestSavedInvoiceIsSnapshot(t *testing.T) {
	app, db := newTestApp(t)

	inv := Models.NewInvoice()
	inv.MemoNo = "SBT-020"
	inv.MinimumCharges1 = "500"
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", inv)
	var saved saveResponse
	decodeBody(t, resp, &saved)
	if saved.Data.TotalAmount != "500.00" {
		t.Fatalf("total amount = %q, want 500.00", saved.Data.TotalAmount)
	}

	// Rate-table edits after the fact must not touch stored memos.
	rate := Models.Calculation{
		TypeCategory:   "Transport_TATA ACE_Area 1",
		MinimumCharges: "9000",
	}
	if err := db.Create(&rate).Error; err != nil {
		t.Fatalf("seed rate: %v", err)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/invoices/SBT-020", nil)
	var reread Models.Invoice
	decodeBody(t, resp, &reread)
	if reread.TotalAmount != "500.00" || reread.MinimumCharges1 != "500" {
		t.Errorf("stored memo changed: total %q, minimum charges %q", reread.TotalAmount, reread.MinimumCharges1)
	}
}

func TestSaveInvoiceGeneratesMemoWhenBlank(t *testing.T) {
	app, _ := newTestApp(t)

	inv := Models.NewInvoice()
	inv.MemoNo = ""
	resp := doJSON(t, app, http.MethodPost, "/api/invoices", inv)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, want 200", resp.StatusCode)
	}
	var saved saveResponse
	decodeBody(t, resp, &saved)
	if saved.Data.MemoNo != "SBT-001" {
		t.Errorf("generated memo = %q, want SBT-001", saved.Data.MemoNo)
	}
}

func TestGetInvoiceNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/invoices/SBT-404", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/invoices/SBT-404", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("delete status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSelectServicePopulatesLine(t *testing.T) {
	app, db := newTestApp(t)

	area := Models.Area{LocationArea: "Guindy", LocationCategory: "Area 1"}
	if err := db.Create(&area).Error; err != nil {
		t.Fatalf("seed area: %v", err)
	}
	rate := Models.Calculation{
		TypeCategory:          "Transport_TATA ACE_Area 1",
		MinimumHours:          "4",
		MinimumKm:             "40",
		MinimumCharges:        "1000",
		AdditionalHourCharges: "100",
		RunningHours:          "1",
		DriverBata:            "60",
	}
	if err := db.Create(&rate).Error; err != nil {
		t.Fatalf("seed rate: %v", err)
	}

	req := SelectServiceRequest{
		Line:        1,
		ProductItem: "Transport_Area_1_Guindy_TATA_ACE",
		Invoice:     Models.NewInvoice(),
	}
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/select-service", req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("select-service status = %d, want 200", resp.StatusCode)
	}
	var out Models.Invoice
	decodeBody(t, resp, &out)
	if out.ProductItem != "Transport_Area_1_Guindy_TATA_ACE" {
		t.Errorf("product item = %q", out.ProductItem)
	}
	if out.MinimumHours1 != "4" || out.MinimumCharges1 != "1000" {
		t.Errorf("line 1 = hours %q, charges %q", out.MinimumHours1, out.MinimumCharges1)
	}
	if out.AdditionalHourRate != "100" || out.DriverBataRate != "60" {
		t.Errorf("rates = additional hour %q, bata %q", out.AdditionalHourRate, out.DriverBataRate)
	}
	if out.VehicleType != "TATA ACE" {
		t.Errorf("vehicle type = %q, want TATA ACE", out.VehicleType)
	}
	if out.TotalAmount != "1000.00" {
		t.Errorf("total amount = %q, want 1000.00", out.TotalAmount)
	}

	// An unknown key clears the line instead of failing.
	req.ProductItem = "Transport_Area_9_Nowhere_DOST"
	req.Invoice = out
	resp = doJSON(t, app, http.MethodPost, "/api/invoices/select-service", req)
	decodeBody(t, resp, &out)
	if out.ProductItem != "" || out.MinimumCharges1 != "0" || out.VehicleType != "" {
		t.Errorf("reset line 1 = item %q, charges %q, vehicle %q", out.ProductItem, out.MinimumCharges1, out.VehicleType)
	}

	req.Line = 3
	resp = doJSON(t, app, http.MethodPost, "/api/invoices/select-service", req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("line 3 status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestApplyCustomerDiscountRule(t *testing.T) {
	app, db := newTestApp(t)

	customers := []Models.Customer{
		{Name: "ACME Transport Pvt Ltd", Address1: "12 Mount Road", Address2: "Chennai"},
		{Name: "Blue Dart", Address1: "5 Beach Road"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
	}

	req := ApplyCustomerRequest{Name: "ACME Transport Pvt Ltd", Invoice: Models.NewInvoice()}
	resp := doJSON(t, app, http.MethodPost, "/api/invoices/customer", req)
	var out Models.Invoice
	decodeBody(t, resp, &out)
	if out.DiscountPercentage != "10" {
		t.Errorf("transport customer discount = %q, want 10", out.DiscountPercentage)
	}
	if out.Address1 != "12 Mount Road" || out.Address2 != "Chennai" {
		t.Errorf("addresses = %q, %q", out.Address1, out.Address2)
	}

	req = ApplyCustomerRequest{Name: "Blue Dart", Invoice: Models.NewInvoice()}
	resp = doJSON(t, app, http.MethodPost, "/api/invoices/customer", req)
	decodeBody(t, resp, &out)
	if out.DiscountPercentage != "0" {
		t.Errorf("plain customer discount = %q, want 0", out.DiscountPercentage)
	}
	if out.Address1 != "5 Beach Road" {
		t.Errorf("address1 = %q, want 5 Beach Road", out.Address1)
	}
}

func TestCustomerIDsAreNotReused(t *testing.T) {
	app, db := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", Models.Customer{Name: "First Mover"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created Models.Customer
	decodeBody(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("created customer has zero id")
	}

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/customers", Models.Customer{Name: "Second Mover"})
	var recreated Models.Customer
	decodeBody(t, resp, &recreated)
	if recreated.ID <= created.ID {
		t.Errorf("reused id %d after deleting %d", recreated.ID, created.ID)
	}

	var count int64
	db.Model(&Models.Customer{}).Count(&count)
	if count != 1 {
		t.Errorf("customer count = %d, want 1", count)
	}
}

func TestGetCustomerAddresses(t *testing.T) {
	app, db := newTestApp(t)

	if err := db.Create(&Models.Customer{Name: "Madras Movers", Address1: "1 Anna Salai", Address2: "Chennai"}).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/customers/addresses?name=madras", nil)
	var addresses []map[string]string
	decodeBody(t, resp, &addresses)
	if len(addresses) != 1 {
		t.Fatalf("addresses = %d, want 1", len(addresses))
	}
	if addresses[0]["address1"] != "1 Anna Salai" || addresses[0]["address2"] != "Chennai" {
		t.Errorf("addresses[0] = %v", addresses[0])
	}

	resp = doJSON(t, app, http.MethodGet, "/api/customers/addresses?name=nomatch", nil)
	decodeBody(t, resp, &addresses)
	if len(addresses) != 0 {
		t.Errorf("addresses for miss = %d, want 0", len(addresses))
	}
}

func TestGetServicesSearch(t *testing.T) {
	app, db := newTestApp(t)

	areas := []Models.Area{
		{LocationArea: "Guindy", LocationCategory: "Area 1"},
		{LocationArea: "Porur", LocationCategory: "Area 2"},
	}
	for i := range areas {
		if err := db.Create(&areas[i]).Error; err != nil {
			t.Fatalf("seed area: %v", err)
		}
	}
	rates := []Models.Calculation{
		{TypeCategory: "Transport_TATA ACE_Area 1", MinimumCharges: "1000"},
		{TypeCategory: "Transport_TATA ACE_Area 2", MinimumCharges: "1200"},
	}
	for i := range rates {
		if err := db.Create(&rates[i]).Error; err != nil {
			t.Fatalf("seed rate: %v", err)
		}
	}

	resp := doJSON(t, app, http.MethodGet, "/api/services", nil)
	var all []map[string]interface{}
	decodeBody(t, resp, &all)
	if len(all) != 2 {
		t.Fatalf("unfiltered services = %d, want 2", len(all))
	}

	resp = doJSON(t, app, http.MethodGet, "/api/services?search=porur", nil)
	var filtered []map[string]interface{}
	decodeBody(t, resp, &filtered)
	if len(filtered) != 1 {
		t.Fatalf("filtered services = %d, want 1", len(filtered))
	}
	if filtered[0]["locationArea"] != "Porur" {
		t.Errorf("filtered area = %v, want Porur", filtered[0]["locationArea"])
	}
}
