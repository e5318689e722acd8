package Billing

import (
	"reflect"
	"testing"

	"Balaji/Models"
)

func testAreas() []Models.Area {
	return []Models.Area{
		{LocationArea: "Guindy", LocationCategory: "Area 1"},
		{LocationArea: "Chengalpet", LocationCategory: "Area 7"},
	}
}

func testRates() []Models.Calculation {
	return []Models.Calculation{
		{TypeCategory: "Transport_1000 Kg_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "600", AdditionalHourCharges: "180", RunningHours: "0", DriverBata: "25"},
		{TypeCategory: "VIKING_TATA ACE_Area 1", MinimumHours: "2", MinimumKm: "20", MinimumCharges: "600", AdditionalHourCharges: "160", RunningHours: "0", DriverBata: "25"},
		{TypeCategory: "VIKING_TATA ACE_Area 7", MinimumHours: "5.5", MinimumKm: "110", MinimumCharges: "1900", AdditionalHourCharges: "180", RunningHours: "2.5", DriverBata: "25"},
	}
}

func TestGenerateCatalogJoinsAndSkips(t *testing.T) {
	items := GenerateCatalog(testAreas(), testRates())

	// 2 areas x 9 vehicle types x 2 brands = 36 combinations, 3 priced.
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	// Iteration order is area, then vehicle type, then brand.
	wantKeys := []string{
		"VIKING_Area_1_Guindy_TATA_ACE",
		"Transport_Area_1_Guindy_1000_Kg",
		"VIKING_Area_7_Chengalpet_TATA_ACE",
	}
	for i, want := range wantKeys {
		if items[i].ProductItemKey != want {
			t.Errorf("items[%d].ProductItemKey = %q, want %q", i, items[i].ProductItemKey, want)
		}
	}

	if items[1].BrandVehicleLabel != "Transport - 1000 Kg" {
		t.Errorf("BrandVehicleLabel = %q, want %q", items[1].BrandVehicleLabel, "Transport - 1000 Kg")
	}
	if items[1].MinimumCharges != "600" || items[1].AdditionalHourCharge != "180" {
		t.Errorf("rate fields not carried over: %+v", items[1])
	}
}

func TestGenerateCatalogVikingDriverBataOverride(t *testing.T) {
	items := GenerateCatalog(testAreas(), testRates())

	for _, item := range items {
		switch item.ProductItemKey {
		case "VIKING_Area_1_Guindy_TATA_ACE":
			// VIKING outside Chengalpet: bata forced to zero.
			if item.DriverBata != "0" {
				t.Errorf("Guindy VIKING DriverBata = %q, want %q", item.DriverBata, "0")
			}
		case "VIKING_Area_7_Chengalpet_TATA_ACE":
			// Chengalpet keeps the rate-table value.
			if item.DriverBata != "25" {
				t.Errorf("Chengalpet VIKING DriverBata = %q, want %q", item.DriverBata, "25")
			}
		case "Transport_Area_1_Guindy_1000_Kg":
			if item.DriverBata != "25" {
				t.Errorf("Transport DriverBata = %q, want %q", item.DriverBata, "25")
			}
		}
	}
}

func TestGenerateCatalogIdempotent(t *testing.T) {
	areas, rates := testAreas(), testRates()
	first := GenerateCatalog(areas, rates)
	second := GenerateCatalog(areas, rates)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("catalog generation is not idempotent:\n%v\n%v", first, second)
	}
}

func TestGenerateCatalogDuplicateRatesLastWins(t *testing.T) {
	rates := append(testRates(), Models.Calculation{
		TypeCategory: "Transport_1000 Kg_Area 1", MinimumCharges: "999",
	})
	items := GenerateCatalog(testAreas(), rates)
	item, ok := FindServiceItem(items, "Transport_Area_1_Guindy_1000_Kg")
	if !ok {
		t.Fatal("expected item missing from catalog")
	}
	if item.MinimumCharges != "999" {
		t.Errorf("MinimumCharges = %q, want the later duplicate's %q", item.MinimumCharges, "999")
	}
}

func TestGenerateCatalogIgnoresMalformedRateKeys(t *testing.T) {
	rates := []Models.Calculation{
		{TypeCategory: "not-a-composite-key", MinimumCharges: "100"},
		{TypeCategory: "Transport_1000 Kg", MinimumCharges: "100"},
	}
	if items := GenerateCatalog(testAreas(), rates); len(items) != 0 {
		t.Errorf("got %d items from malformed rate keys, want 0", len(items))
	}
}

func TestProductItemKey(t *testing.T) {
	got := ProductItemKey("Transport", "Area 1", "Vadapalani Bus Stand", "1000 Kg")
	want := "Transport_Area_1_Vadapalani_Bus_Stand_1000_Kg"
	if got != want {
		t.Errorf("ProductItemKey = %q, want %q", got, want)
	}
}
