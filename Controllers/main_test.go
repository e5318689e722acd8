package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Balaji/Models"
)

// newTestDB opens a fresh in-memory database for one test. The shared-cache
// DSN keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// newTestApp wires the full route table onto a fresh database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	app := fiber.New()

	customerController := NewCustomerController(db)
	invoiceController := NewInvoiceController(db)
	serviceController := NewServiceController(db)
	backupController := NewBackupController(db)

	api := app.Group("/api")
	customers := api.Group("/customers")
	customers.Get("/", customerController.GetCustomers)
	customers.Get("/addresses", customerController.GetCustomerAddresses)
	customers.Post("/", customerController.CreateCustomer)
	customers.Delete("/:id", customerController.DeleteCustomer)

	services := api.Group("/services")
	services.Get("/", serviceController.GetServices)

	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceController.GetInvoices)
	invoices.Get("/new-memo", invoiceController.NewMemoNumber)
	invoices.Post("/recalculate", invoiceController.RecalculateInvoice)
	invoices.Post("/select-service", invoiceController.SelectService)
	invoices.Post("/customer", invoiceController.ApplyCustomer)
	invoices.Get("/:memoNo", invoiceController.GetInvoice)
	invoices.Post("/", invoiceController.SaveInvoice)
	invoices.Delete("/:memoNo", invoiceController.DeleteInvoice)

	backup := api.Group("/backup")
	backup.Get("/export", backupController.ExportDatabase)
	backup.Post("/import", backupController.ImportDatabase)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
