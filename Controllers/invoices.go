package Controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Balaji/Billing"
	"Balaji/Models"
)

// InvoiceController handles trip memos. Every write path recomputes the
// derived fields from the raw inputs before persisting, so the stored memo
// is always internally consistent.
type InvoiceController struct {
	DB       *gorm.DB
	Services *ServiceController
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(db *gorm.DB) *InvoiceController {
	return &InvoiceController{DB: db, Services: NewServiceController(db)}
}

// GetInvoices retrieves all memos, newest first
func (c *InvoiceController) GetInvoices(ctx *fiber.Ctx) error {
	var invoices []Models.Invoice
	if err := c.DB.Order("memo_no DESC").Find(&invoices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}
	return ctx.JSON(invoices)
}

// GetInvoice retrieves one memo by memo number
// GET /api/invoices/:memoNo
func (c *InvoiceController) GetInvoice(ctx *fiber.Ctx) error {
	var invoice Models.Invoice
	err := c.DB.First(&invoice, "memo_no = ?", ctx.Params("memoNo")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return ctx.JSON(invoice)
}

// NewMemoNumber returns the next free memo number and the blank memo
// defaults for a fresh form.
// GET /api/invoices/new-memo
func (c *InvoiceController) NewMemoNumber(ctx *fiber.Ctx) error {
	memoNo, err := Models.NextMemoNumber(c.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate memo number"})
	}

	invoice := Models.NewInvoice()
	invoice.MemoNo = memoNo
	return ctx.JSON(invoice)
}

// SaveInvoice upserts a memo keyed by its memo number, assigning a fresh
// number when none is given. Derived fields in the payload are ignored and
// recomputed server-side.
// POST /api/invoices
func (c *InvoiceController) SaveInvoice(ctx *fiber.Ctx) error {
	var invoice Models.Invoice
	if err := ctx.BodyParser(&invoice); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}

	if invoice.MemoNo == "" {
		memoNo, err := Models.NextMemoNumber(c.DB)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate memo number"})
		}
		invoice.MemoNo = memoNo
	}

	Billing.Recalculate(&invoice)

	if err := c.DB.Save(&invoice).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save invoice"})
	}
	return ctx.JSON(fiber.Map{"message": "Invoice saved successfully", "data": invoice})
}

// DeleteInvoice removes a memo. Its number is never handed out again.
// DELETE /api/invoices/:memoNo
func (c *InvoiceController) DeleteInvoice(ctx *fiber.Ctx) error {
	result := c.DB.Delete(&Models.Invoice{}, "memo_no = ?", ctx.Params("memoNo"))
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete invoice"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Invoice deleted successfully"})
}

// RecalculateInvoice derives all computed fields for the posted raw inputs
// without persisting anything. The form calls this after every relevant
// change and replaces its derived values wholesale with the response.
// POST /api/invoices/recalculate
func (c *InvoiceController) RecalculateInvoice(ctx *fiber.Ctx) error {
	var invoice Models.Invoice
	if err := ctx.BodyParser(&invoice); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	Billing.Recalculate(&invoice)
	return ctx.JSON(invoice)
}

// SelectServiceRequest carries a service pick for memo line 1 or 2.
type SelectServiceRequest struct {
	Line        int            `json:"line"`
	ProductItem string         `json:"product_item"`
	Invoice     Models.Invoice `json:"invoice"`
}

// SelectService applies a catalog item to a memo line and recomputes the
// totals. An unknown or empty product item resets the line - the item may
// simply no longer exist in the catalog.
// POST /api/invoices/select-service
func (c *InvoiceController) SelectService(ctx *fiber.Ctx) error {
	var req SelectServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	if req.Line != 1 && req.Line != 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": "line must be 1 or 2"})
	}

	catalog, err := c.Services.loadCatalog()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate services"})
	}

	Billing.ApplyService(&req.Invoice, catalog, req.Line, req.ProductItem)
	Billing.Recalculate(&req.Invoice)
	return ctx.JSON(req.Invoice)
}

// ApplyCustomerRequest carries a customer-name change for a memo.
type ApplyCustomerRequest struct {
	Name    string         `json:"name"`
	Invoice Models.Invoice `json:"invoice"`
}

// ApplyCustomer sets the customer on a memo, autofills addresses and applies
// the transport-discount rule, then recomputes the totals.
// POST /api/invoices/customer
func (c *InvoiceController) ApplyCustomer(ctx *fiber.Ctx) error {
	var req ApplyCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}

	var customers []Models.Customer
	if err := c.DB.Find(&customers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve customers"})
	}

	Billing.ApplyCustomer(&req.Invoice, req.Name, customers)
	Billing.Recalculate(&req.Invoice)
	return ctx.JSON(req.Invoice)
}

// ExportInvoices downloads the memo register as an xlsx workbook.
// GET /api/invoices/export
func (c *InvoiceController) ExportInvoices(ctx *fiber.Ctx) error {
	var invoices []Models.Invoice
	if err := c.DB.Order("memo_no ASC").Find(&invoices).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Memos"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headers := []string{
		"Memo No", "Date", "Vehicle No", "Vehicle Type", "Customer",
		"Total Hours", "Total KM", "Total Amount", "Less Advance", "Balance",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		file.SetCellValue(sheet, cell, header)
	}
	for row, invoice := range invoices {
		values := []string{
			invoice.MemoNo, invoice.OperatedDate, invoice.VehicleNo, invoice.VehicleType,
			invoice.CustomerName, invoice.TotalHours, invoice.TotalKm,
			invoice.TotalAmount, invoice.LessAdvance, invoice.Balance,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write workbook"})
	}

	filename := fmt.Sprintf("memos-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(buf.Bytes())
}

// PrintInvoice renders the printable memo document.
// GET /invoices/:memoNo/print
func (c *InvoiceController) PrintInvoice(ctx *fiber.Ctx) error {
	return c.renderInvoice(ctx, false)
}

// DownloadInvoice renders the printable memo and starts the platform print
// dialog once the document has loaded. "Download PDF" is exactly this: the
// print view plus an immediate print request.
// GET /invoices/:memoNo/pdf
func (c *InvoiceController) DownloadInvoice(ctx *fiber.Ctx) error {
	return c.renderInvoice(ctx, true)
}

func (c *InvoiceController) renderInvoice(ctx *fiber.Ctx, autoPrint bool) error {
	var invoice Models.Invoice
	err := c.DB.First(&invoice, "memo_no = ?", ctx.Params("memoNo")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return ctx.Render("invoice", fiber.Map{
		"Invoice":   invoice,
		"AutoPrint": autoPrint,
	})
}
