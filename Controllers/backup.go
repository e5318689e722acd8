package Controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Balaji/Models"
)

// BackupController exports and imports the whole dataset as one JSON
// document keyed by collection name.
type BackupController struct {
	DB *gorm.DB
}

// NewBackupController creates a new BackupController
func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

var backupCollections = []string{"invoices", "customers", "areas", "calculations", "lookup"}

// ExportDatabase downloads every collection in one JSON document.
// GET /api/backup/export
func (c *BackupController) ExportDatabase(ctx *fiber.Ctx) error {
	var invoices []Models.Invoice
	var customers []Models.Customer
	var areas []Models.Area
	var calculations []Models.Calculation
	var lookup []Models.Lookup

	for _, query := range []error{
		c.DB.Find(&invoices).Error,
		c.DB.Find(&customers).Error,
		c.DB.Find(&areas).Error,
		c.DB.Find(&calculations).Error,
		c.DB.Find(&lookup).Error,
	} {
		if query != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export database"})
		}
	}

	filename := fmt.Sprintf("sbt-backup-%s.json", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.JSON(fiber.Map{
		"invoices":     invoices,
		"customers":    customers,
		"areas":        areas,
		"calculations": calculations,
		"lookup":       lookup,
	})
}

// importDocument mirrors the export shape.
type importDocument struct {
	Invoices     []Models.Invoice     `json:"invoices"`
	Customers    []Models.Customer    `json:"customers"`
	Areas        []Models.Area        `json:"areas"`
	Calculations []Models.Calculation `json:"calculations"`
	Lookup       []Models.Lookup      `json:"lookup"`
}

// ImportDatabase replaces every collection with the uploaded document. The
// document is validated in full before anything is cleared, and the replace
// runs in one transaction, so a malformed file never leaves partial state.
// Synthetic ids are discarded so storage assigns fresh ones; the caller must
// reload any in-memory state afterward.
// POST /api/backup/import
func (c *BackupController) ImportDatabase(ctx *fiber.Ctx) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(ctx.Body(), &raw); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid database file", "message": err.Error()})
	}

	for _, name := range backupCollections {
		payload, ok := raw[name]
		if !ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid database file",
				"message": fmt.Sprintf("missing collection %q", name),
			})
		}
		var probe []json.RawMessage
		if err := json.Unmarshal(payload, &probe); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid database file",
				"message": fmt.Sprintf("collection %q is not a list", name),
			})
		}
	}

	var doc importDocument
	if err := json.Unmarshal(ctx.Body(), &doc); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid database file", "message": err.Error()})
	}

	// Drop synthetic ids so sqlite assigns fresh ones on insert.
	for i := range doc.Customers {
		doc.Customers[i].ID = 0
	}
	for i := range doc.Areas {
		doc.Areas[i].ID = 0
	}
	for i := range doc.Calculations {
		doc.Calculations[i].ID = 0
	}
	for i := range doc.Lookup {
		doc.Lookup[i].ID = 0
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&Models.Invoice{}, &Models.Customer{}, &Models.Area{},
			&Models.Calculation{}, &Models.Lookup{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		if len(doc.Invoices) > 0 {
			if err := tx.CreateInBatches(doc.Invoices, 50).Error; err != nil {
				return err
			}
		}
		if len(doc.Customers) > 0 {
			if err := tx.CreateInBatches(doc.Customers, 50).Error; err != nil {
				return err
			}
		}
		if len(doc.Areas) > 0 {
			if err := tx.CreateInBatches(doc.Areas, 50).Error; err != nil {
				return err
			}
		}
		if len(doc.Calculations) > 0 {
			if err := tx.CreateInBatches(doc.Calculations, 50).Error; err != nil {
				return err
			}
		}
		if len(doc.Lookup) > 0 {
			if err := tx.CreateInBatches(doc.Lookup, 50).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to import database", "message": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Database imported successfully"})
}
