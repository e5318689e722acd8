package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Balaji/Models"
)

// LookupController handles the driver reference table.
type LookupController struct {
	DB *gorm.DB
}

// NewLookupController creates a new LookupController
func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

// GetLookupRecords retrieves all driver records
func (c *LookupController) GetLookupRecords(ctx *fiber.Ctx) error {
	var records []Models.Lookup
	if err := c.DB.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve lookup records"})
	}
	return ctx.JSON(records)
}

// CreateLookupRecord creates a new driver record
func (c *LookupController) CreateLookupRecord(ctx *fiber.Ctx) error {
	var record Models.Lookup
	if err := ctx.BodyParser(&record); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	record.ID = 0

	if err := validate.Struct(record); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	if err := c.DB.Create(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lookup record"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(record)
}

// UpdateLookupRecord updates an existing driver record
func (c *LookupController) UpdateLookupRecord(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lookup ID"})
	}

	var record Models.Lookup
	if err := c.DB.First(&record, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lookup record not found"})
	}

	var input Models.Lookup
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	input.ID = record.ID
	if err := c.DB.Save(&input).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lookup record"})
	}
	return ctx.JSON(input)
}

// DeleteLookupRecord removes a driver record by ID
func (c *LookupController) DeleteLookupRecord(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lookup ID"})
	}

	result := c.DB.Delete(&Models.Lookup{}, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lookup record"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lookup record not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Lookup record deleted successfully"})
}
