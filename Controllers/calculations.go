package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Balaji/Models"
)

// CalculationController handles the rate-record reference table.
type CalculationController struct {
	DB *gorm.DB
}

// NewCalculationController creates a new CalculationController
func NewCalculationController(db *gorm.DB) *CalculationController {
	return &CalculationController{DB: db}
}

// GetCalculations retrieves all rate records
func (c *CalculationController) GetCalculations(ctx *fiber.Ctx) error {
	var calculations []Models.Calculation
	if err := c.DB.Find(&calculations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve calculations"})
	}
	return ctx.JSON(calculations)
}

// CreateCalculation creates a new rate record
func (c *CalculationController) CreateCalculation(ctx *fiber.Ctx) error {
	var calculation Models.Calculation
	if err := ctx.BodyParser(&calculation); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	calculation.ID = 0

	if err := validate.Struct(calculation); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	if err := c.DB.Create(&calculation).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create calculation"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(calculation)
}

// UpdateCalculation updates an existing rate record
func (c *CalculationController) UpdateCalculation(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid calculation ID"})
	}

	var calculation Models.Calculation
	if err := c.DB.First(&calculation, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calculation not found"})
	}

	var input Models.Calculation
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	input.ID = calculation.ID
	if err := c.DB.Save(&input).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update calculation"})
	}
	return ctx.JSON(input)
}

// DeleteCalculation removes a rate record by ID
func (c *CalculationController) DeleteCalculation(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid calculation ID"})
	}

	result := c.DB.Delete(&Models.Calculation{}, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete calculation"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calculation not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Calculation deleted successfully"})
}
