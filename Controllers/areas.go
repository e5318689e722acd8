package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Balaji/Models"
)

// AreaController handles the location-area reference table.
type AreaController struct {
	DB *gorm.DB
}

// NewAreaController creates a new AreaController
func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

// GetAreas retrieves all areas
func (c *AreaController) GetAreas(ctx *fiber.Ctx) error {
	var areas []Models.Area
	if err := c.DB.Find(&areas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve areas"})
	}
	return ctx.JSON(areas)
}

// CreateArea creates a new area
func (c *AreaController) CreateArea(ctx *fiber.Ctx) error {
	var area Models.Area
	if err := ctx.BodyParser(&area); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	area.ID = 0

	if err := validate.Struct(area); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	if err := c.DB.Create(&area).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create area"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(area)
}

// UpdateArea updates an existing area
func (c *AreaController) UpdateArea(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid area ID"})
	}

	var area Models.Area
	if err := c.DB.First(&area, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Area not found"})
	}

	var input Models.Area
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	area.LocationArea = input.LocationArea
	area.LocationCategory = input.LocationCategory

	if err := c.DB.Save(&area).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update area"})
	}
	return ctx.JSON(area)
}

// DeleteArea removes an area by ID
func (c *AreaController) DeleteArea(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid area ID"})
	}

	result := c.DB.Delete(&Models.Area{}, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete area"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Area not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Area deleted successfully"})
}
