package Controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Balaji/Billing"
	"Balaji/Models"
)

// ServiceController exposes the generated service catalog. Catalog entries
// are never stored; every request regenerates them from the current areas
// and rate table, so a reference-table edit is visible on the next read.
type ServiceController struct {
	DB *gorm.DB
}

// NewServiceController creates a new ServiceController
func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

func (c *ServiceController) loadCatalog() ([]Billing.ServiceItem, error) {
	var areas []Models.Area
	if err := c.DB.Find(&areas).Error; err != nil {
		return nil, err
	}
	var rates []Models.Calculation
	if err := c.DB.Find(&rates).Error; err != nil {
		return nil, err
	}
	return Billing.GenerateCatalog(areas, rates), nil
}

// GetServices returns the catalog, optionally filtered with ?search= which
// matches any column, case-insensitively.
// GET /api/services
func (c *ServiceController) GetServices(ctx *fiber.Ctx) error {
	items, err := c.loadCatalog()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate services"})
	}

	search := strings.ToLower(ctx.Query("search"))
	if search != "" {
		filtered := make([]Billing.ServiceItem, 0, len(items))
		for _, item := range items {
			if serviceMatches(item, search) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return ctx.JSON(items)
}

func serviceMatches(item Billing.ServiceItem, search string) bool {
	for _, field := range []string{
		item.LocationArea, item.LocationCategory, item.BrandVehicleLabel,
		item.ProductItemKey, item.MinimumHours, item.MinimumKm,
		item.MinimumCharges, item.AdditionalHourCharge, item.RunningHours,
		item.DriverBata, item.VehicleType,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// ExportServices downloads the catalog as an xlsx workbook.
// GET /api/services/export
func (c *ServiceController) ExportServices(ctx *fiber.Ctx) error {
	items, err := c.loadCatalog()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate services"})
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Services"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headers := []string{
		"Location Area", "Location Category", "Vehicle Type", "Product Item",
		"Min Hours", "Min KM", "Min Charges", "Add. Hour Charge", "Running Hours", "Driver Bata",
	}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for row, item := range items {
		values := []string{
			item.LocationArea, item.LocationCategory, item.BrandVehicleLabel,
			item.ProductItemKey, item.MinimumHours, item.MinimumKm,
			item.MinimumCharges, item.AdditionalHourCharge, item.RunningHours,
			item.DriverBata,
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

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "services.xlsx"))
	return ctx.Send(buf.Bytes())
}
