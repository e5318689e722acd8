package FiberConfig

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Balaji/Controllers"
	"Balaji/config"
	"Balaji/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	customerController := Controllers.NewCustomerController(db)
	areaController := Controllers.NewAreaController(db)
	calculationController := Controllers.NewCalculationController(db)
	lookupController := Controllers.NewLookupController(db)
	serviceController := Controllers.NewServiceController(db)
	invoiceController := Controllers.NewInvoiceController(db)
	backupController := Controllers.NewBackupController(db)

	// API group
	api := app.Group("/api")

	// Customer routes
	customers := api.Group("/customers")
	customers.Get("/", customerController.GetCustomers)
	customers.Get("/addresses", customerController.GetCustomerAddresses)
	customers.Post("/", customerController.CreateCustomer)
	customers.Put("/:id", customerController.UpdateCustomer)
	customers.Delete("/:id", customerController.DeleteCustomer)

	// Area routes
	areas := api.Group("/areas")
	areas.Get("/", areaController.GetAreas)
	areas.Post("/", areaController.CreateArea)
	areas.Put("/:id", areaController.UpdateArea)
	areas.Delete("/:id", areaController.DeleteArea)

	// Rate table routes
	calculations := api.Group("/calculations")
	calculations.Get("/", calculationController.GetCalculations)
	calculations.Post("/", calculationController.CreateCalculation)
	calculations.Put("/:id", calculationController.UpdateCalculation)
	calculations.Delete("/:id", calculationController.DeleteCalculation)

	// Driver lookup routes
	lookup := api.Group("/lookup")
	lookup.Get("/", lookupController.GetLookupRecords)
	lookup.Post("/", lookupController.CreateLookupRecord)
	lookup.Put("/:id", lookupController.UpdateLookupRecord)
	lookup.Delete("/:id", lookupController.DeleteLookupRecord)

	// Generated service catalog
	services := api.Group("/services")
	services.Get("/", serviceController.GetServices)
	services.Get("/export", serviceController.ExportServices)

	// Memo routes - fixed paths before the memoNo route to avoid conflicts
	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceController.GetInvoices)
	invoices.Get("/new-memo", invoiceController.NewMemoNumber)
	invoices.Get("/export", invoiceController.ExportInvoices)
	invoices.Post("/recalculate", invoiceController.RecalculateInvoice)
	invoices.Post("/select-service", invoiceController.SelectService)
	invoices.Post("/customer", invoiceController.ApplyCustomer)
	invoices.Get("/:memoNo", invoiceController.GetInvoice)
	invoices.Post("/", invoiceController.SaveInvoice)
	invoices.Delete("/:memoNo", invoiceController.DeleteInvoice)

	// Printable memo document
	app.Get("/invoices/:memoNo/print", invoiceController.PrintInvoice)
	app.Get("/invoices/:memoNo/pdf", invoiceController.DownloadInvoice)

	// Whole-database backup
	backup := api.Group("/backup")
	backup.Get("/export", backupController.ExportDatabase)
	backup.Post("/import", backupController.ImportDatabase)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func FiberConfig(db *gorm.DB, cfg config.Config) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(middleware.ErrorLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db)

	if err := app.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
