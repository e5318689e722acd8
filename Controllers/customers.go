package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Balaji/Models"
)

// CustomerController handles customer CRUD and the address autofill lookup.
type CustomerController struct {
	DB *gorm.DB
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetCustomers retrieves all customers
func (c *CustomerController) GetCustomers(ctx *fiber.Ctx) error {
	var customers []Models.Customer
	if err := c.DB.Find(&customers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve customers"})
	}
	return ctx.JSON(customers)
}

// GetCustomerAddresses returns the addresses of every customer whose name
// contains the queried name, case-insensitively. The invoice form uses the
// first entry for autofill.
// GET /api/customers/addresses?name=
func (c *CustomerController) GetCustomerAddresses(ctx *fiber.Ctx) error {
	name := strings.ToLower(ctx.Query("name"))

	var customers []Models.Customer
	if err := c.DB.Find(&customers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve customers"})
	}

	addresses := []fiber.Map{}
	for _, customer := range customers {
		if strings.Contains(strings.ToLower(customer.Name), name) {
			addresses = append(addresses, fiber.Map{
				"address1": customer.Address1,
				"address2": customer.Address2,
			})
		}
	}
	return ctx.JSON(addresses)
}

// CreateCustomer creates a new customer
func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var customer Models.Customer
	if err := ctx.BodyParser(&customer); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	customer.ID = 0

	if err := validate.Struct(customer); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	if err := c.DB.Create(&customer).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create customer"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(customer)
}

// UpdateCustomer updates an existing customer
func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var customer Models.Customer
	if err := c.DB.First(&customer, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	var input Models.Customer
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "message": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Validation failed", "message": err.Error()})
	}

	customer.Name = input.Name
	customer.Address1 = input.Address1
	customer.Address2 = input.Address2

	if err := c.DB.Save(&customer).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer"})
	}
	return ctx.JSON(customer)
}

// DeleteCustomer removes a customer by ID
func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	result := c.DB.Delete(&Models.Customer{}, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete customer"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Customer deleted successfully"})
}
