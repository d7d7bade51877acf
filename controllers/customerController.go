package controllers

import (
	"autoparts-invoicing/database"
	"autoparts-invoicing/middlewares"
	"autoparts-invoicing/models"
	"autoparts-invoicing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCustomers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	customers := []models.Customer{}
	if err := db.Where("user_id = ?", userID).Order("name").Find(&customers).Error; err != nil {
		return err
	}
	return c.JSON(customers)
}

func CreateCustomer(c *fiber.Ctx) error {
	var input models.CustomerInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)
	if input.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Customer name is required")
	}

	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	customer := models.Customer{
		UserID:  userID,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	if err := db.Create(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func UpdateCustomer(c *fiber.Ctx) error {
	var input models.CustomerUpdate
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)
	if input.Name != nil && *input.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Customer name is required")
	}

	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var customer models.Customer
	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) > 0 {
		if err := db.Model(&customer).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not update customer")
		}
	}
	return c.JSON(customer)
}

// DeleteCustomer refuses to delete a customer that still has invoices;
// there is no cascade.
func DeleteCustomer(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var customer models.Customer
	if err := db.Where("id = ? AND user_id = ?", c.Params("id"), userID).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return err
	}

	var invoiceCount int64
	if err := db.Model(&models.Invoice{}).Where("customer_id = ?", customer.ID).Count(&invoiceCount).Error; err != nil {
		return err
	}
	if invoiceCount > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot delete customer with existing invoices")
	}

	if err := db.Delete(&customer).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not delete customer")
	}
	return c.JSON(models.Message{Message: "Customer deleted successfully"})
}
