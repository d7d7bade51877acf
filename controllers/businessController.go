package controllers

import (
	"autoparts-invoicing/database"
	"autoparts-invoicing/middlewares"
	"autoparts-invoicing/models"
	"autoparts-invoicing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetBusinessInfo(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var business models.BusinessInfo
	if err := db.Where("user_id = ?", userID).First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Business info not found")
		}
		return err
	}
	return c.JSON(business)
}

// UpsertBusinessInfo creates the business profile on first save and
// updates it in place afterwards. It is never deleted.
func UpsertBusinessInfo(c *fiber.Ctx) error {
	var input models.BusinessInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)
	if input.CompanyName == "" || input.Address == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Company name and address are required")
	}

	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var business models.BusinessInfo
	err = db.Where("user_id = ?", userID).First(&business).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	business.UserID = userID
	business.CompanyName = input.CompanyName
	business.Address = input.Address
	business.Phone = input.Phone
	business.Email = input.Email
	business.TaxID = input.TaxID
	business.LogoURL = input.LogoURL

	if err := db.Save(&business).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not save business info")
	}
	return c.JSON(business)
}
