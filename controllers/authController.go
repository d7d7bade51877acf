package controllers

import (
	"net/mail"
	"strings"

	"autoparts-invoicing/database"
	"autoparts-invoicing/middlewares"
	"autoparts-invoicing/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
	}

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}
	if err := user.ComparePassword(input.Password); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := middlewares.GenerateJWT(user.Id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create session")
	}
	middlewares.SetSessionCookie(c, token)

	return c.JSON(models.LoginResponse{
		Message: "Login successful",
		User:    user.Info(),
	})
}

func Logout(c *fiber.Ctx) error {
	middlewares.ClearSessionCookie(c)
	return c.JSON(models.Message{Message: "Logout successful"})
}

// CheckAuth reports session state without ever failing with 401, so an
// unauthenticated client can probe before deciding what to render.
func CheckAuth(c *fiber.Ctx) error {
	userID := middlewares.SessionUserID(c)
	if userID == "" {
		return c.JSON(models.AuthCheck{Authenticated: false})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.JSON(models.AuthCheck{Authenticated: false})
	}
	info := user.Info()
	return c.JSON(models.AuthCheck{Authenticated: true, User: &info})
}

func CurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "user not found")
	}
	return c.JSON(user.Info())
}
