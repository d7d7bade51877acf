package database

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestRequestDBPrefersRequestTx(t *testing.T) {
	tx := &gorm.DB{}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("tx", tx)
		got, err := RequestDB(c)
		if err != nil {
			t.Errorf("RequestDB: %v", err)
		}
		if got != tx {
			t.Error("RequestDB did not return the request-bound transaction")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestRequestDBWithoutTxOrConnection(t *testing.T) {
	prev := DB
	DB = nil
	defer func() { DB = prev }()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := RequestDB(c); err == nil {
			t.Error("expected an error with no TX and no connection")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
}
