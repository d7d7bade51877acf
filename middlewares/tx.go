package middlewares

import (
	"autoparts-invoicing/config"
	"autoparts-invoicing/database"

	"github.com/gofiber/fiber/v2"
)

// RequestTx opens a per-request DB transaction. Order: run AFTER
// IsAuthenticated() (so userID is present) and AFTER Idempotency()
// (so idempotency records aren't tied to the handler TX).
func RequestTx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		// Ensure we always cleanup.
		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				config.GetLogger().WithError(e).Error("tx commit failed")
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		// Make the TX available to handlers via database.RequestDB(c).
		c.Locals("tx", tx)

		err = c.Next()
		return err
	}
}
