package database

import (
	"fmt"

	"autoparts-invoicing/models"

	"gorm.io/gorm"
)

// Migrate applies idempotent schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column types (NUMERIC(12,2))
// - Basic CHECK constraints on line items
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.BusinessInfo{},
			&models.Customer{},
			&models.Invoice{},
			&models.InvoiceLineItem{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE invoices           ALTER COLUMN subtotal   TYPE numeric(12,2)`,
			`ALTER TABLE invoices           ALTER COLUMN tax_amount TYPE numeric(12,2)`,
			`ALTER TABLE invoices           ALTER COLUMN total      TYPE numeric(12,2)`,
			`ALTER TABLE invoice_line_items ALTER COLUMN unit_price TYPE numeric(12,2)`,
			`ALTER TABLE invoice_line_items ALTER COLUMN line_total TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money column alter failed: %w", err)
			}
		}

		// --- CHECK constraints (added once) ---
		checks := []string{
			`DO $$ BEGIN
				ALTER TABLE invoice_line_items ADD CONSTRAINT chk_line_items_quantity CHECK (quantity > 0);
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
			`DO $$ BEGIN
				ALTER TABLE invoice_line_items ADD CONSTRAINT chk_line_items_unit_price CHECK (unit_price >= 0);
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
			`DO $$ BEGIN
				ALTER TABLE invoices ADD CONSTRAINT chk_invoices_status CHECK (status IN ('paid','unpaid'));
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint failed: %w", err)
			}
		}

		return nil
	})
}
