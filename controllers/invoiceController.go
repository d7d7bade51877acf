package controllers

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"autoparts-invoicing/database"
	"autoparts-invoicing/middlewares"
	"autoparts-invoicing/models"
	"autoparts-invoicing/pdf"
	"autoparts-invoicing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaxRate returns the fractional sales-tax rate the server applies at
// invoice creation. TAX_RATE_PERCENT overrides the default 8.25.
func TaxRate() float64 {
	if v := os.Getenv("TAX_RATE_PERCENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f / 100
		}
	}
	return models.DefaultTaxRate
}

// nextInvoiceSequence derives the next per-day sequence from the highest
// existing invoice number with the same YYYYMMDD- prefix ("" means none).
func nextInvoiceSequence(last string) int {
	parts := strings.SplitN(last, "-", 2)
	if len(parts) != 2 {
		return 1
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil || seq < 1 {
		return 1
	}
	return seq + 1
}

// generateInvoiceNumber produces numbers in the format YYYYMMDD-001,
// incrementing per user per day.
func generateInvoiceNumber(db *gorm.DB, userID string) (string, error) {
	prefix := time.Now().UTC().Format("20060102") + "-"

	var last models.Invoice
	err := db.Where("user_id = ? AND invoice_number LIKE ?", userID, prefix+"%").
		Order("invoice_number DESC").First(&last).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, nextInvoiceSequence(last.InvoiceNumber)), nil
}

// parseDate accepts calendar dates and full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func GetInvoices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	query := db.Model(&models.Invoice{}).Where("invoices.user_id = ?", userID)

	if v := c.Query("start_date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid start_date")
		}
		query = query.Where("invoice_date >= ?", t)
	}
	if v := c.Query("end_date"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid end_date")
		}
		query = query.Where("invoice_date <= ?", t)
	}
	if v := c.Query("status"); v != "" {
		if !models.InvoiceStatus(v).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
		}
		query = query.Where("status = ?", v)
	}
	if v := c.Query("customer_id"); v != "" {
		query = query.Where("customer_id = ?", v)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	page := utils.ParseIntDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	perPage := utils.ParseIntDefault(c.Query("per_page"), 20)
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var invoices []models.Invoice
	if err := query.Preload("Customer").
		Order("invoice_date DESC").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&invoices).Error; err != nil {
		return err
	}

	summaries := make([]models.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		summaries = append(summaries, models.InvoiceSummary{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   inv.InvoiceDate,
			CustomerID:    inv.CustomerID,
			CustomerName:  inv.Customer.Name,
			Total:         inv.Total,
			Status:        inv.Status,
			Notes:         inv.Notes,
		})
	}

	return c.JSON(models.InvoiceList{
		Data:    summaries,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func GetInvoice(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var invoice models.Invoice
	if err := db.Preload("Customer").Preload("LineItems").
		Where("id = ? AND user_id = ?", c.Params("id"), userID).
		First(&invoice).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return err
	}
	return c.JSON(invoice)
}

func CreateInvoice(c *fiber.Ctx) error {
	var input models.InvoiceInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	if input.CustomerID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Customer is required")
	}

	items := input.ValidLineItems()
	if len(items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "At least one line item is required")
	}

	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	// Customer must exist and belong to the caller.
	var customer models.Customer
	if err := db.Where("id = ? AND user_id = ?", input.CustomerID, userID).First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return err
	}

	rate := TaxRate()
	totals := models.ComputeTotals(items, rate)

	invoiceDate := time.Now().UTC()
	if input.InvoiceDate != "" {
		invoiceDate, err = parseDate(input.InvoiceDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid invoice_date")
		}
	}

	status := input.Status
	if status == "" {
		status = models.StatusUnpaid
	}

	number, err := generateInvoiceNumber(db, userID)
	if err != nil {
		return err
	}

	lineItems := make([]models.InvoiceLineItem, 0, len(items))
	for _, li := range items {
		lineItems = append(lineItems, models.InvoiceLineItem{
			ProductName: strings.TrimSpace(li.ProductName),
			PartNumber:  strings.TrimSpace(li.PartNumber),
			Quantity:    li.Quantity,
			UnitPrice:   utils.Round2(li.UnitPrice),
			LineTotal:   models.LineTotal(li),
		})
	}

	invoice := models.Invoice{
		UserID:        userID,
		InvoiceNumber: number,
		CustomerID:    customer.ID,
		InvoiceDate:   invoiceDate,
		LineItems:     lineItems,
		Subtotal:      totals.Subtotal,
		TaxRate:       utils.Round2(rate * 100), // stored/echoed as percent
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        status,
		Notes:         strings.TrimSpace(input.Notes),
	}

	if err := db.Create(&invoice).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Could not create invoice")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Invoice created successfully",
		"data": models.InvoiceCreated{
			ID:            invoice.ID,
			InvoiceNumber: invoice.InvoiceNumber,
			Total:         invoice.Total,
		},
	})
}

// UpdateInvoice changes status and/or notes; everything else is immutable
// once created.
func UpdateInvoice(c *fiber.Ctx) error {
	var input models.InvoiceUpdate
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	if input.Status != nil && !input.Status.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var invoice models.Invoice
	if err := db.Preload("Customer").Preload("LineItems").
		Where("id = ? AND user_id = ?", c.Params("id"), userID).
		First(&invoice).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return err
	}

	updates := map[string]any{}
	if input.Status != nil {
		updates["status"] = *input.Status
		invoice.Status = *input.Status
	}
	if input.Notes != nil {
		trimmed := strings.TrimSpace(*input.Notes)
		updates["notes"] = trimmed
		invoice.Notes = trimmed
	}
	if len(updates) > 0 {
		if err := db.Model(&models.Invoice{}).Where("id = ?", invoice.ID).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not update invoice")
		}
	}
	return c.JSON(invoice)
}

// DownloadInvoicePDF renders the invoice as a PDF attachment.
func DownloadInvoicePDF(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	var invoice models.Invoice
	if err := db.Preload("Customer").Preload("LineItems").
		Where("id = ? AND user_id = ?", c.Params("id"), userID).
		First(&invoice).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Invoice not found")
		}
		return err
	}

	var business models.BusinessInfo
	if err := db.Where("user_id = ?", userID).First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusBadRequest, "Business info not configured")
		}
		return err
	}

	doc, err := pdf.RenderInvoice(&invoice, &business)
	if err != nil {
		return fmt.Errorf("render invoice pdf: %w", err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Invoice_%s.pdf"`, invoice.InvoiceNumber))
	return c.Send(doc)
}
