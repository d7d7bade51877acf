package controllers

import (
	"time"

	"autoparts-invoicing/database"
	"autoparts-invoicing/models"
	"autoparts-invoicing/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats aggregates sales figures: previous-month overview,
// a 12-month sales series, and the top 10 products by revenue.
func GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	db, err := database.RequestDB(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstOfLastMonth := firstOfThisMonth.AddDate(0, -1, 0)
	twelveMonthsAgo := now.AddDate(0, 0, -365)

	var overview struct {
		TotalSales  float64
		NumInvoices int
	}
	if err := db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total), 0) AS total_sales, COUNT(*) AS num_invoices").
		Where("user_id = ? AND invoice_date >= ? AND invoice_date < ?", userID, firstOfLastMonth, firstOfThisMonth).
		Scan(&overview).Error; err != nil {
		return err
	}

	avg := 0.0
	if overview.NumInvoices > 0 {
		avg = utils.Round2(overview.TotalSales / float64(overview.NumInvoices))
	}

	monthly := []models.MonthlySale{}
	if err := db.Model(&models.Invoice{}).
		Select("to_char(invoice_date, 'YYYY-MM') AS month, SUM(total) AS total").
		Where("user_id = ? AND invoice_date >= ?", userID, twelveMonthsAgo).
		Group("month").Order("month").
		Scan(&monthly).Error; err != nil {
		return err
	}

	products := []models.ProductSales{}
	if err := db.Model(&models.InvoiceLineItem{}).
		Select("invoice_line_items.product_name AS product, SUM(invoice_line_items.line_total) AS revenue").
		Joins("JOIN invoices ON invoices.id = invoice_line_items.invoice_id").
		Where("invoices.user_id = ? AND invoices.invoice_date >= ?", userID, twelveMonthsAgo).
		Group("invoice_line_items.product_name").
		Order("revenue DESC").Limit(10).
		Scan(&products).Error; err != nil {
		return err
	}

	return c.JSON(models.DashboardStats{
		Overview: models.Overview{
			TotalSales:    utils.Round2(overview.TotalSales),
			NumInvoices:   overview.NumInvoices,
			AvgOrderValue: avg,
			Period:        "Last Month",
		},
		MonthlySales: monthly,
		TopProducts:  products,
	})
}
