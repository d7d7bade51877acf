// Command seed populates the database with a demo user, business profile,
// customers and sample invoices for local development.
package main

import (
	"fmt"
	"time"

	"autoparts-invoicing/config"
	"autoparts-invoicing/database"
	"autoparts-invoicing/models"
	"autoparts-invoicing/utils"
)

const (
	seedEmail    = "admin@autoparts.com"
	seedPassword = "admin123"
)

func main() {
	log := config.GetLogger()

	database.Connect()
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	var existing models.User
	if err := database.DB.Where("email = ?", seedEmail).First(&existing).Error; err == nil {
		log.Info("database already seeded")
		return
	}

	user := models.User{Name: "Admin User", Email: seedEmail}
	user.SetPassword(seedPassword)
	if err := database.DB.Create(&user).Error; err != nil {
		log.WithError(err).Fatal("could not create user")
	}

	business := models.BusinessInfo{
		UserID:      user.Id,
		CompanyName: "AutoParts Pro Shop",
		Address:     "123 Main Street\nSpringfield, IL 62701",
		Phone:       "(555) 123-4567",
		Email:       "contact@autopartspro.com",
		TaxID:       "12-3456789",
	}
	if err := database.DB.Create(&business).Error; err != nil {
		log.WithError(err).Fatal("could not create business info")
	}

	customers := []models.Customer{
		{UserID: user.Id, Name: "John's Auto Repair", Address: "456 Oak Avenue\nSpringfield, IL 62702", Phone: "(555) 234-5678", Email: "john@johnsauto.com"},
		{UserID: user.Id, Name: "Smith Motors", Address: "789 Elm Street\nSpringfield, IL 62703", Phone: "(555) 345-6789", Email: "info@smithmotors.com"},
		{UserID: user.Id, Name: "Quick Fix Garage", Address: "321 Pine Road\nSpringfield, IL 62704", Phone: "(555) 456-7890", Email: "service@quickfix.com"},
	}
	if err := database.DB.Create(&customers).Error; err != nil {
		log.WithError(err).Fatal("could not create customers")
	}

	samples := []struct {
		customer models.Customer
		daysAgo  int
		status   models.InvoiceStatus
		items    []models.LineItemInput
	}{
		{customers[0], 30, models.StatusPaid, []models.LineItemInput{
			{ProductName: "Brake Pads", PartNumber: "BP-2031", Quantity: 2, UnitPrice: 45.99},
			{ProductName: "Oil Filter", PartNumber: "OF-118", Quantity: 4, UnitPrice: 8.50},
		}},
		{customers[1], 14, models.StatusUnpaid, []models.LineItemInput{
			{ProductName: "Alternator", PartNumber: "ALT-550", Quantity: 1, UnitPrice: 189.00},
		}},
		{customers[2], 3, models.StatusUnpaid, []models.LineItemInput{
			{ProductName: "Spark Plugs", PartNumber: "SP-09", Quantity: 8, UnitPrice: 6.25},
			{ProductName: "Air Filter", PartNumber: "AF-77", Quantity: 1, UnitPrice: 19.99},
		}},
	}

	for i, s := range samples {
		totals := models.ComputeTotals(s.items, models.DefaultTaxRate)
		date := time.Now().UTC().AddDate(0, 0, -s.daysAgo)

		lineItems := make([]models.InvoiceLineItem, 0, len(s.items))
		for _, li := range s.items {
			lineItems = append(lineItems, models.InvoiceLineItem{
				ProductName: li.ProductName,
				PartNumber:  li.PartNumber,
				Quantity:    li.Quantity,
				UnitPrice:   li.UnitPrice,
				LineTotal:   models.LineTotal(li),
			})
		}

		invoice := models.Invoice{
			UserID:        user.Id,
			InvoiceNumber: fmt.Sprintf("%s-%03d", date.Format("20060102"), i+1),
			CustomerID:    s.customer.ID,
			InvoiceDate:   date,
			LineItems:     lineItems,
			Subtotal:      totals.Subtotal,
			TaxRate:       utils.Round2(models.DefaultTaxRate * 100),
			TaxAmount:     totals.TaxAmount,
			Total:         totals.Total,
			Status:        s.status,
		}
		if err := database.DB.Create(&invoice).Error; err != nil {
			log.WithError(err).Fatal("could not create invoice")
		}
	}

	log.WithField("email", seedEmail).Info("seeded demo data")
}
