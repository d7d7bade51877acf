// Package pdf renders invoices as printable PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"autoparts-invoicing/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	marginX = 12.7 // 0.5in in mm
	marginY = 12.7
)

// RenderInvoice produces a letter-format PDF for the given invoice and
// the issuing business. Customer and LineItems must be populated.
func RenderInvoice(inv *models.Invoice, business *models.BusinessInfo) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(marginX, marginY, marginX)
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	usable := pageWidth - 2*marginX

	// Title
	doc.SetFont("Arial", "B", 24)
	doc.SetTextColor(31, 41, 55)
	doc.CellFormat(usable, 12, "INVOICE", "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Business block (left) and invoice block (right)
	top := doc.GetY()
	doc.SetFont("Arial", "B", 10)
	doc.SetTextColor(55, 65, 81)
	doc.MultiCell(usable/2, 5, business.CompanyName, "", "L", false)
	doc.SetFont("Arial", "", 10)
	doc.MultiCell(usable/2, 5, business.Address, "", "L", false)
	if business.Phone != "" {
		doc.MultiCell(usable/2, 5, "Phone: "+business.Phone, "", "L", false)
	}
	if business.Email != "" {
		doc.MultiCell(usable/2, 5, "Email: "+business.Email, "", "L", false)
	}
	if business.TaxID != "" {
		doc.MultiCell(usable/2, 5, "Tax ID: "+business.TaxID, "", "L", false)
	}
	leftBottom := doc.GetY()

	doc.SetXY(marginX+usable/2, top)
	doc.SetFont("Arial", "", 10)
	right := []string{
		"Invoice #: " + inv.InvoiceNumber,
		"Date: " + inv.InvoiceDate.Format("2006-01-02"),
		"Status: " + strings.ToUpper(string(inv.Status)),
	}
	for _, line := range right {
		doc.SetX(marginX + usable/2)
		doc.CellFormat(usable/2, 5, line, "", 1, "R", false, 0, "")
	}
	if doc.GetY() < leftBottom {
		doc.SetY(leftBottom)
	}
	doc.Ln(6)

	// Bill To
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(usable, 6, "Bill To:", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.MultiCell(usable, 5, inv.Customer.Name, "", "L", false)
	if inv.Customer.Address != "" {
		doc.MultiCell(usable, 5, inv.Customer.Address, "", "L", false)
	}
	if inv.Customer.Phone != "" {
		doc.MultiCell(usable, 5, "Phone: "+inv.Customer.Phone, "", "L", false)
	}
	if inv.Customer.Email != "" {
		doc.MultiCell(usable, 5, "Email: "+inv.Customer.Email, "", "L", false)
	}
	doc.Ln(6)

	// Line item table
	colWidths := []float64{usable * 0.40, usable * 0.18, usable * 0.10, usable * 0.16, usable * 0.16}
	headers := []string{"Product", "Part #", "Qty", "Unit Price", "Line Total"}

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(243, 244, 246)
	for i, h := range headers {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		doc.CellFormat(colWidths[i], 7, h, "1", 0, align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	for _, item := range inv.LineItems {
		doc.CellFormat(colWidths[0], 6, item.ProductName, "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidths[1], 6, item.PartNumber, "1", 0, "L", false, 0, "")
		doc.CellFormat(colWidths[2], 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[3], 6, fmt.Sprintf("$%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(colWidths[4], 6, fmt.Sprintf("$%.2f", item.LineTotal), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block, right aligned
	labelW := usable * 0.68
	valueW := usable * 0.32
	writeTotal := func(label, value string, bold bool) {
		if bold {
			doc.SetFont("Arial", "B", 10)
		} else {
			doc.SetFont("Arial", "", 10)
		}
		doc.CellFormat(labelW, 6, label, "", 0, "R", false, 0, "")
		doc.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal:", fmt.Sprintf("$%.2f", inv.Subtotal), false)
	writeTotal(fmt.Sprintf("Tax (%.2f%%):", inv.TaxRate), fmt.Sprintf("$%.2f", inv.TaxAmount), false)
	writeTotal("Total:", fmt.Sprintf("$%.2f", inv.Total), true)

	if inv.Notes != "" {
		doc.Ln(6)
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(usable, 6, "Notes:", "", 1, "L", false, 0, "")
		doc.SetFont("Arial", "", 10)
		doc.MultiCell(usable, 5, inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
