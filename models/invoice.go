package models

import (
	"strings"
	"time"
)

// InvoiceStatus is the two-state payment lifecycle of an invoice.
// Transitions paid<->unpaid are both allowed and always user-triggered.
type InvoiceStatus string

const (
	StatusUnpaid InvoiceStatus = "unpaid"
	StatusPaid   InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == StatusUnpaid || s == StatusPaid
}

// Invoice is the stored document. Subtotal/TaxAmount/Total are computed
// server-side at creation time and are authoritative from then on.
type Invoice struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	UserID        string   `json:"-" gorm:"index;not null"`
	InvoiceNumber string   `json:"invoice_number" gorm:"unique;not null;index"`
	CustomerID    uint     `json:"customer_id" gorm:"not null"`
	Customer      Customer `json:"customer" gorm:"foreignKey:CustomerID;references:ID"`

	InvoiceDate time.Time `json:"invoice_date"`

	LineItems []InvoiceLineItem `json:"line_items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	Subtotal  float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
	TaxRate   float64 `json:"tax_rate"` // percent, e.g. 8.25
	TaxAmount float64 `json:"tax_amount" gorm:"type:numeric(12,2)"`
	Total     float64 `json:"total" gorm:"type:numeric(12,2)"`

	Status InvoiceStatus `json:"status" gorm:"type:VARCHAR(20);not null;default:unpaid"`
	Notes  string        `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type InvoiceLineItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	InvoiceID   uint    `json:"-" gorm:"index"`
	ProductName string  `json:"product_name" gorm:"not null"`
	PartNumber  string  `json:"part_number"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	LineTotal   float64 `json:"line_total" gorm:"type:numeric(12,2)"`
}

// LineItemInput is one line of an invoice creation payload.
type LineItemInput struct {
	ProductName string  `json:"product_name"`
	PartNumber  string  `json:"part_number"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Valid reports whether the line counts towards totals and submission:
// non-empty product name, positive quantity, non-negative unit price.
func (li LineItemInput) Valid() bool {
	return strings.TrimSpace(li.ProductName) != "" && li.Quantity > 0 && li.UnitPrice >= 0
}

// InvoiceInput is the POST /invoices payload. InvoiceDate is an ISO date
// string; empty means "now". Status defaults to unpaid.
type InvoiceInput struct {
	CustomerID  uint            `json:"customer_id" validate:"required"`
	InvoiceDate string          `json:"invoice_date"`
	LineItems   []LineItemInput `json:"line_items" validate:"required,min=1"`
	Notes       string          `json:"notes"`
	Status      InvoiceStatus   `json:"status" validate:"omitempty,oneof=unpaid paid"`
}

// ValidLineItems returns the lines that pass LineItemInput.Valid,
// preserving order. Invalid lines are silently dropped.
func (in InvoiceInput) ValidLineItems() []LineItemInput {
	var out []LineItemInput
	for _, li := range in.LineItems {
		if li.Valid() {
			out = append(out, li)
		}
	}
	return out
}

// InvoiceUpdate is the PUT /invoices/:id payload (status/notes only).
type InvoiceUpdate struct {
	Status *InvoiceStatus `json:"status" validate:"omitempty,oneof=unpaid paid"`
	Notes  *string        `json:"notes"`
}

// InvoiceSummary is one row of GET /invoices.
type InvoiceSummary struct {
	ID            uint          `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	InvoiceDate   time.Time     `json:"invoice_date"`
	CustomerID    uint          `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	Total         float64       `json:"total"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes"`
}

// InvoiceList is the GET /invoices envelope.
type InvoiceList struct {
	Data    []InvoiceSummary `json:"data"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// InvoiceCreated is the POST /invoices acknowledgement.
type InvoiceCreated struct {
	ID            uint    `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	Total         float64 `json:"total"`
}
