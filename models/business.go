package models

import "time"

// BusinessInfo holds the invoicing party's own details. One row per user;
// created on first save, updated in place afterwards.
type BusinessInfo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"-" gorm:"uniqueIndex;not null"`
	CompanyName string    `json:"company_name" gorm:"not null"`
	Address     string    `json:"address" gorm:"not null"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	TaxID       string    `json:"tax_id"`
	LogoURL     string    `json:"logo_url" gorm:"size:500"`
	UpdatedAt   time.Time `json:"-"`
}

// BusinessInput is the PUT /business payload.
type BusinessInput struct {
	CompanyName string `json:"company_name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	TaxID       string `json:"tax_id"`
	LogoURL     string `json:"logo_url"`
}
