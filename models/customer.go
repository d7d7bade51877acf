package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"-" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// CustomerInput is the POST /customers payload.
type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// CustomerUpdate is the PUT /customers/:id payload; nil fields are left untouched.
type CustomerUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}
