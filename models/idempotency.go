package models

import (
	"time"

	"gorm.io/datatypes"
)

// IdempotencyKey stores the first successful response for a given request
// hash, scoped to the issuing user.
type IdempotencyKey struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Key            string         `json:"key" gorm:"size:128;uniqueIndex"` // header value
	RequestHash    string         `json:"request_hash" gorm:"size:64"`     // sha256 of method|path|body|user
	Method         string         `json:"method" gorm:"size:10"`
	Path           string         `json:"path" gorm:"size:255"`
	UserID         string         `json:"user_id" gorm:"size:128;index"`
	ResponseStatus int            `json:"response_status"` // 0 => not completed yet
	ResponseBody   datatypes.JSON `json:"-" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at"`
	CompletedAt    *time.Time     `json:"completed_at"`
}
