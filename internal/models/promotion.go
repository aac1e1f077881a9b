package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Promotion struct {
	ID              gocql.UUID `json:"id" db:"id"`
	ProductID       gocql.UUID `json:"product_id" db:"product_id"`
	DiscountPercent float64    `json:"discount_percent" db:"discount_percent"`
	StartsAt        time.Time  `json:"starts_at" db:"starts_at"`
	EndsAt          *time.Time `json:"ends_at,omitempty" db:"ends_at"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
