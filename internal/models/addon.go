package models

import (
	"time"

	"github.com/gocql/gocql"
)

// CategoryAddon — extra optionnel par catégorie (ex: borda recheada, bacon)
type CategoryAddon struct {
	ID         gocql.UUID `json:"id" db:"id"`
	CategoryID gocql.UUID `json:"category_id" db:"category_id"`
	Name       string     `json:"name" db:"name"`
	Price      float64    `json:"price" db:"price"`
	SortOrder  int        `json:"sort_order" db:"sort_order"`
	IsActive   bool       `json:"is_active" db:"is_active"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
