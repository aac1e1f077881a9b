package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID  `json:"id" db:"id"`
	CategoryID  *gocql.UUID `json:"category_id,omitempty" db:"category_id"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description,omitempty" db:"description"`
	Price       float64     `json:"price" db:"price"`
	ImageURL    string      `json:"image_url,omitempty" db:"image_url"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	IsFeatured  bool        `json:"is_featured" db:"is_featured"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`

	// Champs joints côté lecture (promotion active + variations)
	Promotion  *Promotion         `json:"promotion,omitempty"`
	Variations []ProductVariation `json:"variations,omitempty"`
}

type ProductVariation struct {
	ID        gocql.UUID `json:"id" db:"id"`
	ProductID gocql.UUID `json:"product_id" db:"product_id"`
	Name      string     `json:"name" db:"name"`
	Price     float64    `json:"price" db:"price"`
	SortOrder int        `json:"sort_order" db:"sort_order"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
