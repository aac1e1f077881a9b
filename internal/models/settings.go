package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Settings — configuration unique de la loja (une seule ligne en base)
type Settings struct {
	ID              gocql.UUID `json:"id" db:"id"`
	WhatsappNumber  string     `json:"whatsapp_number" db:"whatsapp_number"`
	StoreName       string     `json:"store_name" db:"store_name"`
	StoreAddress    string     `json:"store_address,omitempty" db:"store_address"`
	DeliveryFee     float64    `json:"delivery_fee" db:"delivery_fee"`
	IsOpen          bool       `json:"is_open" db:"is_open"`
	PixKey          string     `json:"pix_key,omitempty" db:"pix_key"`
	OpeningTime     string     `json:"opening_time" db:"opening_time"`
	ClosingTime     string     `json:"closing_time" db:"closing_time"`
	ClosedMessage   string     `json:"closed_message,omitempty" db:"closed_message"`
	MaintenanceMode bool       `json:"maintenance_mode" db:"maintenance_mode"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
