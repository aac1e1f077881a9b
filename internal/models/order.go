package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
	OrderTypeTable    = "table"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentPix  = "pix"
)

type Order struct {
	ID                gocql.UUID `json:"id" db:"id"`
	OrderNumber       string     `json:"order_number" db:"order_number"`
	CustomerName      string     `json:"customer_name" db:"customer_name"`
	CustomerPhone     string     `json:"customer_phone" db:"customer_phone"`
	OrderType         string     `json:"order_type" db:"order_type"`
	TableNumber       int        `json:"table_number,omitempty" db:"table_number"`
	Address           string     `json:"address,omitempty" db:"address"`
	AddressComplement string     `json:"address_complement,omitempty" db:"address_complement"`
	Items             []CartItem `json:"items"`
	Subtotal          float64    `json:"subtotal" db:"subtotal"`
	DeliveryFee       float64    `json:"delivery_fee" db:"delivery_fee"`
	Total             float64    `json:"total" db:"total"`
	Status            string     `json:"status" db:"status"`
	PaymentMethod     string     `json:"payment_method" db:"payment_method"`
	NeedChange        bool       `json:"need_change" db:"need_change"`
	ChangeAmount      float64    `json:"change_amount,omitempty" db:"change_amount"`
	Notes             string     `json:"notes,omitempty" db:"notes"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}
