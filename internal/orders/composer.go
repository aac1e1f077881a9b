// Package orders compose les pedidos (validation, numéro humain, texto
// WhatsApp déterministe) et porte la machine à états des statuts.
package orders

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/cart"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// ValidationError — erreur de saisie détectée avant tout appel externe.
// Les handlers la traduisent en 400 sans toucher à l'état.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// CustomerInfo — identification du client pour le pedido.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Fulfillment — canal de retrait du pedido.
type Fulfillment struct {
	OrderType         string `json:"order_type"`
	TableNumber       int    `json:"table_number"`
	Address           string `json:"address"`
	AddressComplement string `json:"address_complement"`
}

// PaymentInfo — méthode de paiement, purement informative (le règlement
// se fait hors système : dinheiro, cartão ou PIX à la remise).
type PaymentInfo struct {
	Method       string  `json:"method"`
	NeedChange   bool    `json:"need_change"`
	ChangeAmount float64 `json:"change_amount"`
}

// ComposeInput regroupe tout ce que le checkout fournit.
type ComposeInput struct {
	Cart          cart.Cart
	Customer      CustomerInfo
	Fulfillment   Fulfillment
	Payment       PaymentInfo
	Notes         string
	AcceptedTerms bool
}

// Compose valide la saisie et construit le pedido persistable plus son
// texto WhatsApp. Aucun effet de bord : la persistance et le handoff
// restent à la charge de l'appelant, dans cet ordre.
func Compose(input ComposeInput, settings *models.Settings, now time.Time) (models.Order, string, error) {
	if err := validate(input); err != nil {
		return models.Order{}, "", err
	}

	deliveryFee := 0.0
	if input.Fulfillment.OrderType == models.OrderTypeDelivery && settings != nil {
		deliveryFee = settings.DeliveryFee
	}

	subtotal := input.Cart.Total()

	order := models.Order{
		ID:                gocql.TimeUUID(),
		OrderNumber:       NewOrderNumber(now),
		CustomerName:      strings.TrimSpace(input.Customer.Name),
		CustomerPhone:     strings.TrimSpace(input.Customer.Phone),
		OrderType:         input.Fulfillment.OrderType,
		TableNumber:       input.Fulfillment.TableNumber,
		Address:           strings.TrimSpace(input.Fulfillment.Address),
		AddressComplement: strings.TrimSpace(input.Fulfillment.AddressComplement),
		Items:             input.Cart.Items,
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		Total:             subtotal + deliveryFee,
		Status:            StatusPending,
		PaymentMethod:     input.Payment.Method,
		NeedChange:        input.Payment.NeedChange,
		ChangeAmount:      input.Payment.ChangeAmount,
		Notes:             strings.TrimSpace(input.Notes),
		CreatedAt:         now,
	}

	return order, FormatOrderMessage(order, settings), nil
}

func validate(input ComposeInput) error {
	if !input.AcceptedTerms {
		return ValidationError("é necessário aceitar os termos de privacidade")
	}
	if input.Cart.IsEmpty() {
		return ValidationError("seu carrinho está vazio")
	}
	if strings.TrimSpace(input.Customer.Name) == "" || strings.TrimSpace(input.Customer.Phone) == "" {
		return ValidationError("preencha seu nome e telefone")
	}

	switch input.Fulfillment.OrderType {
	case models.OrderTypeDelivery:
		if strings.TrimSpace(input.Fulfillment.Address) == "" {
			return ValidationError("preencha o endereço de entrega")
		}
	case models.OrderTypeTable:
		if input.Fulfillment.TableNumber <= 0 {
			return ValidationError("informe o número da mesa")
		}
	case models.OrderTypePickup:
		// rien à valider
	default:
		return ValidationError("tipo de pedido inválido")
	}

	switch input.Payment.Method {
	case models.PaymentCash:
		if input.Payment.NeedChange && input.Payment.ChangeAmount <= 0 {
			return ValidationError("informe o valor para troco")
		}
	case models.PaymentCard, models.PaymentPix:
		// rien à valider
	default:
		return ValidationError("forma de pagamento inválida")
	}

	return nil
}

// NewOrderNumber génère l'identifiant humain du pedido : suffixe de
// timestamp + 3 chiffres aléatoires. Collision possible mais acceptable
// pour une loja unique à faible volume — ce n'est pas la clé primaire.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("%06d%03d", now.UnixMilli()%1_000_000, rand.IntN(1000))
}
