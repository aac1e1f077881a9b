package orders

import (
	"strings"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/cart"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

var testNow = time.Date(2025, 6, 15, 20, 30, 0, 0, time.Local)

func testSettings() *models.Settings {
	return &models.Settings{
		StoreName:      "Espaço Imperial",
		WhatsappNumber: "5532999999999",
		DeliveryFee:    5,
		PixKey:         "pix@espacoimperial.com.br",
		IsOpen:         true,
	}
}

func burgerCart() cart.Cart {
	var c cart.Cart
	c.AddItem(models.CartItem{
		Product:  models.Product{ID: gocql.UUID{0x01}, Name: "Burger", Price: 20},
		Quantity: 2,
	})
	return c
}

func baseInput() ComposeInput {
	return ComposeInput{
		Cart:          burgerCart(),
		Customer:      CustomerInfo{Name: "João Silva", Phone: "32988887777"},
		Fulfillment:   Fulfillment{OrderType: models.OrderTypePickup},
		Payment:       PaymentInfo{Method: models.PaymentCash},
		AcceptedTerms: true,
	}
}

func TestComposeRequiresConsent(t *testing.T) {
	input := baseInput()
	input.AcceptedTerms = false

	_, _, err := Compose(input, testSettings(), testNow)
	require.Error(t, err)
	assert.IsType(t, ValidationError(""), err)
}

func TestComposeRejectsEmptyCart(t *testing.T) {
	input := baseInput()
	input.Cart = cart.Cart{}

	_, _, err := Compose(input, testSettings(), testNow)
	assert.Error(t, err)
}

func TestComposeRejectsMissingName(t *testing.T) {
	input := baseInput()
	input.Customer.Name = "   "

	_, _, err := Compose(input, testSettings(), testNow)
	assert.Error(t, err)
}

func TestComposeDeliveryRequiresAddress(t *testing.T) {
	input := baseInput()
	input.Fulfillment = Fulfillment{OrderType: models.OrderTypeDelivery, Address: ""}

	_, _, err := Compose(input, testSettings(), testNow)
	require.Error(t, err)
	assert.IsType(t, ValidationError(""), err)
}

func TestComposeTableRequiresTableNumber(t *testing.T) {
	input := baseInput()
	input.Fulfillment = Fulfillment{OrderType: models.OrderTypeTable}

	_, _, err := Compose(input, testSettings(), testNow)
	assert.Error(t, err)
}

func TestComposeCashWithChangeRequiresAmount(t *testing.T) {
	input := baseInput()
	input.Payment = PaymentInfo{Method: models.PaymentCash, NeedChange: true}

	_, _, err := Compose(input, testSettings(), testNow)
	assert.Error(t, err)

	input.Payment.ChangeAmount = 100
	_, _, err = Compose(input, testSettings(), testNow)
	assert.NoError(t, err)
}

func TestComposePickupScenario(t *testing.T) {
	order, message, err := Compose(baseInput(), testSettings(), testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	assert.InDelta(t, 40.0, order.Total, 1e-9)
	assert.Zero(t, order.DeliveryFee)

	assert.Contains(t, message, "2x Burger")
	assert.Contains(t, message, "*TOTAL: R$ 40.00*")
	assert.Contains(t, message, "Retirada no local")
	assert.NotContains(t, message, "Taxa de Entrega")
	assert.NotContains(t, message, "Endereço")
}

func TestComposeDeliveryIncludesFeeAndAddress(t *testing.T) {
	input := baseInput()
	input.Fulfillment = Fulfillment{
		OrderType:         models.OrderTypeDelivery,
		Address:           "Rua das Flores, 123",
		AddressComplement: "Apto 42",
	}

	order, message, err := Compose(input, testSettings(), testNow)
	require.NoError(t, err)

	assert.InDelta(t, 45.0, order.Total, 1e-9)
	assert.Contains(t, message, "*Taxa de Entrega:* R$ 5.00")
	assert.Contains(t, message, "*Endereço:* Rua das Flores, 123 - Apto 42")
	assert.Contains(t, message, "*TOTAL: R$ 45.00*")
}

func TestComposeHalfAndHalfUsesHigherFlavorPrice(t *testing.T) {
	grande := models.ProductVariation{ID: gocql.UUID{0x10}, Name: "Grande", Price: 50}
	second := models.Product{
		ID:         gocql.UUID{0x03},
		Name:       "Calabresa",
		Variations: []models.ProductVariation{{Name: "Grande", Price: 55}},
	}

	var c cart.Cart
	c.AddItem(models.CartItem{
		Product:      models.Product{ID: gocql.UUID{0x02}, Name: "Pizza Mussarela", Price: 30},
		Quantity:     1,
		Variation:    &grande,
		SecondFlavor: &second,
	})

	input := baseInput()
	input.Cart = c

	order, message, err := Compose(input, testSettings(), testNow)
	require.NoError(t, err)

	assert.InDelta(t, 55.0, order.Total, 1e-9)
	assert.Contains(t, message, "1x Pizza Mussarela (Grande) + Calabresa - R$ 55.00")
}

func TestComposeMessageSectionOrderIsStable(t *testing.T) {
	input := baseInput()
	input.Notes = "sem cebola"
	input.Payment = PaymentInfo{Method: models.PaymentPix}

	_, message, err := Compose(input, testSettings(), testNow)
	require.NoError(t, err)

	sections := []string{
		"*Novo Pedido - Espaço Imperial*",
		"*Pedido:* #",
		"*Cliente:* João Silva",
		"*Itens:*",
		"*Subtotal:* R$ 40.00",
		"*Retirada no local*",
		"*TOTAL: R$ 40.00*",
		"*Pagamento:* PIX",
		"*Chave PIX:* pix@espacoimperial.com.br",
		"*Observações:* sem cebola",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(message, section)
		require.GreaterOrEqual(t, idx, 0, "seção ausente: %s", section)
		assert.Greater(t, idx, last, "seção fora de ordem: %s", section)
		last = idx
	}
}

func TestComposeTableShowsTableNumber(t *testing.T) {
	input := baseInput()
	input.Fulfillment = Fulfillment{OrderType: models.OrderTypeTable, TableNumber: 5}

	_, message, err := Compose(input, testSettings(), testNow)
	require.NoError(t, err)
	assert.Contains(t, message, "*Mesa:* 5")
}

func TestComposeNilSettingsUsesDefaults(t *testing.T) {
	order, message, err := Compose(baseInput(), nil, testNow)
	require.NoError(t, err)

	assert.Zero(t, order.DeliveryFee)
	assert.Contains(t, message, "*Novo Pedido - Espaço Imperial*")
}

func TestNewOrderNumberShape(t *testing.T) {
	n := NewOrderNumber(testNow)
	assert.Len(t, n, 9)
	for _, r := range n {
		assert.True(t, r >= '0' && r <= '9')
	}
}
