package pricing

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

func TestResolvePriceBase(t *testing.T) {
	p := models.Product{Name: "X-Burger", Price: 20}
	assert.Equal(t, 20.0, ResolvePrice(p, nil, nil))
}

func TestResolvePricePromotion(t *testing.T) {
	p := models.Product{Name: "X-Burger", Price: 20}
	promo := &models.Promotion{DiscountPercent: 25, IsActive: true}
	assert.InDelta(t, 15.0, ResolvePrice(p, nil, promo), 1e-9)
}

func TestResolvePriceInactivePromotionIgnored(t *testing.T) {
	p := models.Product{Name: "X-Burger", Price: 20}
	promo := &models.Promotion{DiscountPercent: 25, IsActive: false}
	assert.Equal(t, 20.0, ResolvePrice(p, nil, promo))
}

func TestResolvePriceVariationBypassesPromotion(t *testing.T) {
	p := models.Product{Name: "Pizza Calabresa", Price: 30}
	v := &models.ProductVariation{Name: "Grande", Price: 50}
	promo := &models.Promotion{DiscountPercent: 50, IsActive: true}

	// La variation remplace tout, la promotion ne s'applique jamais dessus
	assert.Equal(t, 50.0, ResolvePrice(p, v, promo))
}

func TestResolveItemPriceHalfAndHalfTakesHigherFlavor(t *testing.T) {
	grande := models.ProductVariation{ID: gocql.TimeUUID(), Name: "Grande", Price: 50}
	second := models.Product{
		Name: "Calabresa",
		Variations: []models.ProductVariation{
			{Name: "Média", Price: 40},
			{Name: "Grande", Price: 55},
		},
	}

	item := models.CartItem{
		Product:      models.Product{Name: "Mussarela", Price: 30},
		Quantity:     1,
		Variation:    &grande,
		SecondFlavor: &second,
	}

	assert.Equal(t, 55.0, ResolveItemPrice(item))
}

func TestResolveItemPriceHalfAndHalfKeepsOwnPriceWhenHigher(t *testing.T) {
	grande := models.ProductVariation{Name: "Grande", Price: 60}
	second := models.Product{
		Name:       "Calabresa",
		Variations: []models.ProductVariation{{Name: "Grande", Price: 55}},
	}

	item := models.CartItem{
		Product:      models.Product{Name: "Portuguesa", Price: 35},
		Quantity:     1,
		Variation:    &grande,
		SecondFlavor: &second,
	}

	assert.Equal(t, 60.0, ResolveItemPrice(item))
}

func TestResolveItemPriceHalfAndHalfCaseInsensitiveMatch(t *testing.T) {
	grande := models.ProductVariation{Name: "GRANDE", Price: 50}
	second := models.Product{
		Name:       "Frango",
		Variations: []models.ProductVariation{{Name: "grande", Price: 52}},
	}

	item := models.CartItem{
		Product:      models.Product{Name: "Mussarela", Price: 30},
		Variation:    &grande,
		SecondFlavor: &second,
	}

	assert.Equal(t, 52.0, ResolveItemPrice(item))
}

func TestResolveItemPriceAddonsAreAdditive(t *testing.T) {
	item := models.CartItem{
		Product:  models.Product{Name: "X-Burger", Price: 20},
		Quantity: 2,
		Addons: []models.CategoryAddon{
			{Name: "Bacon", Price: 4},
			{Name: "Cheddar", Price: 3},
		},
	}

	assert.InDelta(t, 27.0, ResolveItemPrice(item), 1e-9)
}
