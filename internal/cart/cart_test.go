package cart

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

func burger() models.Product {
	return models.Product{ID: gocql.UUID{0x01}, Name: "X-Burger", Price: 20}
}

func pizza() models.Product {
	return models.Product{ID: gocql.UUID{0x02}, Name: "Mussarela", Price: 30}
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	var c Cart
	c.AddItem(models.CartItem{Product: burger(), Quantity: 2, Notes: "sem cebola"})
	c.AddItem(models.CartItem{Product: burger(), Quantity: 3, Notes: "outra nota"})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	// Les notes de l'entrée existante sont préservées, pas écrasées
	assert.Equal(t, "sem cebola", c.Items[0].Notes)
}

func TestAddItemDistinctVariationIsDistinctEntry(t *testing.T) {
	p := pizza()
	grande := models.ProductVariation{ID: gocql.UUID{0x10}, Name: "Grande", Price: 50}
	media := models.ProductVariation{ID: gocql.UUID{0x11}, Name: "Média", Price: 40}

	var c Cart
	c.AddItem(models.CartItem{Product: p, Quantity: 1, Variation: &grande})
	c.AddItem(models.CartItem{Product: p, Quantity: 1, Variation: &media})

	assert.Len(t, c.Items, 2)
}

func TestAddItemSameVariationAndSecondFlavorMerges(t *testing.T) {
	p := pizza()
	grande := models.ProductVariation{ID: gocql.UUID{0x10}, Name: "Grande", Price: 50}
	second := models.Product{ID: gocql.UUID{0x03}, Name: "Calabresa", Price: 32}

	var c Cart
	c.AddItem(models.CartItem{Product: p, Quantity: 1, Variation: &grande, SecondFlavor: &second})
	c.AddItem(models.CartItem{Product: p, Quantity: 2, Variation: &grande, SecondFlavor: &second})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestRemoveItemAbsentKeyIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(models.CartItem{Product: burger(), Quantity: 1})

	c.RemoveItem(ItemKey{ProductID: gocql.UUID{0x99}})
	assert.Len(t, c.Items, 1)

	c.RemoveItem(ItemKey{ProductID: burger().ID})
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	var c Cart
	c.AddItem(models.CartItem{Product: burger(), Quantity: 2})

	c.UpdateQuantity(ItemKey{ProductID: burger().ID}, 0)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	var c Cart
	c.AddItem(models.CartItem{Product: burger(), Quantity: 2})

	c.UpdateQuantity(ItemKey{ProductID: burger().ID}, 7)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestItemCountSumsQuantities(t *testing.T) {
	var c Cart
	c.AddItem(models.CartItem{Product: burger(), Quantity: 2})
	c.AddItem(models.CartItem{Product: pizza(), Quantity: 3})

	assert.Equal(t, 5, c.ItemCount())
	assert.Len(t, c.Items, 2)
}

func TestTotalUsesResolvedPrices(t *testing.T) {
	p := burger()
	p.Promotion = &models.Promotion{DiscountPercent: 50, IsActive: true}

	var c Cart
	c.AddItem(models.CartItem{Product: p, Quantity: 2})

	assert.InDelta(t, 20.0, c.Total(), 1e-9)
}

func TestClearEmptiesCart(t *testing.T) {
	var c Cart
	c.AddItem(models.CartItem{Product: burger(), Quantity: 2})
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}

func TestItemKeyStructuralEquality(t *testing.T) {
	// Des ids distincts dont la concaténation serait identique doivent
	// produire des clés différentes
	a := ItemKey{ProductID: gocql.UUID{0x12}, VariationID: &gocql.UUID{0x03}}
	b := ItemKey{ProductID: gocql.UUID{0x01}, VariationID: &gocql.UUID{0x23}}
	assert.False(t, a.Equals(b))

	v := gocql.UUID{0x03}
	c := ItemKey{ProductID: gocql.UUID{0x12}, VariationID: &v}
	assert.True(t, a.Equals(c))
}
