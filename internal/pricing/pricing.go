// Package pricing calcule le prix unitaire effectif d'un item du panier :
// variation > promotion > prix de base, avec la règle meio-a-meio
// (le client paie le sabor le plus cher).
package pricing

import (
	"strings"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// ResolvePrice retourne le prix unitaire d'un produit.
// Une variation sélectionnée remplace le prix de base et court-circuite
// la promotion — les deux ne se composent jamais.
func ResolvePrice(product models.Product, variation *models.ProductVariation, promotion *models.Promotion) float64 {
	if variation != nil {
		return variation.Price
	}
	if promotion != nil && promotion.IsActive {
		return product.Price * (1 - promotion.DiscountPercent/100)
	}
	return product.Price
}

// ResolveItemPrice retourne le prix unitaire d'une entrée du panier.
// Pour une pizza meio-a-meio, on cherche la variation de même taille
// chez le second sabor et on garde le prix le plus élevé. Les addons
// s'ajoutent après résolution du sabor.
func ResolveItemPrice(item models.CartItem) float64 {
	price := ResolvePrice(item.Product, item.Variation, item.Product.Promotion)

	if item.SecondFlavor != nil {
		secondPrice := secondFlavorPrice(item)
		if secondPrice > price {
			price = secondPrice
		}
	}

	for _, addon := range item.Addons {
		price += addon.Price
	}

	return price
}

// secondFlavorPrice résout le prix du second sabor à la taille choisie.
// Sans variation correspondante, on retombe sur le prix de base résolu
// du second produit (promotion comprise).
func secondFlavorPrice(item models.CartItem) float64 {
	second := *item.SecondFlavor

	if item.Variation != nil {
		if match := matchVariation(second.Variations, item.Variation.Name); match != nil {
			return match.Price
		}
	}

	return ResolvePrice(second, nil, second.Promotion)
}

func matchVariation(variations []models.ProductVariation, name string) *models.ProductVariation {
	for i := range variations {
		if strings.EqualFold(variations[i].Name, name) {
			return &variations[i]
		}
	}
	return nil
}
