// Package cart porte l'agrégat panier : fusion par identité structurée
// (produit + variation + segundo sabor), quantités dérivées et total
// calculé via le résolveur de prix.
package cart

import (
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/pricing"
)

// ItemKey identifie une entrée du panier. Clé structurée à égalité
// structurelle — pas de concaténation de chaînes, donc pas de collision
// possible entre ids aux frontières.
type ItemKey struct {
	ProductID      gocql.UUID
	VariationID    *gocql.UUID
	SecondFlavorID *gocql.UUID
}

func (k ItemKey) Equals(other ItemKey) bool {
	return k.ProductID == other.ProductID &&
		uuidPtrEqual(k.VariationID, other.VariationID) &&
		uuidPtrEqual(k.SecondFlavorID, other.SecondFlavorID)
}

func uuidPtrEqual(a, b *gocql.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// KeyOf calcule la clé d'identité d'un item.
func KeyOf(item models.CartItem) ItemKey {
	key := ItemKey{ProductID: item.Product.ID}
	if item.Variation != nil {
		id := item.Variation.ID
		key.VariationID = &id
	}
	if item.SecondFlavor != nil {
		id := item.SecondFlavor.ID
		key.SecondFlavorID = &id
	}
	return key
}

// Cart — état du panier d'une session. Un seul écrivain par session
// (l'utilisateur actif), aucune synchronisation nécessaire.
type Cart struct {
	Items []models.CartItem `json:"items"`
}

// AddItem ajoute un produit. Si une entrée de même identité existe déjà,
// on additionne les quantités en préservant notes/variation/sabor/addons
// de l'entrée existante.
func (c *Cart) AddItem(item models.CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	key := KeyOf(item)
	for i := range c.Items {
		if KeyOf(c.Items[i]).Equals(key) {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}

	c.Items = append(c.Items, item)
}

// RemoveItem supprime l'entrée correspondante. No-op si absente.
func (c *Cart) RemoveItem(key ItemKey) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if !KeyOf(item).Equals(key) {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

// UpdateQuantity fixe la quantité d'une entrée.
// quantity <= 0 équivaut à RemoveItem. Pas de borne supérieure.
func (c *Cart) UpdateQuantity(key ItemKey, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(key)
		return
	}
	for i := range c.Items {
		if KeyOf(c.Items[i]).Equals(key) {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear vide le panier (appelé après envoi du pedido).
func (c *Cart) Clear() {
	c.Items = nil
}

// Total — somme des sous-totaux de ligne, en float64 non arrondi.
// L'arrondi à 2 décimales n'intervient qu'à l'affichage.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += pricing.ResolveItemPrice(item) * float64(item.Quantity)
	}
	return total
}

// ItemCount — somme des quantités, pas le nombre d'entrées distinctes.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty — vrai si le panier n'a aucune entrée.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
