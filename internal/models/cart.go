package models

// CartItem — entrée du panier avec snapshot complet du produit.
// Le produit embarque ses variations et sa promotion active pour que
// le calcul de prix reste possible sans relire le catalogue.
type CartItem struct {
	Product      Product           `json:"product"`
	Quantity     int               `json:"quantity"`
	Notes        string            `json:"notes,omitempty"`
	Variation    *ProductVariation `json:"variation,omitempty"`
	SecondFlavor *Product          `json:"second_flavor,omitempty"`
	Addons       []CategoryAddon   `json:"addons,omitempty"`
}
