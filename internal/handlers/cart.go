package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/cart"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

// sessionCartKey identifie le panier par le header X-Session-ID
// (pas de compte client : le front génère un id de session anonyme)
func sessionCartKey(c *gin.Context) (string, bool) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Header X-Session-ID obrigatório"})
		return "", false
	}
	return "cart:" + sessionID, true
}

func loadCart(ctx context.Context, key string) cart.Cart {
	var ct cart.Cart
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		_ = json.Unmarshal([]byte(data), &ct)
	}
	return ct
}

func saveCart(ctx context.Context, key string, ct cart.Cart) {
	jsonData, _ := json.Marshal(ct)
	database.Redis.Set(ctx, key, jsonData, cartTTL)
}

func cartResponse(ct cart.Cart) gin.H {
	return gin.H{
		"items":      ct.Items,
		"total":      ct.Total(),
		"item_count": ct.ItemCount(),
	}
}

// itemKeyInput — identité structurée d'une entrée du panier côté API
type itemKeyInput struct {
	ProductID      gocql.UUID  `json:"product_id"`
	VariationID    *gocql.UUID `json:"variation_id"`
	SecondFlavorID *gocql.UUID `json:"second_flavor_id"`
}

func (in itemKeyInput) toKey() cart.ItemKey {
	return cart.ItemKey{
		ProductID:      in.ProductID,
		VariationID:    in.VariationID,
		SecondFlavorID: in.SecondFlavorID,
	}
}

// 🟢 GET /api/cart
func GetCart(c *gin.Context) {
	key, ok := sessionCartKey(c)
	if !ok {
		return
	}

	ct := loadCart(context.Background(), key)
	c.JSON(http.StatusOK, cartResponse(ct))
}

// 🟢 POST /api/cart/add — le body est l'item complet (snapshot produit)
func AddToCart(c *gin.Context) {
	key, ok := sessionCartKey(c)
	if !ok {
		return
	}

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := context.Background()
	ct := loadCart(ctx, key)
	ct.AddItem(item)
	saveCart(ctx, key, ct)

	c.JSON(http.StatusOK, cartResponse(ct))
}

// 🟢 POST /api/cart/quantity
func UpdateCartQuantity(c *gin.Context) {
	key, ok := sessionCartKey(c)
	if !ok {
		return
	}

	var input struct {
		itemKeyInput
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := context.Background()
	ct := loadCart(ctx, key)
	ct.UpdateQuantity(input.toKey(), input.Quantity)
	saveCart(ctx, key, ct)

	c.JSON(http.StatusOK, cartResponse(ct))
}

// 🟢 POST /api/cart/remove
func RemoveFromCart(c *gin.Context) {
	key, ok := sessionCartKey(c)
	if !ok {
		return
	}

	var input itemKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := context.Background()
	ct := loadCart(ctx, key)
	ct.RemoveItem(input.toKey())
	saveCart(ctx, key, ct)

	c.JSON(http.StatusOK, cartResponse(ct))
}

// 🟢 DELETE /api/cart
func ClearCart(c *gin.Context) {
	key, ok := sessionCartKey(c)
	if !ok {
		return
	}

	database.Redis.Del(context.Background(), key)
	c.JSON(http.StatusOK, gin.H{"message": "Carrinho esvaziado"})
}
