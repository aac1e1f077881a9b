package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/cache"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/store"
)

// 🟢 GET /api/settings — sous-ensemble public (pas de chave PIX brute
// hors checkout, pas de flags internes)
func GetPublicSettings(c *gin.Context) {
	settings, err := cache.GetSettingsFromCache(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar configurações"})
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store_name":      settings.StoreName,
		"store_address":   settings.StoreAddress,
		"whatsapp_number": settings.WhatsappNumber,
		"delivery_fee":    settings.DeliveryFee,
		"opening_time":    settings.OpeningTime,
		"closing_time":    settings.ClosingTime,
	})
}

// 🟢 GET /api/store/status — la loja accepte-t-elle des pedidos ?
func GetStoreStatus(c *gin.Context) {
	settings, err := cache.GetSettingsFromCache(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar configurações"})
		return
	}

	now := time.Now()
	reason := store.Status(settings, now)

	resp := gin.H{
		"open":   reason == store.ReasonOpen,
		"reason": reason,
	}
	if reason != store.ReasonOpen && settings != nil && settings.ClosedMessage != "" {
		resp["closed_message"] = settings.ClosedMessage
	}

	c.JSON(http.StatusOK, resp)
}

// 🟢 GET /api/admin/settings — configuration complète
func GetSettings(c *gin.Context) {
	settings, err := cache.GetSettingsFromCache(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar configurações"})
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// 🟢 PUT /api/admin/settings — upsert de la ligne unique
func UpdateSettings(c *gin.Context) {
	var input struct {
		WhatsappNumber  string  `json:"whatsapp_number" binding:"required"`
		StoreName       string  `json:"store_name" binding:"required"`
		StoreAddress    string  `json:"store_address"`
		DeliveryFee     float64 `json:"delivery_fee"`
		IsOpen          *bool   `json:"is_open"`
		PixKey          string  `json:"pix_key"`
		OpeningTime     string  `json:"opening_time"`
		ClosingTime     string  `json:"closing_time"`
		ClosedMessage   string  `json:"closed_message"`
		MaintenanceMode bool    `json:"maintenance_mode"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := context.Background()

	isOpen := true
	if input.IsOpen != nil {
		isOpen = *input.IsOpen
	}

	// Une seule ligne settings : on réutilise l'id existant s'il y en a un
	existing, err := cache.GetSettingsFromCache(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := gocql.TimeUUID()
	if existing != nil {
		id = existing.ID
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	settings := models.Settings{
		ID:              id,
		WhatsappNumber:  input.WhatsappNumber,
		StoreName:       input.StoreName,
		StoreAddress:    input.StoreAddress,
		DeliveryFee:     input.DeliveryFee,
		IsOpen:          isOpen,
		PixKey:          input.PixKey,
		OpeningTime:     input.OpeningTime,
		ClosingTime:     input.ClosingTime,
		ClosedMessage:   input.ClosedMessage,
		MaintenanceMode: input.MaintenanceMode,
		UpdatedAt:       time.Now(),
	}

	if err := session.Query(`INSERT INTO settings (id, whatsapp_number, store_name, store_address,
		delivery_fee, is_open, pix_key, opening_time, closing_time, closed_message,
		maintenance_mode, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		settings.ID, settings.WhatsappNumber, settings.StoreName, settings.StoreAddress,
		settings.DeliveryFee, settings.IsOpen, settings.PixKey, settings.OpeningTime,
		settings.ClosingTime, settings.ClosedMessage, settings.MaintenanceMode,
		settings.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateSettingsCache(ctx)
	c.JSON(http.StatusOK, settings)
}
