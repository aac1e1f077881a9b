package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// 🟢 GET /api/admin/promotions
func GetPromotions(c *gin.Context) {
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	iter := session.Query(`SELECT id, product_id, discount_percent, starts_at, ends_at, is_active, created_at
		FROM promotions`).Iter()

	promotions := []models.Promotion{}
	var promo models.Promotion
	var endsAt time.Time
	for iter.Scan(&promo.ID, &promo.ProductID, &promo.DiscountPercent,
		&promo.StartsAt, &endsAt, &promo.IsActive, &promo.CreatedAt) {
		p := promo
		if !endsAt.IsZero() {
			e := endsAt
			p.EndsAt = &e
		}
		promotions = append(promotions, p)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, promotions)
}

// 🟢 POST /api/admin/promotions — desconto percentuel sur un produto
func CreatePromotion(c *gin.Context) {
	var input struct {
		ProductID       string     `json:"product_id" binding:"required"`
		DiscountPercent float64    `json:"discount_percent" binding:"required"`
		StartsAt        *time.Time `json:"starts_at"`
		EndsAt          *time.Time `json:"ends_at"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if input.DiscountPercent <= 0 || input.DiscountPercent > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Desconto deve estar entre 0 e 100"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id inválido"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	promo := models.Promotion{
		ID:              gocql.TimeUUID(),
		ProductID:       productID,
		DiscountPercent: input.DiscountPercent,
		StartsAt:        time.Now(),
		EndsAt:          input.EndsAt,
		IsActive:        true,
		CreatedAt:       time.Now(),
	}
	if input.StartsAt != nil {
		promo.StartsAt = *input.StartsAt
	}

	var endsAt time.Time
	if promo.EndsAt != nil {
		endsAt = *promo.EndsAt
	}

	if err := session.Query(`INSERT INTO promotions (id, product_id, discount_percent, starts_at, ends_at, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		promo.ID, promo.ProductID, promo.DiscountPercent, promo.StartsAt,
		endsAt, promo.IsActive, promo.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, promo)
}

// 🟢 DELETE /api/admin/promotions/:id — désactive la promotion
func DeletePromotion(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := session.Query(`UPDATE promotions SET is_active = false WHERE id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promoção desativada"})
}
