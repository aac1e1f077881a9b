package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// 🟢 POST /api/admin/products/:id/variations — tamanhos (P/M/G...) d'un produto
func CreateVariation(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var input struct {
		Name      string  `json:"name" binding:"required"`
		Price     float64 `json:"price"`
		SortOrder int     `json:"sort_order"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	variation := models.ProductVariation{
		ID:        gocql.TimeUUID(),
		ProductID: productID,
		Name:      input.Name,
		Price:     input.Price,
		SortOrder: input.SortOrder,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := session.Query(`INSERT INTO product_variations (id, product_id, name, price, sort_order, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		variation.ID, variation.ProductID, variation.Name, variation.Price,
		variation.SortOrder, variation.IsActive, variation.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, variation)
}

// 🟢 PUT /api/admin/variations/:id
func UpdateVariation(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var input struct {
		Name      string  `json:"name" binding:"required"`
		Price     float64 `json:"price"`
		SortOrder int     `json:"sort_order"`
		IsActive  *bool   `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := session.Query(`UPDATE product_variations SET name = ?, price = ?, sort_order = ?, is_active = ?
		WHERE id = ?`, input.Name, input.Price, input.SortOrder, isActive, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Variação atualizada"})
}

// 🟢 DELETE /api/admin/variations/:id
func DeleteVariation(c *gin.Context) {
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

	if err := session.Query(`UPDATE product_variations SET is_active = false WHERE id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Variação desativada"})
}
