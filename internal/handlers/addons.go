package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// 🟢 GET /api/categories/:id/addons — extras actifs d'une catégorie
func GetCategoryAddons(c *gin.Context) {
	categoryID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	iter := session.Query(`SELECT id, category_id, name, price, sort_order, is_active, created_at
		FROM category_addons`).Iter()

	addons := []models.CategoryAddon{}
	var addon models.CategoryAddon
	for iter.Scan(&addon.ID, &addon.CategoryID, &addon.Name, &addon.Price,
		&addon.SortOrder, &addon.IsActive, &addon.CreatedAt) {
		if addon.CategoryID != categoryID || !addon.IsActive {
			continue
		}
		addons = append(addons, addon)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sort.Slice(addons, func(i, j int) bool { return addons[i].SortOrder < addons[j].SortOrder })
	c.JSON(http.StatusOK, addons)
}

// 🟢 POST /api/admin/categories/:id/addons
func CreateCategoryAddon(c *gin.Context) {
	categoryID, err := gocql.ParseUUID(c.Param("id"))
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

	addon := models.CategoryAddon{
		ID:         gocql.TimeUUID(),
		CategoryID: categoryID,
		Name:       input.Name,
		Price:      input.Price,
		SortOrder:  input.SortOrder,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}

	if err := session.Query(`INSERT INTO category_addons (id, category_id, name, price, sort_order, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		addon.ID, addon.CategoryID, addon.Name, addon.Price,
		addon.SortOrder, addon.IsActive, addon.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, addon)
}

// 🟢 DELETE /api/admin/addons/:id
func DeleteCategoryAddon(c *gin.Context) {
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

	if err := session.Query(`UPDATE category_addons SET is_active = false WHERE id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adicional desativado"})
}
