package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/cache"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// 🟢 GET /api/categories — catégories actives triées (cache Redis)
func GetCategories(c *gin.Context) {
	ctx := context.Background()

	if categories, ok := cache.GetCategoriesFromCache(ctx); ok {
		c.JSON(http.StatusOK, categories)
		return
	}

	categories, err := fetchCategories(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar categorias"})
		return
	}

	cache.SetCategoriesCache(ctx, categories)
	c.JSON(http.StatusOK, categories)
}

// 🟢 GET /api/admin/categories — toutes les catégories, actives ou non
func GetAllCategories(c *gin.Context) {
	categories, err := fetchCategories(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar categorias"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func fetchCategories(activeOnly bool) ([]models.Category, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, name, description, image_url, sort_order, is_active, created_at
		FROM categories`).Iter()

	categories := []models.Category{}
	var cat models.Category
	for iter.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ImageURL,
		&cat.SortOrder, &cat.IsActive, &cat.CreatedAt) {
		if activeOnly && !cat.IsActive {
			continue
		}
		categories = append(categories, cat)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	return categories, nil
}

// 🟢 POST /api/admin/categories
func CreateCategory(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		SortOrder   int    `json:"sort_order"`
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

	category := models.Category{
		ID:          gocql.TimeUUID(),
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		SortOrder:   input.SortOrder,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := session.Query(`INSERT INTO categories (id, name, description, image_url, sort_order, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, category.ImageURL,
		category.SortOrder, category.IsActive, category.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateCategoriesCache(context.Background())
	c.JSON(http.StatusCreated, category)
}

// 🟢 PUT /api/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		SortOrder   int    `json:"sort_order"`
		IsActive    *bool  `json:"is_active"`
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

	if err := session.Query(`UPDATE categories SET name = ?, description = ?, image_url = ?,
		sort_order = ?, is_active = ? WHERE id = ?`,
		input.Name, input.Description, input.ImageURL, input.SortOrder, isActive, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateCategoriesCache(context.Background())
	c.JSON(http.StatusOK, gin.H{"message": "Categoria atualizada"})
}

// 🟢 DELETE /api/admin/categories/:id — soft delete
func DeleteCategory(c *gin.Context) {
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

	if err := session.Query(`UPDATE categories SET is_active = false WHERE id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cache.InvalidateCategoriesCache(context.Background())
	c.JSON(http.StatusOK, gin.H{"message": "Categoria desativada"})
}
