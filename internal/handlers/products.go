package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/services"
)

// 🟢 GET /api/products — produtos actifs avec variations + promotion jointes.
// Filtre optionnel ?category_id=
func GetProducts(c *gin.Context) {
	products, err := fetchProducts(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produtos"})
		return
	}

	if categoryID := c.Query("category_id"); categoryID != "" {
		id, err := gocql.ParseUUID(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id inválido"})
			return
		}
		filtered := []models.Product{}
		for _, p := range products {
			if p.CategoryID != nil && *p.CategoryID == id {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, products)
}

// 🟢 GET /api/products/:id
func GetProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	products, err := fetchProducts(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produto"})
		return
	}

	for _, p := range products {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
}

// 🟢 GET /api/admin/products — tous les produtos, actifs ou non
func GetAllProducts(c *gin.Context) {
	products, err := fetchProducts(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar produtos"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// fetchProducts lit produtos + variations + promotions et fait la
// jointure en mémoire (catalogue petit, une seule loja).
func fetchProducts(activeOnly bool) ([]models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	variations, err := fetchVariationsByProduct(session)
	if err != nil {
		return nil, err
	}
	promotions, err := fetchActivePromotions(session)
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, category_id, name, description, price, image_url,
		is_active, is_featured, created_at FROM products`).Iter()

	products := []models.Product{}
	var p models.Product
	var categoryID gocql.UUID
	for iter.Scan(&p.ID, &categoryID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.IsActive, &p.IsFeatured, &p.CreatedAt) {
		if activeOnly && !p.IsActive {
			continue
		}
		prod := p
		if categoryID != (gocql.UUID{}) {
			id := categoryID
			prod.CategoryID = &id
		}
		prod.Variations = variations[prod.ID]
		if promo, ok := promotions[prod.ID]; ok {
			pr := promo
			prod.Promotion = &pr
		}
		products = append(products, prod)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

func fetchVariationsByProduct(session *gocql.Session) (map[gocql.UUID][]models.ProductVariation, error) {
	iter := session.Query(`SELECT id, product_id, name, price, sort_order, is_active, created_at
		FROM product_variations`).Iter()

	byProduct := make(map[gocql.UUID][]models.ProductVariation)
	var v models.ProductVariation
	for iter.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.SortOrder, &v.IsActive, &v.CreatedAt) {
		if !v.IsActive {
			continue
		}
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	for id := range byProduct {
		vs := byProduct[id]
		sort.Slice(vs, func(i, j int) bool { return vs[i].SortOrder < vs[j].SortOrder })
	}

	return byProduct, nil
}

// fetchActivePromotions garde au plus une promotion active par produto
func fetchActivePromotions(session *gocql.Session) (map[gocql.UUID]models.Promotion, error) {
	iter := session.Query(`SELECT id, product_id, discount_percent, starts_at, ends_at, is_active, created_at
		FROM promotions`).Iter()

	active := make(map[gocql.UUID]models.Promotion)
	var promo models.Promotion
	var endsAt time.Time
	for iter.Scan(&promo.ID, &promo.ProductID, &promo.DiscountPercent,
		&promo.StartsAt, &endsAt, &promo.IsActive, &promo.CreatedAt) {
		if !promo.IsActive {
			continue
		}
		p := promo
		if !endsAt.IsZero() {
			e := endsAt
			p.EndsAt = &e
		}
		active[p.ProductID] = p
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return active, nil
}

// 🟢 POST /api/admin/products
func CreateProduct(c *gin.Context) {
	var input struct {
		CategoryID  string  `json:"category_id"`
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ImageURL    string  `json:"image_url"`
		IsFeatured  bool    `json:"is_featured"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	product := models.Product{
		ID:          gocql.TimeUUID(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		IsFeatured:  input.IsFeatured,
		CreatedAt:   time.Now(),
	}

	var categoryID gocql.UUID
	if input.CategoryID != "" {
		id, err := gocql.ParseUUID(input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id inválido"})
			return
		}
		categoryID = id
		product.CategoryID = &id
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := session.Query(`INSERT INTO products (id, category_id, name, description, price,
		image_url, is_active, is_featured, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID, categoryID, product.Name, product.Description, product.Price,
		product.ImageURL, product.IsActive, product.IsFeatured, product.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.IndexProduct(product)
	c.JSON(http.StatusCreated, product)
}

// 🟢 PUT /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var input struct {
		CategoryID  string  `json:"category_id"`
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ImageURL    string  `json:"image_url"`
		IsActive    *bool   `json:"is_active"`
		IsFeatured  bool    `json:"is_featured"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	var categoryID gocql.UUID
	if input.CategoryID != "" {
		parsed, err := gocql.ParseUUID(input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id inválido"})
			return
		}
		categoryID = parsed
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

	if err := session.Query(`UPDATE products SET category_id = ?, name = ?, description = ?,
		price = ?, image_url = ?, is_active = ?, is_featured = ? WHERE id = ?`,
		categoryID, input.Name, input.Description, input.Price,
		input.ImageURL, isActive, input.IsFeatured, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated := models.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsActive:    isActive,
		IsFeatured:  input.IsFeatured,
	}
	go services.IndexProduct(updated)

	c.JSON(http.StatusOK, gin.H{"message": "Produto atualizado"})
}

// 🟢 DELETE /api/admin/products/:id — soft delete + retrait de l'index
func DeleteProduct(c *gin.Context) {
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

	if err := session.Query(`UPDATE products SET is_active = false WHERE id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go services.DeleteProduct(id.String())
	c.JSON(http.StatusOK, gin.H{"message": "Produto desativado"})
}
