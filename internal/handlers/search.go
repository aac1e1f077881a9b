package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/services"
)

// 🟢 GET /api/products/search?q= — recherche Elasticsearch avec repli
// sur le catalogue quand l'index est indisponible
func SearchProductsHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro q obrigatório"})
		return
	}

	results, err := services.SearchProducts(query)
	if err == nil {
		c.JSON(http.StatusOK, results)
		return
	}

	// Repli : scan du catalogue en mémoire
	products, err := fetchProducts(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro na busca"})
		return
	}

	lower := strings.ToLower(query)
	matched := []any{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Description), lower) {
			matched = append(matched, p)
		}
	}

	c.JSON(http.StatusOK, matched)
}
