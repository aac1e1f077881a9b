package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/services"
)

// 🟢 POST /api/admin/images — upload d'image produto vers MinIO
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo de imagem obrigatório"})
		return
	}

	// 5 Mo max
	if file.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Imagem muito grande (máx. 5MB)"})
		return
	}

	url, err := services.UploadImage(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao enviar imagem"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
