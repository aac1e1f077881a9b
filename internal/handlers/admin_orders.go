package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/orders"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/utils"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/whatsapp"
)

// 🟢 GET /api/admin/orders — pedidos du plus récent au plus ancien.
// Filtre optionnel ?status=
func ListOrders(c *gin.Context) {
	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	iter := session.Query(`SELECT ` + orderColumns + ` FROM orders`).Iter()
	all, err := scanOrders(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar pedidos"})
		return
	}

	if status := c.Query("status"); status != "" {
		if !orders.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido"})
			return
		}
		filtered := all[:0]
		for _, o := range all {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		all = filtered
	}

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	c.JSON(http.StatusOK, all)
}

// 🟢 PATCH /api/admin/orders/:id/status
// Séquencement strict par défaut ; force=true débloque la correction
// manuelle (l'écriture en base reste permissive, le contrôle vit ici).
func UpdateOrderStatus(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
		Force  bool   `json:"force"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if !orders.IsValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido"})
		return
	}

	order, err := fetchOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar pedido"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}

	newStatus := input.Status
	if !input.Force {
		next, err := orders.Transition(order.Status, input.Status)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		newStatus = next
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := session.Query(`UPDATE orders SET status = ? WHERE id = ?`, newStatus, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       newStatus,
		"status_label": orders.StatusLabel(newStatus),
	})
}

// 🟢 GET /api/admin/orders/:id/notify — lien WhatsApp prérempli pour
// prévenir le client du statut courant
func NotifyCustomer(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	order, err := fetchOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar pedido"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}

	message := orders.NotificationMessage(order.CustomerName, order.OrderNumber, order.Status)
	c.JSON(http.StatusOK, gin.H{
		"message":       message,
		"whatsapp_link": whatsapp.BuildLink(order.CustomerPhone, message),
	})
}

// 🟢 GET /api/admin/orders/:id/receipt.pdf — comprovante imprimable
func OrderReceiptPDF(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	order, err := fetchOrder(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar pedido"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}

	pdf, err := utils.RenderReceiptPDF(*order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar PDF"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pedido-`+order.OrderNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
