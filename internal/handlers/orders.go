package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/cache"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/orders"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/store"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/utils"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/whatsapp"
)

// 🟢 POST /api/orders — checkout complet.
// Ordre strict : loja ouverte → validation/compose → persistance → lien
// WhatsApp. Le panier n'est vidé qu'après persistance réussie.
func CreateOrder(c *gin.Context) {
	key, ok := sessionCartKey(c)
	if !ok {
		return
	}

	var input struct {
		Customer      orders.CustomerInfo `json:"customer"`
		Fulfillment   orders.Fulfillment  `json:"fulfillment"`
		Payment       orders.PaymentInfo  `json:"payment"`
		Notes         string              `json:"notes"`
		AcceptedTerms bool                `json:"accepted_terms"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := context.Background()

	settings, err := cache.GetSettingsFromCache(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar configurações"})
		return
	}

	now := time.Now()
	if !store.IsOpen(settings, now) {
		message := "Estamos fechados no momento."
		if settings != nil && settings.ClosedMessage != "" {
			message = settings.ClosedMessage
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error":  message,
			"reason": store.Status(settings, now),
		})
		return
	}

	ct := loadCart(ctx, key)

	order, message, err := orders.Compose(orders.ComposeInput{
		Cart:          ct,
		Customer:      input.Customer,
		Fulfillment:   input.Fulfillment,
		Payment:       input.Payment,
		Notes:         input.Notes,
		AcceptedTerms: input.AcceptedTerms,
	}, settings, now)
	if err != nil {
		if vErr, ok := err.(orders.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := insertOrder(order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar pedido"})
		return
	}

	// Notification email best-effort, sans bloquer la réponse
	go func() {
		if err := utils.SendNewOrderEmail(order); err != nil {
			log.Println("⚠️ Échec email novo pedido:", err)
		}
	}()

	// Persistance OK → on peut vider le panier
	database.Redis.Del(ctx, key)

	whatsappNumber := ""
	if settings != nil {
		whatsappNumber = settings.WhatsappNumber
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":         order,
		"message":       message,
		"whatsapp_link": whatsapp.BuildLink(whatsappNumber, message),
	})
}

func insertOrder(order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	// Les items sont un snapshot JSON : le pedido reste lisible même si
	// le catalogue change après coup
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO orders (id, order_number, customer_name, customer_phone,
		order_type, table_number, address, address_complement, items, subtotal, delivery_fee,
		total, status, payment_method, need_change, change_amount, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.OrderNumber, order.CustomerName, order.CustomerPhone,
		order.OrderType, order.TableNumber, order.Address, order.AddressComplement,
		string(itemsJSON), order.Subtotal, order.DeliveryFee, order.Total,
		order.Status, order.PaymentMethod, order.NeedChange, order.ChangeAmount,
		order.Notes, order.CreatedAt).Exec()
}

func scanOrders(iter *gocql.Iter) ([]models.Order, error) {
	result := []models.Order{}
	var o models.Order
	var itemsJSON string
	for iter.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerPhone,
		&o.OrderType, &o.TableNumber, &o.Address, &o.AddressComplement,
		&itemsJSON, &o.Subtotal, &o.DeliveryFee, &o.Total,
		&o.Status, &o.PaymentMethod, &o.NeedChange, &o.ChangeAmount,
		&o.Notes, &o.CreatedAt) {
		order := o
		order.Items = nil
		_ = json.Unmarshal([]byte(itemsJSON), &order.Items)
		result = append(result, order)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return result, nil
}

const orderColumns = `id, order_number, customer_name, customer_phone, order_type, table_number,
	address, address_complement, items, subtotal, delivery_fee, total, status, payment_method,
	need_change, change_amount, notes, created_at`

func fetchOrder(id gocql.UUID) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id).Iter()
	found, err := scanOrders(iter)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// 🟢 GET /api/orders/:id — suivi côté client
func GetOrder(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"status_label": orders.StatusLabel(order.Status),
	})
}

// 🟢 GET /api/orders/:id/pix — QR "copia e cola" pour payer le pedido
func GetOrderPixQR(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	order, err := fetchOrder(id)
	if err != nil || order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}

	settings, err := cache.GetSettingsFromCache(context.Background())
	if err != nil || settings == nil || settings.PixKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chave PIX não configurada"})
		return
	}

	qr, err := utils.GeneratePixQR(settings.PixKey, settings.StoreName, settings.StoreAddress, order.Total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar QR Code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"qr_code": qr,
		"payload": utils.BuildPixPayload(settings.PixKey, settings.StoreName, settings.StoreAddress, order.Total),
		"amount":  order.Total,
	})
}
