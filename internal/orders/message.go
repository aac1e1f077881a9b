package orders

import (
	"fmt"
	"strings"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/pricing"
)

const defaultStoreName = "Espaço Imperial"

var paymentLabels = map[string]string{
	models.PaymentCash: "Dinheiro",
	models.PaymentCard: "Cartão",
	models.PaymentPix:  "PIX",
}

// FormatOrderMessage transforme un pedido en texto WhatsApp structuré.
// Les sections apparaissent toujours dans le même ordre ; une section
// dont la précondition est absente est omise entièrement, jamais vide.
// Le texto ne dépend que du snapshot pedido + settings passés ici.
func FormatOrderMessage(order models.Order, settings *models.Settings) string {
	storeName := defaultStoreName
	pixKey := ""
	if settings != nil {
		if settings.StoreName != "" {
			storeName = settings.StoreName
		}
		pixKey = settings.PixKey
	}

	var b strings.Builder

	// Cabeçalho
	fmt.Fprintf(&b, "🍔 *Novo Pedido - %s*\n\n", storeName)
	fmt.Fprintf(&b, "🔖 *Pedido:* #%s\n", order.OrderNumber)
	fmt.Fprintf(&b, "🕐 *Horário:* %s\n\n", order.CreatedAt.Format("02/01/2006 15:04"))

	// Cliente
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📱 *Telefone:* %s\n\n", order.CustomerPhone)

	// Itens
	b.WriteString("📋 *Itens:*\n")
	for _, item := range order.Items {
		lineTotal := pricing.ResolveItemPrice(item) * float64(item.Quantity)

		fmt.Fprintf(&b, "• %dx %s", item.Quantity, item.Product.Name)
		if item.Variation != nil {
			fmt.Fprintf(&b, " (%s)", item.Variation.Name)
		}
		if item.SecondFlavor != nil {
			fmt.Fprintf(&b, " + %s", item.SecondFlavor.Name)
		}
		fmt.Fprintf(&b, " - R$ %.2f\n", lineTotal)

		if len(item.Addons) > 0 {
			names := make([]string, len(item.Addons))
			var addonTotal float64
			for i, addon := range item.Addons {
				names[i] = addon.Name
				addonTotal += addon.Price
			}
			fmt.Fprintf(&b, "   + %s (+R$ %.2f)\n", strings.Join(names, ", "), addonTotal)
		}
		if item.Notes != "" {
			fmt.Fprintf(&b, "   📝 %s\n", item.Notes)
		}
	}

	// Valores
	fmt.Fprintf(&b, "\n💰 *Subtotal:* R$ %.2f\n", order.Subtotal)
	if order.OrderType == models.OrderTypeDelivery {
		fmt.Fprintf(&b, "🚚 *Taxa de Entrega:* R$ %.2f\n", order.DeliveryFee)
	}

	// Retrait
	switch order.OrderType {
	case models.OrderTypeDelivery:
		fmt.Fprintf(&b, "\n🏠 *Endereço:* %s", order.Address)
		if order.AddressComplement != "" {
			fmt.Fprintf(&b, " - %s", order.AddressComplement)
		}
		b.WriteString("\n")
	case models.OrderTypePickup:
		b.WriteString("\n🏪 *Retirada no local*\n")
	case models.OrderTypeTable:
		fmt.Fprintf(&b, "\n🍽️ *Mesa:* %d\n", order.TableNumber)
	}

	fmt.Fprintf(&b, "\n💵 *TOTAL: R$ %.2f*\n", order.Total)

	// Pagamento
	if label, ok := paymentLabels[order.PaymentMethod]; ok {
		fmt.Fprintf(&b, "\n💳 *Pagamento:* %s\n", label)
		if order.PaymentMethod == models.PaymentCash && order.NeedChange {
			fmt.Fprintf(&b, "💸 *Troco para:* R$ %.2f\n", order.ChangeAmount)
		}
		if order.PaymentMethod == models.PaymentPix && pixKey != "" {
			fmt.Fprintf(&b, "🔑 *Chave PIX:* %s\n", pixKey)
		}
	}

	// Observações
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n📝 *Observações:* %s\n", order.Notes)
	}

	b.WriteString("\n✅ Pedido gerado pelo cardápio digital")

	return b.String()
}
