package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/orders"
)

// SendNewOrderEmail prévient la loja par email qu'un pedido vient d'être
// créé. Optionnel : sans STORE_EMAIL configuré, on ne fait rien.
func SendNewOrderEmail(order models.Order) error {
	to := os.Getenv("STORE_EMAIL")
	if to == "" {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(envOr("SMTP_FROM", "noreply@espacoimperial.com.br")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}

	msg.Subject(fmt.Sprintf("🍔 Novo pedido #%s - %s", order.OrderNumber, order.CustomerName))
	msg.SetBodyString(mail.TypeTextHTML, generateNewOrderHTML(order))

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail pedido à", to)
	return client.DialAndSend(msg)
}

func generateNewOrderHTML(order models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		name := item.Product.Name
		if item.Variation != nil {
			name += " (" + item.Variation.Name + ")"
		}
		if item.SecondFlavor != nil {
			name += " + " + item.SecondFlavor.Name
		}
		fmt.Fprintf(&items, "<tr><td>%dx</td><td>%s</td></tr>", item.Quantity, name)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif;">
	<h2>Novo pedido #%s</h2>
	<p><strong>Cliente:</strong> %s — %s</p>
	<p><strong>Tipo:</strong> %s</p>
	<table>%s</table>
	<p><strong>Total:</strong> R$ %.2f</p>
	<p><strong>Status:</strong> %s</p>
</body>
</html>`,
		order.OrderNumber, order.CustomerName, order.CustomerPhone,
		order.OrderType, items.String(), order.Total, orders.StatusLabel(order.Status))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
