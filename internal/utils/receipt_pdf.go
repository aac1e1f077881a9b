package utils

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/orders"
)

// RenderReceiptPDF imprime le comprovante d'un pedido en PDF via Chrome
// headless. On génère le HTML nous-mêmes, pas besoin d'un front.
func RenderReceiptPDF(order models.Order) ([]byte, error) {
	html := generateReceiptHTML(order)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	// timeout pour éviter de bloquer
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBuf []byte

	err := chromedp.Run(ctx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(3.15). // 80mm, format bobina térmica
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

func generateReceiptHTML(order models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		name := item.Product.Name
		if item.Variation != nil {
			name += " (" + item.Variation.Name + ")"
		}
		if item.SecondFlavor != nil {
			name += " + " + item.SecondFlavor.Name
		}
		fmt.Fprintf(&rows, `<tr><td>%dx %s</td></tr>`, item.Quantity, name)
		if item.Notes != "" {
			fmt.Fprintf(&rows, `<tr><td class="note">Obs: %s</td></tr>`, item.Notes)
		}
	}

	address := ""
	if order.OrderType == models.OrderTypeDelivery {
		address = fmt.Sprintf(`<p>Endereço: %s</p>`, order.Address)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<style>
body { font-family: monospace; font-size: 12px; width: 280px; }
h1 { font-size: 14px; text-align: center; }
table { width: 100%%; border-collapse: collapse; }
.note { font-style: italic; padding-left: 10px; }
.total { font-weight: bold; border-top: 1px dashed #000; }
</style>
</head>
<body>
	<h1>Espaço Imperial</h1>
	<p>Pedido #%s — %s</p>
	<p>Cliente: %s<br>Telefone: %s</p>
	%s
	<table>%s</table>
	<p>Subtotal: R$ %.2f</p>
	<p>Taxa de entrega: R$ %.2f</p>
	<p class="total">TOTAL: R$ %.2f</p>
	<p>Pagamento: %s</p>
	<p>Status: %s</p>
</body>
</html>`,
		order.OrderNumber, order.CreatedAt.Format("02/01/2006 15:04"),
		order.CustomerName, order.CustomerPhone,
		address, rows.String(),
		order.Subtotal, order.DeliveryFee, order.Total,
		order.PaymentMethod, orders.StatusLabel(order.Status))
}
