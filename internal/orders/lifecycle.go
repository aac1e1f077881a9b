package orders

import "fmt"

// Statuts d'un pedido, dans l'ordre du parcours nominal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// happyPath — progression nominale, sans saut d'étape.
var happyPath = []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered}

var statusLabels = map[string]string{
	StatusPending:   "Pendente",
	StatusConfirmed: "Confirmado",
	StatusPreparing: "Preparando",
	StatusReady:     "Pronto",
	StatusDelivered: "Entregue",
	StatusCancelled: "Cancelado",
}

var statusMessages = map[string]string{
	StatusPending:   "Seu pedido foi recebido e está aguardando confirmação!",
	StatusConfirmed: "Seu pedido foi confirmado e logo será preparado!",
	StatusPreparing: "Seu pedido está sendo preparado com carinho!",
	StatusReady:     "Seu pedido está pronto! Aguardando retirada/entrega.",
	StatusDelivered: "Seu pedido foi entregue! Bom apetite!",
	StatusCancelled: "Infelizmente seu pedido foi cancelado.",
}

// IsValidStatus — vrai pour un statut connu.
func IsValidStatus(status string) bool {
	_, ok := statusLabels[status]
	return ok
}

// IsTerminal — delivered et cancelled ne bougent plus.
func IsTerminal(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// StatusLabel retourne le libellé client d'un statut.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// CanTransition applique la politique de séquencement : progression
// stricte le long du parcours nominal, annulation possible depuis tout
// état non terminal. L'écriture bas-niveau en base reste permissive
// (correction manuelle par l'admin) — cette vérification vit au call-site.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if IsTerminal(from) {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	for i := 0; i < len(happyPath)-1; i++ {
		if happyPath[i] == from {
			return happyPath[i+1] == to
		}
	}
	return false
}

// Transition valide et retourne le nouveau statut, ou une erreur de
// validation si la politique de séquencement refuse le passage.
func Transition(from, to string) (string, error) {
	if !IsValidStatus(to) {
		return "", ValidationError(fmt.Sprintf("status desconhecido: %s", to))
	}
	if !CanTransition(from, to) {
		return "", ValidationError(fmt.Sprintf("transição de %s para %s não permitida", StatusLabel(from), StatusLabel(to)))
	}
	return to, nil
}

// NotificationMessage compose le texto WhatsApp de notification client
// pour un statut donné, paramétré avec le numéro du pedido.
func NotificationMessage(customerName, orderNumber, status string) string {
	body, ok := statusMessages[status]
	if !ok {
		body = "Seu pedido foi atualizado."
	}
	return fmt.Sprintf("Olá, %s! 📦\n\n%s\n\nPedido: #%s\n\nObrigado pela preferência!", customerName, body, orderNumber)
}
