// Package whatsapp construit les liens de handoff vers le client de
// messagerie. Émission one-way : on n'attend aucune réponse, l'envoi
// final est fait manuellement par l'utilisateur dans WhatsApp.
package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// BuildLink construit l'URL wa.me préremplie avec le texto.
func BuildLink(phoneNumber, text string) string {
	return baseURL + SanitizeNumber(phoneNumber) + "?text=" + url.QueryEscape(text)
}

// SanitizeNumber ne garde que les chiffres (le format wa.me exige
// code pays + DDD + numéro, sans ponctuation)
func SanitizeNumber(phoneNumber string) string {
	var b strings.Builder
	for _, r := range phoneNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
