// Package store décide si la loja accepte des pedidos à l'instant donné :
// drapeau manuel, mode manutenção, puis plage horaire configurée
// (avec passage minuit, ex: 18:00–02:00).
package store

import (
	"fmt"
	"time"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

// Reason — pourquoi la loja est fermée (pour l'affichage côté client).
type Reason string

const (
	ReasonOpen         Reason = "open"
	ReasonManualClose  Reason = "closed"
	ReasonMaintenance  Reason = "maintenance"
	ReasonOutsideHours Reason = "outside_hours"
)

const (
	defaultOpeningTime = "00:00"
	defaultClosingTime = "23:59"
)

// IsOpen — prédicat pur sur les settings et l'horloge.
// Sans settings, on considère la loja ouverte (fail-open).
func IsOpen(settings *models.Settings, now time.Time) bool {
	return Status(settings, now) == ReasonOpen
}

// Status retourne la raison détaillée du gate.
func Status(settings *models.Settings, now time.Time) Reason {
	if settings == nil {
		return ReasonOpen
	}
	if !settings.IsOpen {
		return ReasonManualClose
	}
	if settings.MaintenanceMode {
		return ReasonMaintenance
	}

	opening := settings.OpeningTime
	if opening == "" {
		opening = defaultOpeningTime
	}
	closing := settings.ClosingTime
	if closing == "" {
		closing = defaultClosingTime
	}

	// Comparaison lexicale de chaînes HH:MM zéro-paddées
	current := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())

	// Horaire nocturne : fermeture après minuit
	if closing < opening {
		if current >= opening || current < closing {
			return ReasonOpen
		}
		return ReasonOutsideHours
	}

	if current >= opening && current < closing {
		return ReasonOpen
	}
	return ReasonOutsideHours
}
