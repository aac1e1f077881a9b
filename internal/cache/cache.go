package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/database"
	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

const (
	SettingsCacheTTL   = 2 * time.Minute
	CategoriesCacheTTL = 10 * time.Minute

	settingsKey   = "settings:store"
	categoriesKey = "categories:active"
)

// GetSettingsFromCache récupère les settings depuis Redis ou ScyllaDB.
// Retourne (nil, nil) si aucune ligne settings n'existe encore.
func GetSettingsFromCache(ctx context.Context) (*models.Settings, error) {
	data, err := database.Redis.Get(ctx, settingsKey).Result()
	if err == nil {
		var settings models.Settings
		if json.Unmarshal([]byte(data), &settings) == nil {
			return &settings, nil
		}
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var s models.Settings
	err = session.Query(`SELECT id, whatsapp_number, store_name, store_address, delivery_fee,
		is_open, pix_key, opening_time, closing_time, closed_message, maintenance_mode, updated_at
		FROM settings LIMIT 1`).Scan(
		&s.ID, &s.WhatsappNumber, &s.StoreName, &s.StoreAddress, &s.DeliveryFee,
		&s.IsOpen, &s.PixKey, &s.OpeningTime, &s.ClosingTime, &s.ClosedMessage,
		&s.MaintenanceMode, &s.UpdatedAt)
	if err != nil {
		// Pas de settings : la loja fonctionne en mode fail-open
		return nil, nil
	}

	jsonData, _ := json.Marshal(s)
	database.Redis.Set(ctx, settingsKey, jsonData, SettingsCacheTTL)

	return &s, nil
}

// InvalidateSettingsCache invalide le cache des settings (après update admin)
func InvalidateSettingsCache(ctx context.Context) {
	database.Redis.Del(ctx, settingsKey)
}

// GetCategoriesFromCache récupère les catégories actives triées
func GetCategoriesFromCache(ctx context.Context) ([]models.Category, bool) {
	data, err := database.Redis.Get(ctx, categoriesKey).Result()
	if err != nil {
		return nil, false
	}

	var categories []models.Category
	if json.Unmarshal([]byte(data), &categories) != nil {
		return nil, false
	}
	return categories, true
}

// SetCategoriesCache met en cache la liste des catégories actives
func SetCategoriesCache(ctx context.Context, categories []models.Category) {
	jsonData, _ := json.Marshal(categories)
	database.Redis.Set(ctx, categoriesKey, jsonData, CategoriesCacheTTL)
}

// InvalidateCategoriesCache invalide le cache des catégories
func InvalidateCategoriesCache(ctx context.Context) {
	database.Redis.Del(ctx, categoriesKey)
}
