package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Joycemasalla/cardapioespacoimperial/internal/models"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.Local)
}

func openSettings() *models.Settings {
	return &models.Settings{
		IsOpen:      true,
		OpeningTime: "18:00",
		ClosingTime: "23:00",
	}
}

func TestIsOpenNilSettingsFailOpen(t *testing.T) {
	assert.True(t, IsOpen(nil, at(3, 0)))
}

func TestIsOpenManualCloseWinsOverHours(t *testing.T) {
	s := openSettings()
	s.IsOpen = false
	assert.False(t, IsOpen(s, at(19, 0)))
	assert.Equal(t, ReasonManualClose, Status(s, at(19, 0)))
}

func TestIsOpenMaintenanceMode(t *testing.T) {
	s := openSettings()
	s.MaintenanceMode = true
	assert.False(t, IsOpen(s, at(19, 0)))
	assert.Equal(t, ReasonMaintenance, Status(s, at(19, 0)))
}

func TestIsOpenNormalHours(t *testing.T) {
	s := openSettings()
	assert.False(t, IsOpen(s, at(17, 59)))
	assert.True(t, IsOpen(s, at(18, 0)))
	assert.True(t, IsOpen(s, at(22, 59)))
	// Borne de fermeture exclusive
	assert.False(t, IsOpen(s, at(23, 0)))
}

func TestIsOpenOvernightHours(t *testing.T) {
	s := &models.Settings{IsOpen: true, OpeningTime: "18:00", ClosingTime: "02:00"}

	assert.True(t, IsOpen(s, at(23, 0)))
	assert.True(t, IsOpen(s, at(1, 0)))
	assert.False(t, IsOpen(s, at(10, 0)))
	assert.False(t, IsOpen(s, at(2, 0)))
	assert.Equal(t, ReasonOutsideHours, Status(s, at(10, 0)))
}

func TestIsOpenUnsetHoursAlwaysOpen(t *testing.T) {
	s := &models.Settings{IsOpen: true}
	assert.True(t, IsOpen(s, at(0, 0)))
	assert.True(t, IsOpen(s, at(12, 0)))
	assert.True(t, IsOpen(s, at(23, 58)))
}
