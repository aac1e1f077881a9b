package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNumber(t *testing.T) {
	assert.Equal(t, "5532988887777", SanitizeNumber("+55 (32) 98888-7777"))
	assert.Equal(t, "5511999999999", SanitizeNumber("5511999999999"))
}

func TestBuildLink(t *testing.T) {
	link := BuildLink("+55 32 98888-7777", "Olá, mundo!")
	assert.Equal(t, "https://wa.me/5532988887777?text=Ol%C3%A1%2C+mundo%21", link)
}
