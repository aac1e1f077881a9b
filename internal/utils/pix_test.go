package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC16CCITTKnownVector(t *testing.T) {
	// Vecteur de test standard CRC-16/CCITT-FALSE
	assert.Equal(t, uint16(0x29B1), crc16CCITT([]byte("123456789")))
}

func TestBuildPixPayloadShape(t *testing.T) {
	payload := BuildPixPayload("pix@loja.com.br", "Espaço Imperial", "Juiz de Fora", 45)

	assert.True(t, strings.HasPrefix(payload, "000201"))
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "pix@loja.com.br")
	assert.Contains(t, payload, "5303986")
	assert.Contains(t, payload, "540545.00")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "6304")

	// CRC final : 4 caractères hexadécimaux
	crc := payload[len(payload)-4:]
	for _, r := range crc {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F'))
	}
}

func TestBuildPixPayloadOmitsZeroAmount(t *testing.T) {
	payload := BuildPixPayload("chave", "Loja", "Cidade", 0)
	assert.NotContains(t, payload, "0.00")
}
