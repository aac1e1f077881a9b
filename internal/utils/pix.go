package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// GeneratePixQR génère le QR "PIX copia e cola" (BR Code statique EMV)
// en base64, prêt à mettre dans <img src="...">
func GeneratePixQR(pixKey, merchantName, city string, amount float64) (string, error) {
	payload := BuildPixPayload(pixKey, merchantName, city, amount)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// BuildPixPayload construit le payload BR Code statique (EMV-MPM).
// Champs : format 00, compte marchand 26 (GUI pix + chave), catégorie 52,
// devise 53 (986 = BRL), montant 54, pays 58, nom 59, ville 60, txid 62,
// CRC 63 en dernier.
func BuildPixPayload(pixKey, merchantName, city string, amount float64) string {
	if merchantName == "" {
		merchantName = "LOJA"
	}
	if city == "" {
		city = "BRASIL"
	}
	// Limites du standard EMV
	merchantName = truncate(strings.ToUpper(merchantName), 25)
	city = truncate(strings.ToUpper(city), 15)

	merchantAccount := emvField("00", "br.gov.bcb.pix") + emvField("01", pixKey)

	var b strings.Builder
	b.WriteString(emvField("00", "01"))
	b.WriteString(emvField("26", merchantAccount))
	b.WriteString(emvField("52", "0000"))
	b.WriteString(emvField("53", "986"))
	if amount > 0 {
		b.WriteString(emvField("54", fmt.Sprintf("%.2f", amount)))
	}
	b.WriteString(emvField("58", "BR"))
	b.WriteString(emvField("59", merchantName))
	b.WriteString(emvField("60", city))
	b.WriteString(emvField("62", emvField("05", "***")))

	// Le CRC couvre tout le payload, "6304" inclus
	payload := b.String() + "6304"
	return payload + fmt.Sprintf("%04X", crc16CCITT([]byte(payload)))
}

func emvField(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// crc16CCITT — CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), exigé
// par la spec BR Code
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
