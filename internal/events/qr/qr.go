package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// Generator renders share QR codes linking to an event's public page.
type Generator struct {
	baseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/")}
}

// EventURL returns the public page URL encoded for an event.
func (g *Generator) EventURL(eventID string) string {
	return fmt.Sprintf("%s/events/%s", g.baseURL, eventID)
}

// GenerateEventQR renders the share QR as a PNG.
func (g *Generator) GenerateEventQR(eventID string) ([]byte, error) {
	png, err := qrcode.Encode(g.EventURL(eventID), qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR: %w", err)
	}
	return png, nil
}
