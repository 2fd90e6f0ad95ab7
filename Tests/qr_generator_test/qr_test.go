package qr_generator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-events/internal/events/qr"
)

func TestEventURL(t *testing.T) {
	gen := qr.NewGenerator("https://portal.example.com/")

	// Trailing slash on the base URL must not double up
	assert.Equal(t, "https://portal.example.com/events/e1", gen.EventURL("e1"))
}

func TestGenerateEventQR(t *testing.T) {
	gen := qr.NewGenerator("https://portal.example.com")

	png, err := gen.GenerateEventQR("test-event-id")
	if err != nil {
		t.Fatalf("Failed to generate QR code: %v", err)
	}

	if len(png) == 0 {
		t.Error("Generated QR code is empty")
	}

	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestGenerateEventQRDiffersPerEvent(t *testing.T) {
	gen := qr.NewGenerator("https://portal.example.com")

	png1, err := gen.GenerateEventQR("event-1")
	if err != nil {
		t.Fatalf("Failed to generate QR code for event-1: %v", err)
	}

	png2, err := gen.GenerateEventQR("event-2")
	if err != nil {
		t.Fatalf("Failed to generate QR code for event-2: %v", err)
	}

	if bytes.Equal(png1, png2) {
		t.Error("QR codes for different events should be different")
	}
}
