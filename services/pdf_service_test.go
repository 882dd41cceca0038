package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicegen-backend/models"
)

// 1x1 transparent PNG.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func TestRenderProducesPDF(t *testing.T) {
	svc := NewPDFService()

	body, err := svc.Render(models.SampleInvoice())
	require.NoError(t, err)

	require.Greater(t, len(body), 1000)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestRenderEmptyInvoice(t *testing.T) {
	svc := NewPDFService()

	body, err := svc.Render(&models.Invoice{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestRenderWithLogo(t *testing.T) {
	svc := NewPDFService()
	inv := models.SampleInvoice()
	inv.LogoDataURL = "data:image/png;base64," + tinyPNG

	body, err := svc.Render(inv)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestRenderSkipsBadLogo(t *testing.T) {
	svc := NewPDFService()
	inv := models.SampleInvoice()
	inv.LogoDataURL = "data:image/png;base64,%%%not-base64%%%"

	body, err := svc.Render(inv)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		name     string
		dataURL  string
		wantOK   bool
		wantType string
	}{
		{"png", "data:image/png;base64," + tinyPNG, true, "PNG"},
		{"jpeg", "data:image/jpeg;base64,AAAA", true, "JPG"},
		{"gif", "data:image/gif;base64,AAAA", true, "GIF"},
		{"svg unsupported", "data:image/svg+xml;base64,AAAA", false, ""},
		{"not a data url", "https://example.com/logo.png", false, ""},
		{"missing encoding", "data:image/png,rawbytes", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageType, _, ok := decodeDataURL(tt.dataURL)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantType, imageType)
		})
	}
}
