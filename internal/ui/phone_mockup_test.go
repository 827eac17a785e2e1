package ui

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestCropToScreenRatio(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		wantW  int
		wantH  int
	}{
		{"wide image trims the sides", 1000, 1000, 462, 1000},
		{"tall image trims top and bottom", 900, 2400, 900, 1950},
		{"exact ratio is kept whole", 900, 1950, 900, 1950},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cropped, err := cropToScreenRatio(encodeTestPNG(t, tt.width, tt.height))
			if err != nil {
				t.Fatalf("cropToScreenRatio failed: %v", err)
			}

			b := cropped.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Expected %dx%d crop, got %dx%d", tt.wantW, tt.wantH, b.Dx(), b.Dy())
			}
		})
	}
}

func TestCropToScreenRatio_InvalidData(t *testing.T) {
	if _, err := cropToScreenRatio([]byte("not an image")); err == nil {
		t.Error("Expected an error for undecodable bytes")
	}
}
