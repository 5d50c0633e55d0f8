package geometry

import (
	"testing"

	"github.com/cedora-living/showroom/internal/models"
)

func TestNormalize(t *testing.T) {
	rect := Rect{Left: 100, Top: 50, Width: 400, Height: 200}

	tests := []struct {
		name     string
		clientX  float64
		clientY  float64
		expected models.Marker
	}{
		{
			name:     "top-left corner",
			clientX:  100,
			clientY:  50,
			expected: models.Marker{X: 0, Y: 0},
		},
		{
			name:     "bottom-right corner",
			clientX:  500,
			clientY:  250,
			expected: models.Marker{X: 100, Y: 100},
		},
		{
			name:     "center",
			clientX:  300,
			clientY:  150,
			expected: models.Marker{X: 50, Y: 50},
		},
		{
			name:     "interior point",
			clientX:  200,
			clientY:  100,
			expected: models.Marker{X: 25, Y: 25},
		},
		{
			name:     "clamps left of element",
			clientX:  50,
			clientY:  150,
			expected: models.Marker{X: 0, Y: 50},
		},
		{
			name:     "clamps past bottom-right",
			clientX:  600,
			clientY:  300,
			expected: models.Marker{X: 100, Y: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, err := Normalize(tt.clientX, tt.clientY, rect)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if marker != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, marker)
			}
		})
	}
}

func TestNormalizeDegenerateRect(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
	}{
		{name: "zero width", rect: Rect{Width: 0, Height: 100}},
		{name: "zero height", rect: Rect{Width: 100, Height: 0}},
		{name: "negative width", rect: Rect{Width: -10, Height: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(10, 10, tt.rect); err == nil {
				t.Error("Expected error for degenerate rect")
			}
		})
	}
}

func TestDenormalizeInvertsNormalize(t *testing.T) {
	rect := Rect{Left: 20, Top: 10, Width: 800, Height: 600}

	marker, err := Normalize(420, 310, rect)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	x, y := Denormalize(marker, rect)
	if x != 420 || y != 310 {
		t.Errorf("Expected (420, 310), got (%v, %v)", x, y)
	}
}
