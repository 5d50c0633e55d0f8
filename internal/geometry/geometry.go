// Package geometry maps pointer positions over a rendered image to
// normalized percentage coordinates and back.
package geometry

import (
	"fmt"

	"github.com/cedora-living/showroom/internal/models"
)

// Rect is the rendered bounding box of an image element, in client pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Normalize converts a pointer position in client coordinates to a marker
// in percentage space relative to rect. Results are clamped to [0,100] so a
// click on the element edge can never produce an out-of-range marker.
func Normalize(clientX, clientY float64, rect Rect) (models.Marker, error) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return models.Marker{}, fmt.Errorf("degenerate bounding rect %+v", rect)
	}

	return models.Marker{
		X: clampPercent((clientX - rect.Left) / rect.Width * 100),
		Y: clampPercent((clientY - rect.Top) / rect.Height * 100),
	}, nil
}

// Denormalize is the inverse mapping, percentage space back to client
// pixels. The HTTP surface consumes percentages directly for marker and
// transform-origin rendering; this exists for clients that need pixel
// positions.
func Denormalize(m models.Marker, rect Rect) (x, y float64) {
	x = rect.Left + m.X/100*rect.Width
	y = rect.Top + m.Y/100*rect.Height
	return x, y
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
