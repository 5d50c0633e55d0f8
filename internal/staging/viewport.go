package staging

import "github.com/cedora-living/showroom/internal/models"

const (
	// FocusZoom is the scale factor of the focused view, anchored at the
	// marker position.
	FocusZoom = 3.0

	// dragSensitivity damps pointer deltas while panning the zoomed view.
	dragSensitivity = 0.8

	// Fallback rendered size used for pan clamping until the client
	// reports the real element bounds.
	defaultBoundsWidth  = 1200.0
	defaultBoundsHeight = 800.0
)

// Pan is a translation offset over the zoomed result image, in client pixels.
type Pan struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the ephemeral zoom/pan state over a result image. It is only
// meaningful while the session shows a result and resets whenever focus
// toggles or a new result arrives.
type Viewport struct {
	focused  bool
	pan      Pan
	dragging bool

	dragStartX, dragStartY float64
	panStartX, panStartY   float64

	boundsWidth, boundsHeight float64
}

// ViewportView is the JSON shape of the viewport state.
type ViewportView struct {
	Focused bool    `json:"focused"`
	Pan     Pan     `json:"pan"`
	Zoom    float64 `json:"zoom"`
	OriginX float64 `json:"originX"` // transform-origin percentages
	OriginY float64 `json:"originY"`
}

func (v *Viewport) view(marker *models.Marker) ViewportView {
	zoom := 1.0
	if v.focused {
		zoom = FocusZoom
	}
	// The marker percentages feed the transform origin directly; without a
	// marker the zoom centers on the image.
	originX, originY := 50.0, 50.0
	if marker != nil {
		originX, originY = marker.X, marker.Y
	}
	return ViewportView{
		Focused: v.focused,
		Pan:     v.pan,
		Zoom:    zoom,
		OriginX: originX,
		OriginY: originY,
	}
}

func (v *Viewport) toggleFocus() {
	v.focused = !v.focused
	v.pan = Pan{}
	v.dragging = false
}

func (v *Viewport) reset() {
	v.focused = false
	v.pan = Pan{}
	v.dragging = false
}

func (v *Viewport) setBounds(width, height float64) {
	if width > 0 && height > 0 {
		v.boundsWidth = width
		v.boundsHeight = height
	}
}

func (v *Viewport) dragStart(clientX, clientY float64) {
	if !v.focused {
		return
	}
	v.dragging = true
	v.dragStartX, v.dragStartY = clientX, clientY
	v.panStartX, v.panStartY = v.pan.X, v.pan.Y
}

func (v *Viewport) dragMove(clientX, clientY float64) {
	if !v.dragging || !v.focused {
		return
	}

	dx := (clientX - v.dragStartX) * dragSensitivity
	dy := (clientY - v.dragStartY) * dragSensitivity

	maxX, maxY := v.panLimits()
	v.pan.X = clamp(v.panStartX+dx, -maxX, maxX)
	v.pan.Y = clamp(v.panStartY+dy, -maxY, maxY)
}

func (v *Viewport) dragEnd() {
	v.dragging = false
}

// panLimits bounds the pan so the zoomed image can never be dragged fully
// out of view. At zoom z the image overflows the element by (z-1)/z of its
// size on each side of center, in pre-scale pixels.
func (v *Viewport) panLimits() (maxX, maxY float64) {
	width, height := v.boundsWidth, v.boundsHeight
	if width <= 0 || height <= 0 {
		width, height = defaultBoundsWidth, defaultBoundsHeight
	}
	maxX = width * (FocusZoom - 1) / (2 * FocusZoom)
	maxY = height * (FocusZoom - 1) / (2 * FocusZoom)
	return maxX, maxY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
