// Package staging owns the per-invocation workflow state for one AI room
// preview attempt: room selection, marker placement, composition, and the
// result view.
package staging

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cedora-living/showroom/internal/composing"
	"github.com/cedora-living/showroom/internal/models"
	"github.com/google/uuid"
)

// Stage is the current step of the preview workflow.
type Stage string

const (
	StageSelectingRoom Stage = "selecting_room"
	StagePlacingMarker Stage = "placing_marker"
	StageShowingResult Stage = "showing_result"

	// stageProcessing is a transient sub-state of marker placement, derived
	// from the busy flag rather than stored.
	stageProcessing Stage = "processing"
)

var (
	// ErrBusy rejects any mutation attempted while a composition is in
	// flight. At most one request is dispatched per session at a time.
	ErrBusy = errors.New("a composition is already in flight")

	// ErrNotReady rejects Process before both a room image and a marker
	// have been chosen.
	ErrNotReady = errors.New("room image and marker are required")

	// ErrWrongStage rejects an action that is not valid in the current stage.
	ErrWrongStage = errors.New("action not allowed in current stage")

	// ErrClosed rejects anything after the session has been discarded.
	ErrClosed = errors.New("preview session is closed")
)

// Session is one staging session. It is created when a shopper opens the AI
// preview for a product and discarded on close; nothing survives it.
type Session struct {
	ID        string
	Product   models.Product
	CreatedAt time.Time

	composer composing.Composer

	mu          sync.Mutex
	stage       Stage
	roomImage   string // template URL or upload data URI, exactly one active
	marker      *models.Marker
	resultImage string
	processing  bool
	closed      bool
	cancel      context.CancelFunc // set while a composition is in flight
	viewport    Viewport
}

// NewSession starts a fresh session in the room-selection stage.
func NewSession(product models.Product, composer composing.Composer) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Product:   product,
		CreatedAt: time.Now(),
		composer:  composer,
		stage:     StageSelectingRoom,
	}
}

// View is a read-only snapshot of session state for the HTTP surface.
type View struct {
	ID          string         `json:"id"`
	Product     models.Product `json:"product"`
	Stage       Stage          `json:"stage"`
	RoomImage   string         `json:"roomImage,omitempty"`
	Marker      *models.Marker `json:"marker,omitempty"`
	ResultImage string         `json:"resultImage,omitempty"`
	Processing  bool           `json:"processing"`
	Viewport    ViewportView   `json:"viewport"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Snapshot returns the current state. While a composition is in flight the
// stage reads as processing.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage := s.stage
	if s.processing {
		stage = stageProcessing
	}

	var marker *models.Marker
	if s.marker != nil {
		m := *s.marker
		marker = &m
	}

	return View{
		ID:          s.ID,
		Product:     s.Product,
		Stage:       stage,
		RoomImage:   s.roomImage,
		Marker:      marker,
		ResultImage: s.resultImage,
		Processing:  s.processing,
		Viewport:    s.viewport.view(s.marker),
		CreatedAt:   s.CreatedAt,
	}
}

// SelectTemplate picks a stock room photo. Any previous marker is cleared
// and the session moves to marker placement.
func (s *Session) SelectTemplate(url string) error {
	return s.selectRoom(url)
}

// SelectUpload uses an uploaded room photo, already read into a data URI.
// Last write wins if selections race; the session is single-user.
func (s *Session) SelectUpload(dataURI string) error {
	return s.selectRoom(dataURI)
}

func (s *Session) selectRoom(source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.processing {
		return ErrBusy
	}

	s.roomImage = source
	s.marker = nil
	s.resultImage = ""
	s.viewport.reset()
	s.stage = StagePlacingMarker
	return nil
}

// Back returns from marker placement to room selection, discarding the
// room image and marker.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.processing {
		return ErrBusy
	}
	if s.stage != StagePlacingMarker {
		return ErrWrongStage
	}

	s.roomImage = ""
	s.marker = nil
	s.stage = StageSelectingRoom
	return nil
}

// PlaceMarker records where the product should be composited, overwriting
// any existing marker.
func (s *Session) PlaceMarker(m models.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.processing {
		return ErrBusy
	}
	if s.stage != StagePlacingMarker {
		return ErrWrongStage
	}

	s.marker = &m
	return nil
}

// Process dispatches the composition request and blocks until it settles.
// Exactly one request can be in flight; concurrent calls are rejected with
// ErrBusy and dispatch nothing. On failure the session stays in marker
// placement so the shopper can retry without re-selecting the room.
func (s *Session) Process(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.processing {
		s.mu.Unlock()
		return ErrBusy
	}
	if s.roomImage == "" || s.marker == nil || s.stage != StagePlacingMarker {
		s.mu.Unlock()
		return ErrNotReady
	}

	req := composing.Request{
		RoomImage:    s.roomImage,
		ProductImage: s.Product.PrimaryImageURL(),
		ProductName:  s.Product.Name,
		Marker:       *s.marker,
	}

	ctx, cancel := context.WithCancel(ctx)
	s.processing = true
	s.cancel = cancel
	s.mu.Unlock()

	result, err := s.composer.Compose(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer cancel()

	s.processing = false
	s.cancel = nil

	if s.closed {
		// The session was discarded mid-flight; drop the result.
		return ErrClosed
	}
	if err != nil {
		return err
	}

	s.resultImage = result
	s.viewport.reset()
	s.stage = StageShowingResult
	return nil
}

// RetryPosition rewinds from the result view to marker placement. The room
// image is kept; the result and the old marker are discarded so the shopper
// re-marks the spot.
func (s *Session) RetryPosition() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage != StageShowingResult {
		return ErrWrongStage
	}

	s.resultImage = ""
	s.marker = nil
	s.viewport.reset()
	s.stage = StagePlacingMarker
	return nil
}

// ResultImage returns the composite data URI, if one has been produced.
func (s *Session) ResultImage() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultImage, s.resultImage != ""
}

// Close discards the session and cancels any in-flight composition so a
// late result never mutates discarded state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

// ToggleFocus flips the focused view over the result image. The pan offset
// resets to the origin on every toggle.
func (s *Session) ToggleFocus() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage != StageShowingResult {
		return ErrWrongStage
	}

	s.viewport.toggleFocus()
	return nil
}

// DragStart begins a pan gesture at the given client position.
func (s *Session) DragStart(clientX, clientY float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage != StageShowingResult {
		return ErrWrongStage
	}

	s.viewport.dragStart(clientX, clientY)
	return nil
}

// DragMove accumulates pointer movement into the pan offset while a drag
// gesture is active.
func (s *Session) DragMove(clientX, clientY float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage != StageShowingResult {
		return ErrWrongStage
	}

	s.viewport.dragMove(clientX, clientY)
	return nil
}

// DragEnd releases the active pan gesture.
func (s *Session) DragEnd() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.stage != StageShowingResult {
		return ErrWrongStage
	}

	s.viewport.dragEnd()
	return nil
}

// SetViewportBounds records the rendered size of the result element so pan
// clamping tracks the actual display.
func (s *Session) SetViewportBounds(width, height float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.viewport.setBounds(width, height)
	return nil
}
