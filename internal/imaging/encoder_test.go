package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

// spyTransport fails every request and counts how many were attempted.
type spyTransport struct {
	calls int
}

func (s *spyTransport) RoundTrip(*http.Request) (*http.Response, error) {
	s.calls++
	return nil, fmt.Errorf("unexpected network call")
}

func TestEncodeBase64DataURIPassthrough(t *testing.T) {
	spy := &spyTransport{}
	encoder := &Encoder{HTTPClient: &http.Client{Transport: spy}}

	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))
	source := "data:image/jpeg;base64," + payload

	got, err := encoder.EncodeBase64(context.Background(), source)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != payload {
		t.Errorf("Expected payload %q, got %q", payload, got)
	}
	if spy.calls != 0 {
		t.Errorf("Expected zero network calls for data URI, got %d", spy.calls)
	}
}

func TestEncodeBase64DataURIWithoutPayload(t *testing.T) {
	encoder := NewEncoder()

	_, err := encoder.EncodeBase64(context.Background(), "data:image/jpeg;base64")
	if !errors.Is(err, ErrImageLoad) {
		t.Errorf("Expected ErrImageLoad, got %v", err)
	}
}

func TestEncodeBase64RemoteURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 6))
		for x := 0; x < 8; x++ {
			for y := 0; y < 6; y++ {
				img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
			}
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			t.Errorf("Failed to encode test image: %v", err)
		}
	}))
	defer server.Close()

	encoder := NewEncoder()

	got, err := encoder.EncodeBase64(context.Background(), server.URL+"/room.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got == "" {
		t.Fatal("Expected non-empty base64 payload")
	}

	// The remote image must come back re-encoded as JPEG.
	data, err := base64.StdEncoding.DecodeString(got)
	if err != nil {
		t.Fatalf("Payload is not valid base64: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		t.Error("Expected JPEG SOI marker at start of re-encoded payload")
	}
}

func TestEncodeBase64RemoteFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.jpg":
			http.NotFound(w, r)
		case "/corrupt.jpg":
			if _, err := w.Write([]byte("not an image")); err != nil {
				t.Errorf("Failed to write response: %v", err)
			}
		}
	}))
	defer server.Close()

	tests := []struct {
		name string
		path string
	}{
		{name: "http error", path: "/missing.jpg"},
		{name: "decode failure", path: "/corrupt.jpg"},
	}

	encoder := NewEncoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encoder.EncodeBase64(context.Background(), server.URL+tt.path)
			if !errors.Is(err, ErrImageLoad) {
				t.Errorf("Expected ErrImageLoad, got %v", err)
			}
		})
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}
	uri := DataURI("image/png", raw)

	got, err := BytesFromDataURI(uri)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("Expected %v, got %v", raw, got)
	}
}

func TestBytesFromDataURIRejectsBadPayload(t *testing.T) {
	if _, err := BytesFromDataURI("data:image/png;base64,!!!not-base64!!!"); !errors.Is(err, ErrImageLoad) {
		t.Errorf("Expected ErrImageLoad, got %v", err)
	}
}
