// Package imaging prepares room and product images for the generative
// composition request.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrImageLoad indicates a source image could not be fetched, decoded, or
// re-encoded. Callers must treat it as a failed operation, never as an
// empty payload.
var ErrImageLoad = errors.New("image failed to load")

// jpegQuality matches the canvas re-encode quality of 0.8.
const jpegQuality = 80

// Encoder turns an image source (remote URL or data URI) into a base64
// JPEG payload suitable for an inline generation request part.
type Encoder struct {
	HTTPClient *http.Client
}

// NewEncoder creates an encoder with a bounded-timeout HTTP client.
func NewEncoder() *Encoder {
	return &Encoder{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// EncodeBase64 resolves source to a base64 image payload.
//
// A data URI is passed through: the payload after the first comma is
// returned verbatim with no network access. Anything else is fetched,
// decoded at natural dimensions, and re-encoded as JPEG to normalize the
// format before transmission.
func (e *Encoder) EncodeBase64(ctx context.Context, source string) (string, error) {
	if IsDataURI(source) {
		return PayloadFromDataURI(source)
	}

	data, err := e.fetch(ctx, source)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: decoding %s: %v", ErrImageLoad, source, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("%w: re-encoding %s: %v", ErrImageLoad, source, err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (e *Encoder) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrImageLoad, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: HTTP %d", ErrImageLoad, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrImageLoad, url, err)
	}

	return data, nil
}

// IsDataURI reports whether source is an embedded data URI rather than a
// remote URL.
func IsDataURI(source string) bool {
	return strings.HasPrefix(source, "data:")
}

// PayloadFromDataURI extracts the base64 payload of a data URI, the
// substring after the first comma.
func PayloadFromDataURI(uri string) (string, error) {
	idx := strings.Index(uri, ",")
	if idx < 0 {
		return "", fmt.Errorf("%w: data URI has no payload separator", ErrImageLoad)
	}
	return uri[idx+1:], nil
}

// DataURI wraps raw image bytes as an embedded data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// BytesFromDataURI decodes a data URI back into raw image bytes.
func BytesFromDataURI(uri string) ([]byte, error) {
	payload, err := PayloadFromDataURI(uri)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding data URI payload: %v", ErrImageLoad, err)
	}
	return data, nil
}
