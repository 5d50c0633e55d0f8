package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/cedora-living/showroom/internal/composing"
	"github.com/cedora-living/showroom/internal/imaging"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultModel is an image-capable generation mode.
const defaultModel = "gemini-2.5-flash-image"

// Gemini composes staging images via Google Gemini.
type Gemini struct {
	Model   string
	encoder *imaging.Encoder
}

// New returns a new Gemini composer
func New() *Gemini {
	return &Gemini{
		Model:   defaultModel,
		encoder: imaging.NewEncoder(),
	}
}

// Compose sends the room image, product image, and placement instructions
// as a single multi-part request and extracts the first inline image from
// the response.
func (g *Gemini) Compose(ctx context.Context, req composing.Request) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY environment variable not set", composing.ErrComposition)
	}

	// The two encodes have no ordering dependency; failures propagate as
	// image-load errors so the caller can suggest a different room photo.
	roomPayload, err := g.encoder.EncodeBase64(ctx, req.RoomImage)
	if err != nil {
		return "", fmt.Errorf("room image: %w", err)
	}
	productPayload, err := g.encoder.EncodeBase64(ctx, req.ProductImage)
	if err != nil {
		return "", fmt.Errorf("product image: %w", err)
	}

	roomBytes, err := base64.StdEncoding.DecodeString(roomPayload)
	if err != nil {
		return "", fmt.Errorf("%w: room payload: %v", composing.ErrComposition, err)
	}
	productBytes, err := base64.StdEncoding.DecodeString(productPayload)
	if err != nil {
		return "", fmt.Errorf("%w: product payload: %v", composing.ErrComposition, err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: creating gemini client: %v", composing.ErrComposition, err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.Model)

	resp, err := model.GenerateContent(ctx,
		genai.ImageData("jpeg", roomBytes),
		genai.ImageData("jpeg", productBytes),
		genai.Text(composing.BuildPrompt(req.ProductName, req.Marker)),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", composing.ErrComposition, err)
	}

	if len(resp.Candidates) == 0 {
		return "", composing.ErrNoImageInResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", composing.ErrNoImageInResponse
	}

	// The response shape is loose: scan parts in order and take the first
	// one carrying inline image data.
	for _, part := range candidate.Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return imaging.DataURI("image/png", blob.Data), nil
		}
	}

	return "", composing.ErrNoImageInResponse
}
