package composing

import (
	"context"
	"errors"
	"fmt"

	"github.com/cedora-living/showroom/internal/models"
)

var (
	// ErrNoImageInResponse indicates the generation service answered but
	// returned no inline image part.
	ErrNoImageInResponse = errors.New("no image in generation response")

	// ErrComposition wraps every other failure of the compose call:
	// transport, auth, quota, encoding, malformed response.
	ErrComposition = errors.New("composition failed")
)

// Request carries everything needed to composite a product into a room photo.
type Request struct {
	RoomImage    string // template URL or upload data URI
	ProductImage string // product's primary image URL
	ProductName  string
	Marker       models.Marker
}

// Composer produces a photorealistic composite for a staging request,
// returned as a PNG data URI. A call may take several seconds; callers
// surface their own busy state for the duration.
type Composer interface {
	Compose(ctx context.Context, req Request) (string, error)
}

// BuildPrompt renders the staging instruction block sent alongside the two
// images. The wording is deliberately fixed: the model is told which image
// is which, where to center the product (to one decimal place), and that
// the product's visual identity must survive the composite untouched.
func BuildPrompt(productName string, marker models.Marker) string {
	return fmt.Sprintf(`Task: Professional AI Furniture Inpainting & Virtual Staging.
1. Input: Image 1 is the base room. Image 2 is the exact product: "%s".
2. Target Placement: Center the furniture item exactly at the position: [X:%.1f%%, Y:%.1f%%].
3. Erase & Clean: If any existing furniture or object is currently at or near the marked location, cleanly erase it. Reconstruct the room floor and background where the object was removed to look natural.
4. Faithful Reproduction (CRITICAL): Do NOT hallucinate or alter the furniture design. The product in the final image must be a 100%% faithful reproduction of the item in Image 2. Maintain its exact shape, textures, colors, and unique features. It must look like the real Cedora product.
5. Integration: Adjust the furniture's scale, rotation, and perspective to match the room's geometry. Apply lighting, reflections, and soft contact shadows so it appears physically present in the space.
6. Quality: Generate a single, photorealistic output. Output ONLY the image data.`,
		productName, marker.X, marker.Y)
}
