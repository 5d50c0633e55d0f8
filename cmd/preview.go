package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cedora-living/showroom/internal/catalog"
	"github.com/cedora-living/showroom/internal/composing"
	"github.com/cedora-living/showroom/internal/gemini"
	"github.com/cedora-living/showroom/internal/imaging"
	"github.com/cedora-living/showroom/internal/models"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var (
		handle string
		room   string
		x, y   float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run a one-shot AI room preview from the command line",
		Long: `Composites a catalog product into a room photo without starting
the server. The room can be a remote URL or a local image file; the marker
position is given as percentages of the room image.`,
		Example: `  showroom preview --product oslo-sofa \
    --room https://images.unsplash.com/photo-1583847268964-b28dc8f51f92 \
    --x 42.3 --y 61.0 --output preview.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogService, err := catalog.NewService()
			if err != nil {
				return err
			}

			product, ok := catalogService.ByHandle(handle)
			if !ok {
				return fmt.Errorf("unknown product handle: %s", handle)
			}

			roomImage, err := resolveRoomSource(room)
			if err != nil {
				return err
			}

			composer := gemini.New()
			result, err := composer.Compose(cmd.Context(), composing.Request{
				RoomImage:    roomImage,
				ProductImage: product.PrimaryImageURL(),
				ProductName:  product.Name,
				Marker:       models.Marker{X: x, Y: y},
			})
			if err != nil {
				return err
			}

			data, err := imaging.BytesFromDataURI(result)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			slog.Info("Preview written", "product", handle, "path", output, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "product", "", "Product handle to stage (required)")
	cmd.Flags().StringVar(&room, "room", "", "Room image URL or local file path (required)")
	cmd.Flags().Float64Var(&x, "x", 50, "Horizontal placement in percent")
	cmd.Flags().Float64Var(&y, "y", 50, "Vertical placement in percent")
	cmd.Flags().StringVarP(&output, "output", "o", "preview.png", "Output PNG file path")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("room")

	return cmd
}

// resolveRoomSource passes URLs and data URIs through; a local file path is
// read and embedded as a data URI, mirroring the upload flow.
func resolveRoomSource(room string) (string, error) {
	if imaging.IsDataURI(room) {
		return room, nil
	}
	if _, err := os.Stat(room); err != nil {
		// Not a local file; treat as a remote URL.
		return room, nil
	}

	data, err := os.ReadFile(room)
	if err != nil {
		return "", fmt.Errorf("failed to read room image: %w", err)
	}
	return imaging.DataURI(http.DetectContentType(data), data), nil
}
