package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cedora-living/showroom/internal/models"
	"github.com/cedora-living/showroom/internal/rooms"
)

// StorefrontClient pulls the live product list from the Cedora storefront's
// Shopify-style products.json endpoint. Used by the sync command to refresh
// the embedded catalog data.
type StorefrontClient struct {
	BaseURL    string
	httpClient *http.Client
}

// NewStorefrontClient creates a new storefront client
func NewStorefrontClient(baseURL string) *StorefrontClient {
	return &StorefrontClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchProducts fetches up to limit products from the storefront.
func (c *StorefrontClient) FetchProducts(limit int) ([]models.Product, error) {
	listURL := fmt.Sprintf("%s/products.json?limit=%d", c.BaseURL, limit)

	resp, err := c.httpClient.Get(listURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch storefront products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("storefront returned status %d: %s", resp.StatusCode, string(body))
	}

	var storefrontResp struct {
		Products []struct {
			ID          int    `json:"id"`
			Title       string `json:"title"`
			Handle      string `json:"handle"`
			ProductType string `json:"product_type"`
			Tags        string `json:"tags"`
			Variants    []struct {
				Price string `json:"price"`
			} `json:"variants"`
			Images []struct {
				Src string `json:"src"`
			} `json:"images"`
		} `json:"products"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&storefrontResp); err != nil {
		return nil, fmt.Errorf("failed to decode storefront response: %w", err)
	}

	products := make([]models.Product, 0, len(storefrontResp.Products))
	for _, rec := range storefrontResp.Products {
		tags := splitTags(rec.Tags)

		var price float64
		if len(rec.Variants) > 0 {
			price, err = strconv.ParseFloat(rec.Variants[0].Price, 64)
			if err != nil {
				// Skip records with an unparseable price
				continue
			}
		}

		imageURLs := make([]string, 0, len(rec.Images))
		for _, img := range rec.Images {
			imageURLs = append(imageURLs, img.Src)
		}

		products = append(products, models.Product{
			ProductID:       rec.ID,
			Name:            rec.Title,
			Handle:          rec.Handle,
			ProductURL:      fmt.Sprintf("%s/products/%s", c.BaseURL, rec.Handle),
			Price:           price,
			Room:            roomFromTags(tags),
			ProductType:     rec.ProductType,
			CollectionNames: tags,
			ImageURLs:       imageURLs,
		})
	}

	return products, nil
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// roomFromTags picks the first tag that names a known room category.
func roomFromTags(tags []string) string {
	known := make(map[string]struct{})
	for _, name := range rooms.Categories() {
		known[name] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := known[tag]; ok {
			return tag
		}
	}
	return rooms.DefaultCategory
}
