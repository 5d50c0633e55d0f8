// Package catalog serves the static Cedora product list and its in-memory
// filter, search, and sort transformations.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/cedora-living/showroom/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var productsYAML []byte

// AllProducts is the sentinel collection that disables collection filtering.
const AllProducts = "All Products"

// SortOrder selects the product list ordering.
type SortOrder string

const (
	SortFeatured  SortOrder = "Featured"
	SortPriceAsc  SortOrder = "Price: Low to High"
	SortPriceDesc SortOrder = "Price: High to Low"
)

// Query filters and orders the product list.
type Query struct {
	Collection string
	Search     string
	Sort       SortOrder
}

// Service exposes the product catalog. The list is static for the life of
// the process; all queries are pure in-memory transformations.
type Service struct {
	products []models.Product
}

// NewService loads the embedded product list.
func NewService() (*Service, error) {
	var doc struct {
		Products []models.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(productsYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("embedded catalog is empty")
	}
	return &Service{products: doc.Products}, nil
}

// NewServiceFromProducts builds a service over an explicit product list.
func NewServiceFromProducts(products []models.Product) *Service {
	return &Service{products: products}
}

// Products returns the filtered, sorted product list. Featured order is the
// catalog's own ordering.
func (s *Service) Products(q Query) []models.Product {
	result := make([]models.Product, 0, len(s.products))

	search := strings.ToLower(q.Search)
	for _, p := range s.products {
		if q.Collection != "" && q.Collection != AllProducts && !hasCollection(p, q.Collection) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.ProductType), search) {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// Collections lists every collection name across the catalog, sorted, with
// the all-products sentinel first.
func (s *Service) Collections() []string {
	seen := make(map[string]struct{})
	for _, p := range s.products {
		for _, c := range p.CollectionNames {
			seen[c] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen)+1)
	for c := range seen {
		names = append(names, c)
	}
	sort.Strings(names)

	return append([]string{AllProducts}, names...)
}

// ByHandle looks a product up by its canonical slug.
func (s *Service) ByHandle(handle string) (models.Product, bool) {
	for _, p := range s.products {
		if p.Handle == handle {
			return p, true
		}
	}
	return models.Product{}, false
}

func hasCollection(p models.Product, collection string) bool {
	for _, c := range p.CollectionNames {
		if c == collection {
			return true
		}
	}
	return false
}
