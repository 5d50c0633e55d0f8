package catalog

import (
	"testing"

	"github.com/cedora-living/showroom/internal/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{ProductID: 1, Name: "Oslo Sofa", Handle: "oslo-sofa", Price: 1299, ProductType: "Sofa", CollectionNames: []string{"Living Room", "Scandinavian"}},
		{ProductID: 2, Name: "Luna Coffee Table", Handle: "luna-coffee-table", Price: 329, ProductType: "Coffee Table", CollectionNames: []string{"Living Room", "Modern Minimal"}},
		{ProductID: 3, Name: "Aria Platform Bed", Handle: "aria-platform-bed", Price: 1599, ProductType: "Bed Frame", CollectionNames: []string{"Bedroom"}},
		{ProductID: 4, Name: "Sena Dining Chair", Handle: "sena-dining-chair", Price: 189, ProductType: "Dining Chair", CollectionNames: []string{"Dining Room"}},
	}
}

func TestProductsFiltering(t *testing.T) {
	svc := NewServiceFromProducts(fixtureProducts())

	tests := []struct {
		name     string
		query    Query
		expected []int // product IDs in order
	}{
		{
			name:     "no filters keeps featured order",
			query:    Query{},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "all products sentinel disables collection filter",
			query:    Query{Collection: AllProducts},
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "filter by collection",
			query:    Query{Collection: "Living Room"},
			expected: []int{1, 2},
		},
		{
			name:     "search matches name case-insensitively",
			query:    Query{Search: "oslo"},
			expected: []int{1},
		},
		{
			name:     "search matches product type",
			query:    Query{Search: "dining"},
			expected: []int{4},
		},
		{
			name:     "search and collection combine",
			query:    Query{Collection: "Living Room", Search: "table"},
			expected: []int{2},
		},
		{
			name:     "price low to high",
			query:    Query{Sort: SortPriceAsc},
			expected: []int{4, 2, 1, 3},
		},
		{
			name:     "price high to low",
			query:    Query{Sort: SortPriceDesc},
			expected: []int{3, 1, 2, 4},
		},
		{
			name:     "no matches",
			query:    Query{Search: "chaise longue"},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Products(tt.query)
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d products, got %d", len(tt.expected), len(result))
			}
			for i, id := range tt.expected {
				if result[i].ProductID != id {
					t.Errorf("Expected product %d at index %d, got %d", id, i, result[i].ProductID)
				}
			}
		})
	}
}

func TestCollections(t *testing.T) {
	svc := NewServiceFromProducts(fixtureProducts())

	expected := []string{AllProducts, "Bedroom", "Dining Room", "Living Room", "Modern Minimal", "Scandinavian"}
	got := svc.Collections()

	if len(got) != len(expected) {
		t.Fatalf("Expected %d collections, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected collection %q at index %d, got %q", expected[i], i, got[i])
		}
	}
}

func TestByHandle(t *testing.T) {
	svc := NewServiceFromProducts(fixtureProducts())

	product, ok := svc.ByHandle("aria-platform-bed")
	if !ok {
		t.Fatal("Expected to find aria-platform-bed")
	}
	if product.Name != "Aria Platform Bed" {
		t.Errorf("Expected Aria Platform Bed, got %q", product.Name)
	}

	if _, ok := svc.ByHandle("no-such-product"); ok {
		t.Error("Expected lookup miss for unknown handle")
	}
}

func TestNewServiceLoadsEmbeddedCatalog(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	products := svc.Products(Query{})
	if len(products) == 0 {
		t.Fatal("Expected embedded catalog to have products")
	}

	for _, p := range products {
		if p.Handle == "" {
			t.Errorf("Product %d has no handle", p.ProductID)
		}
		if len(p.ImageURLs) == 0 {
			t.Errorf("Product %s has no images", p.Handle)
		}
	}
}
