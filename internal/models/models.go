package models

// Product is one catalog entry from the Cedora storefront.
type Product struct {
	ProductID       int      `json:"productId" yaml:"product_id" parquet:"product_id"`
	Name            string   `json:"name" yaml:"name" parquet:"name"`
	Handle          string   `json:"handle" yaml:"handle" parquet:"handle"`
	ProductURL      string   `json:"productUrl" yaml:"product_url" parquet:"product_url"`
	Price           float64  `json:"price" yaml:"price" parquet:"price"`
	Room            string   `json:"room" yaml:"room" parquet:"room"`
	ProductType     string   `json:"productType" yaml:"product_type" parquet:"product_type"`
	CollectionNames []string `json:"collectionNames" yaml:"collection_names" parquet:"collection_names,list"`
	ImageURLs       []string `json:"imageUrls" yaml:"image_urls" parquet:"image_urls,list"`
}

// PrimaryImageURL returns the first image URL, the one used for staging.
func (p Product) PrimaryImageURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// Marker is a normalized placement coordinate over a room image, expressed
// as percentages of the image's rendered size on each axis.
type Marker struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
