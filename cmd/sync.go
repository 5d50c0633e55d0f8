package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cedora-living/showroom/internal/catalog"
	"github.com/cedora-living/showroom/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSyncCmd() *cobra.Command {
	var (
		storeURL string
		output   string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the catalog data file from the storefront",
		Long: `Fetches the live product list from the Cedora storefront's
products.json endpoint and writes it as the YAML catalog data file.`,
		Example: `  showroom sync --store https://cedora-living.myshopify.com --output internal/catalog/products.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := catalog.NewStorefrontClient(storeURL)

			products, err := client.FetchProducts(limit)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				return fmt.Errorf("storefront returned no products")
			}

			doc := struct {
				Products []models.Product `yaml:"products"`
			}{Products: products}

			data, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal catalog: %w", err)
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			slog.Info("Catalog synced", "store", storeURL, "path", output, "products", len(products))
			return nil
		},
	}

	cmd.Flags().StringVar(&storeURL, "store", "https://cedora-living.myshopify.com", "Storefront base URL")
	cmd.Flags().StringVarP(&output, "output", "o", "internal/catalog/products.yaml", "Output YAML file path")
	cmd.Flags().IntVar(&limit, "limit", 250, "Maximum number of products to fetch")

	return cmd
}
