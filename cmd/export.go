package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cedora-living/showroom/internal/catalog"
	"github.com/cedora-living/showroom/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the product catalog as a parquet file",
		Long: `Writes the embedded product catalog to a parquet file for
analytics and merchandising tooling.`,
		Example: `  showroom export --output catalog.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogService, err := catalog.NewService()
			if err != nil {
				return err
			}

			products := catalogService.Products(catalog.Query{Sort: catalog.SortFeatured})

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			writer := parquet.NewGenericWriter[models.Product](f)
			if _, err := writer.Write(products); err != nil {
				return fmt.Errorf("failed to write parquet rows: %w", err)
			}
			if err := writer.Close(); err != nil {
				return fmt.Errorf("failed to finalize parquet file: %w", err)
			}

			slog.Info("Catalog exported", "path", output, "products", len(products))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "catalog.parquet", "Output parquet file path")

	return cmd
}
