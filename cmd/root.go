package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showroom",
		Short: "Cedora furniture catalog server with AI-assisted room previews",
		Long: `Showroom serves the Cedora furniture catalog and the AI virtual
room preview workflow.

A preview session lets a shopper pick a room photo (template or upload),
mark where a product should go, and request a photorealistic composite
generated by a vision-capable image model.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newPreviewCmd())

	return cmd
}
