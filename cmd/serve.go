package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cedora-living/showroom/internal/catalog"
	"github.com/cedora-living/showroom/internal/gemini"
	"github.com/cedora-living/showroom/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog and AI preview server",
		Long: `Starts the Showroom web server on the specified port.

The server exposes the product catalog (filter, search, sort, collections)
and the AI room preview workflow: room selection, marker placement,
composition via Gemini, and result download/share.`,
		Example: `  # Start server on default port 8888
  showroom serve

  # Start server on custom port
  showroom serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogService, err := catalog.NewService()
			if err != nil {
				return err
			}
			handler := handlers.New(catalogService, gemini.New())

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/products", handler.HandleProducts)
			mux.HandleFunc("/api/products/", handler.HandleProductDetail)
			mux.HandleFunc("/api/collections", handler.HandleCollections)
			mux.HandleFunc("/api/rooms/", handler.HandleRoomTemplates)
			mux.HandleFunc("/api/previews", handler.HandlePreviews)
			mux.HandleFunc("/api/previews/", handler.HandlePreviewDetail)
			mux.HandleFunc("/", handler.HandleStatic)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Showroom available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}
