package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shiftsync/config"
	"shiftsync/storage"
	"shiftsync/web"
)

var (
	servePort   int
	serveDBPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP import API",
	Long: `Start a local HTTP server exposing the import endpoint and read-only
shift/store queries.

POST /api/import accepts either a multipart file upload or an
already-decoded JSON payload and returns the import result summary.`,
	Example: `
  # Start the API on the default port
  shiftsync serve

  # Start with an explicit database and port
  shiftsync serve --port 9090 --db ./shiftsync.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(serveDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		handler, err := web.NewServer(store, *cfg)
		if err != nil {
			return err
		}

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", servePort),
			Handler: handler,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		fmt.Printf("Listening on http://localhost:%d\n", servePort)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP port for the local import API")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "./shiftsync.db", "Path to local SQLite database")
}
