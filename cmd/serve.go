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

	"github.com/stfelty/connect-team-hr-formatter/config"
	"github.com/stfelty/connect-team-hr-formatter/storage"
	"github.com/stfelty/connect-team-hr-formatter/web"
)

var (
	servePort   int
	serveDBPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start local read-only web UI over recorded report runs",
	Long: `Start a local HTTP server listing recorded report runs.

Each run page rebuilds the per-employee daily totals from the shifts stored
for that run. The UI is read-only.`,
	Example: `
  # Start local server on default port
  hrformatter serve

  # Custom port and database
  hrformatter serve --port 9090 --db ./hrformatter.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		log := newLogger(cfg.Log)

		store, err := storage.Open(serveDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", servePort),
			Handler: web.NewServer(store, log),
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

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP port for the local web server")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "./hrformatter.db", "Path to local SQLite database")
}
