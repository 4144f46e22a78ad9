package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iksnae/bookmark-tag/internal"
	"github.com/iksnae/bookmark-tag/internal/pocket"
	"github.com/iksnae/bookmark-tag/internal/server"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a random Pocket favorite over HTTP",
	Long: `Start an HTTP server answering GET / and GET /random with one random Pocket
favorite as {"title": ..., "url": ...}, and GET /healthz with {"status": "ok"}.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ConsumerKey == "" || cfg.AccessToken == "" {
			return pocket.ErrMissingCredentials
		}

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(net.JoinHostPort("", port), pocket.NewPicker(newPocketClient(cfg)))
		return runServer(ctx, srv)
	},
}

// runServer serves until ctx is done, then shuts down gracefully
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		internal.PrintInfo("Listening on " + srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	internal.LogInfo("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to listen on")
}
