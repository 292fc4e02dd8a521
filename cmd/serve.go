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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"slasshy/internal/gateway"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the TMDB proxy gateway",
	Long: `Serve starts the stateless proxy that forwards catalog search requests
to TMDB with a server-held API key, so clients never see the credential.
Unlike the rest of the CLI, the gateway refuses to start without a key:
it has no degraded mode to offer.`,
	RunE: serveRun,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":3001", "Listen address")
}

func serveRun(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	gw, err := gateway.New(cfg.TMDBAPIKey, logger)
	if err != nil {
		return fmt.Errorf("starting gateway: %w", err)
	}

	srv := &http.Server{
		Addr:              flagAddr,
		Handler:           gw.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", flagAddr).Msg("gateway listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("gateway server: %w", err)
		}
	case <-stop:
		logger.Info().Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
