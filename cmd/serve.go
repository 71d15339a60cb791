package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytznab/ytznab/api"
	"github.com/ytznab/ytznab/api/types"
	"github.com/ytznab/ytznab/internal/services/search"
	"github.com/ytznab/ytznab/pkg/config"
	"github.com/ytznab/ytznab/pkg/ytdlp"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the indexer server",
	Long: `Start the Torznab indexer server with the configured settings.

The server answers Torznab API requests under the configured base path
and forwards searches to the local yt-dlp binary.

Example:
  ytznab serve
  ytznab serve --port 9119
  ytznab serve --host 0.0.0.0 --port 9117`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	client := ytdlp.New(cfg.YTDLP.Path, cfg.YTDLP.Timeout)
	if err := client.ValidateBinary(); err != nil {
		// The binary may appear later (e.g. mounted in after startup), so
		// this is a warning rather than a startup failure
		logrus.WithError(err).Warn("yt-dlp binary not found on PATH, searches will fail until it is available")
	}

	deps := &types.Dependencies{
		Config:   cfg,
		Searcher: search.NewService(client, cfg.YTDLP.MaxResults),
		Tool:     client,
	}

	server := api.NewServer(cfg, deps)
	if err := server.Initialize(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"host":      cfg.Server.Host,
		"port":      cfg.Server.Port,
		"base_path": cfg.Indexer.BasePath,
	}).Info("Starting indexer server")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
		logrus.Info("Shutting down server")
	case err := <-serverErr:
		logrus.WithError(err).Error("Server error, shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		return err
	}

	logrus.Info("Server gracefully stopped")
	return nil
}
