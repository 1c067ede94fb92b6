package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/motion-mcp/internal/config"
	"github.com/roivaz/motion-mcp/internal/logging"
	"github.com/roivaz/motion-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "Motion.ai MCP server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("motion-api-key", "", "Motion API key (overrides MOTION_API_KEY)")
	root.PersistentFlags().String("motion-base-url", config.DefaultMotionBaseURL, "Motion API base URL")
	root.PersistentFlags().String("motion-timeout", "", "Timeout for each Motion API call (e.g. 30s); empty means none")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Int("port", 3000, "HTTP port")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("mcp-server: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	base, err := logging.NewForLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(base)

	srv := mcp.New(mcp.DefaultConfig(settings, logger))

	addr := settings.Addr()
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr, "motion", settings.MotionBaseURL, "jsonrpc", settings.JSONRPCPath)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
