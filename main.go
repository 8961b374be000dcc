package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tournevent/carriertrack/internal/server"
	"github.com/tournevent/carriertrack/internal/telemetry"
	"github.com/tournevent/carriertrack/pkg/tracknum"
	"go.uber.org/zap"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "carriertrack",
	Short:   "Delivro Carrier Track - tracking number classification service",
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classification server",
	RunE:  runServe,
}

var classifyCmd = &cobra.Command{
	Use:   "classify <number>...",
	Short: "Classify tracking numbers and print carrier and tracking URL",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize telemetry
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(ctx)
	}

	// Initialize validator registry with all enabled carriers
	registry := initValidatorRegistry(cfg)

	logger.Info("Starting Delivro Carrier Track",
		zap.Int("port", cfg.Port),
		zap.String("version", cfg.Version),
	)

	// Start HTTP server
	metrics := telemetry.NewMetrics()
	srv := server.New(server.Config{Port: cfg.Port}, registry, logger, metrics)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry := initValidatorRegistry(cfg)
	out := cmd.OutOrStdout()

	for _, raw := range args {
		result, err := registry.Lookup(raw)
		if err != nil {
			if errors.Is(err, tracknum.ErrNoMatch) {
				fmt.Fprintf(out, "%s\tno match\n", raw)
				continue
			}
			return err
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", raw, result.Service, result.TrackingURL)
	}
	return nil
}
