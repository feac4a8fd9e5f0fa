// netinv - Network Device Inventory
//
// This is the main entry point for netinv, a terminal inventory manager for
// routers, switches and servers. The inventory lives in a flat pipe-delimited
// text file, loaded on startup and saved on demand (or on quit, when
// configured).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/netinv/internal/device"
	"github.com/nerrad567/netinv/internal/infrastructure/config"
	"github.com/nerrad567/netinv/internal/infrastructure/logging"
	"github.com/nerrad567/netinv/internal/ui"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("starting netinv",
		"version", version,
		"commit", commit,
		"build_date", date,
		"config", configPath,
	)

	// Initialise device registry
	registry := device.NewRegistry()
	registry.SetLogger(log)

	if cfg.Inventory.Autoload {
		skipped, loadErr := registry.Load(ctx, cfg.Inventory.Path)
		if loadErr != nil {
			return fmt.Errorf("loading inventory: %w", loadErr)
		}
		log.Info("inventory loaded",
			"path", cfg.Inventory.Path,
			"devices", registry.Count(),
			"skipped", skipped,
		)
	}

	// Run the terminal UI until the user quits or the context is cancelled
	if err := ui.Run(ctx, registry, cfg, log); err != nil {
		return err
	}

	if cfg.Inventory.AutosaveOnQuit {
		// Shutdown save must not be cut short by the cancelled signal context
		if saveErr := registry.Save(context.Background(), cfg.Inventory.Path); saveErr != nil {
			return fmt.Errorf("saving inventory on quit: %w", saveErr)
		}
		log.Info("inventory saved",
			"path", cfg.Inventory.Path,
			"devices", registry.Count(),
		)
	}

	log.Info("netinv stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses NETINV_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("NETINV_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
