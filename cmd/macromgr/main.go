// Macro Manager
//
// A terminal nutrition calculator: daily calorie and macronutrient targets
// from a personal profile, plus an adjustable protein/carbs/fat split.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/macromgr/macromgr/internal/config"
	"github.com/macromgr/macromgr/internal/services/macros"
	"github.com/macromgr/macromgr/internal/tui"
	"github.com/macromgr/macromgr/internal/util"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse command line flags
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		envFile     = flag.String("env-file", "", "Path to a dotenv file (default .env)")
		showVersion = flag.Bool("version", false, "Show version and exit")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	// Show version
	if *showVersion {
		fmt.Printf("Macro Manager version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		// Force exit after timeout
		time.AfterFunc(5*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	// Run the application
	if err := run(ctx, *configPath, *envFile, *debugMode); err != nil {
		fmt.Fprintf(os.Stderr, "macromgr: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, envFile string, debugMode bool) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	// Load configuration
	cfg, cfgPath, err := config.Load(configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		logOut = logFile
	}

	sessionID := util.NewSessionID()
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	})).With("session", sessionID)
	slog.SetDefault(logger)

	slog.Info("Macro Manager starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	store := macros.NewStore().WithLogger(logger)

	// Set version info for TUI
	tui.Version = Version
	tui.BuildTime = BuildTime
	tui.Session = util.ShortID(sessionID)

	if err := tui.Run(ctx, cfg, store, logger); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("Macro Manager shutdown complete")
	return nil
}
