// Package main provides the phonotact binary entry point.
// Phonotact validates example words against a phonotactic scheme: named
// character classes, ordered match rules with pass/fail intent, and
// test words, all declared in a small line-oriented text format.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/phonotact/config"
	"github.com/c360studio/phonotact/display"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "phonotact"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		levelFlag  string
		noColor    bool
		watchMode  bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "phonotact [files...]",
		Short: "Phonotactic scheme checker",
		Long: `Phonotact validates example words against the phonotactic constraints
of a language, declared in a small line-oriented scheme format:

  $Vaeiou          define class V as the vowels
  @@Two vowels cannot be adjacent
  &+ VV            words matching VV are invalid
  *! tapa          tapa is expected to be valid
  *+ taapa         taapa is expected to be invalid
  ~ Long vowels    a note shown between results

Each word is judged by the first rule it violates; the report shows
pass/fail per declared test with the rule's reason on failure.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, configPath, levelFlag, noColor, watchMode, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&levelFlag, "level", "l", "", "Display level (all, notes, fails)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors in the report")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-run when scheme files change")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(checkCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setupLogging installs the default slog logger at the requested level.
func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// effectiveConfig loads the config file and folds the command-line
// flags over it. Flags win.
func effectiveConfig(configPath, levelFlag string, noColor bool) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Merge(&config.Config{
		Display: config.DisplayConfig{Level: levelFlag},
	})
	// Merge only overlays non-zero values, so switching color off is a
	// direct assignment.
	if noColor {
		cfg.Display.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// renderer builds the report renderer from the effective config.
func renderer(cfg *config.Config) (*display.Renderer, error) {
	level, err := display.ParseLevel(cfg.Display.Level)
	if err != nil {
		return nil, err
	}
	return &display.Renderer{
		Out:   os.Stdout,
		Level: level,
		Color: cfg.Display.Color,
	}, nil
}
