package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/c360studio/phonotact/display"
	"github.com/c360studio/phonotact/runner"
	"github.com/c360studio/phonotact/scheme"
	"github.com/c360studio/phonotact/source"
	"github.com/c360studio/phonotact/watch"
)

// run executes the root command: resolve scheme files, run their tests,
// render reports, and optionally keep re-running on change.
func run(args []string, configPath, levelFlag string, noColor, watchMode bool, logLevel string) error {
	logger := setupLogging(logLevel)

	cfg, err := effectiveConfig(configPath, levelFlag, noColor)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Files.Globs
	}

	files, err := source.ResolvePaths(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scheme files matched %v", patterns)
	}

	rend, err := renderer(cfg)
	if err != nil {
		return err
	}

	failed, err := runFiles(files, rend, logger)
	if err != nil {
		return err
	}

	if !watchMode {
		if failed {
			os.Exit(1)
		}
		return nil
	}

	return watchLoop(files, cfg.Watch.Debounce, rend, logger)
}

// runFiles parses and runs each scheme file in order, rendering one
// report per file. failed reports whether any test failed anywhere.
func runFiles(files []string, rend *display.Renderer, logger *slog.Logger) (failed bool, err error) {
	for _, path := range files {
		doc, err := source.Load(path)
		if err != nil {
			return failed, err
		}

		sch, err := scheme.Parse(doc.Text)
		if err != nil {
			return failed, fmt.Errorf("parse %s: %w", path, err)
		}

		results := runner.Run(sch)
		logger.Info("Scheme run complete",
			"run_id", results.RunID,
			"file", path,
			"rules", len(sch.Rules),
			"tests", sch.TestCount(),
			"failed", results.FailCount)

		if len(files) > 1 {
			fmt.Fprintf(rend.Out, "\n==> %s\n", path)
		}
		rend.Render(results)

		if results.FailCount > 0 {
			failed = true
		}
	}
	return failed, nil
}

// watchLoop blocks, re-running the scheme files on every settled
// change, until interrupted.
func watchLoop(files []string, debounce time.Duration, rend *display.Renderer, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := watch.NewWatcher(watch.Config{
		Files:    files,
		Debounce: debounce,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Received shutdown signal")
			return nil

		case changed, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			logger.Info("Scheme files changed", "files", changed)
			// A change to any watched file re-runs the whole set so the
			// report stays complete.
			if _, err := runFiles(files, rend, logger); err != nil {
				// Keep watching through transient parse errors; the
				// next save may fix the document.
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
