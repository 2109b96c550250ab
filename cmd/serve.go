package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/breaker"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/cache"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/catalog"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/config"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/dispatch"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/logging"
	"github.com/yeshsurya/React-Flow-MCP-Server/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the MCP server on stdio",
	Long: `Start the documentation server, speaking JSON-RPC 2.0 over stdin and
stdout. Logs go to stderr so they never corrupt the protocol stream.

When docs.overlay_file is configured, the file is loaded at startup and
watched for changes; edits take effect without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runServe(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context, cfg *config.Config) error {
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})

	cat := catalog.New()
	if cfg.Docs.OverlayFile != "" {
		if err := cat.LoadOverlay(cfg.Docs.OverlayFile); err != nil {
			// A broken overlay must not take the server down; the base
			// catalog is complete without it.
			logger.Warn(parent, err, "Docs overlay not loaded", "path", cfg.Docs.OverlayFile)
		} else {
			logger.Info(parent, "Docs overlay loaded",
				"path", cfg.Docs.OverlayFile, "topics", cat.OverlayLen())
		}
	}

	cb := breaker.New(breaker.Config{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		ResetTimeout:     cfg.Breaker.ResetTimeout,
	})
	qc := cache.NewQueryCache(cfg.Cache.MaxEntries)
	dispatcher := dispatch.New(cat, cb, qc, logger)

	server := mcp.NewServer(cfg.Server.Name, cfg.Server.Version, dispatcher, logger, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(ctx)
	})

	if cfg.Docs.OverlayFile != "" {
		g.Go(func() error {
			return watchOverlay(ctx, cat, cfg.Docs.OverlayFile, logger)
		})
	}

	return g.Wait()
}

// watchOverlay reloads the docs overlay whenever the file changes on disk.
func watchOverlay(ctx context.Context, cat *catalog.Catalog, path string, logger logging.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		// The file may not exist yet; watching is best effort.
		logger.Warn(ctx, err, "Cannot watch docs overlay", "path", path)
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := cat.LoadOverlay(path); err != nil {
				logger.Warn(ctx, err, "Docs overlay reload failed", "path", path)
				continue
			}
			logger.Info(ctx, "Docs overlay reloaded", "path", path, "topics", cat.OverlayLen())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, err, "Docs overlay watcher error", "path", path)
		}
	}
}
