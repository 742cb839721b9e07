// Command storecore serves the storefront knowledge datasets over HTTP
// and MCP, and offers maintenance subcommands for validating and
// searching them.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/pantrysmith/storecore/config"
	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/fulltext"
	"github.com/pantrysmith/storecore/registry"
	"github.com/pantrysmith/storecore/server"
)

const version = "1.0.0"

var (
	// Global flags
	configPath string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "storecore",
	Short: "storecore - storefront knowledge service",
	Long: `storecore loads a store's linked JSON datasets (business, pages,
products, shipping, faq, recipes, intents), validates the references
between them, and exposes deterministic retrieval tools over HTTP and
MCP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so it can feed the config env overrides.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Logging.Level))
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the knowledge API over HTTP",
	RunE:  runServe,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the knowledge tools over MCP stdio",
	RunE:  runMCP,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the datasets and report referential violations",
	RunE:  runValidate,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search across products, pages, and FAQ entries",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "storecore.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, mcpCmd, validateCmd, searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadStore builds the store and refuses to proceed on any referential
// violation.
func loadStore() (*dataset.Store, *dataset.Snapshot, error) {
	store, err := dataset.NewStore(dataset.Options{
		Dir:    cfg.Data.Dir,
		Logger: logger,
	})
	if err != nil {
		return nil, nil, err
	}

	snap, err := store.Load()
	if err != nil {
		return nil, nil, err
	}

	if violations := dataset.Validate(snap); len(violations) > 0 {
		for _, v := range violations {
			logger.Error("dataset violation", zap.String("violation", v))
		}
		return nil, nil, fmt.Errorf("datasets failed validation with %d violation(s)", len(violations))
	}
	return store, snap, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	store, snap, err := loadStore()
	if err != nil {
		return err
	}

	searcher := fulltext.NewSearcher(fulltext.Options{Logger: logger})
	defer searcher.Close()
	if err := searcher.Sync(snap); err != nil {
		return err
	}

	reg := registry.New(registry.Config{
		Store:    store,
		Searcher: searcher,
		Logger:   logger,
		ServerInfo: registry.ServerInfo{
			Name:    "storecore",
			Version: version,
		},
	})
	srv := server.New(server.Options{
		Store:    store,
		Registry: reg,
		Searcher: searcher,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := dataset.NewWatcher(store, func() {
		refreshed, err := store.Load()
		if err != nil {
			logger.Warn("dataset reload failed", zap.Error(err))
			return
		}
		if violations := dataset.Validate(refreshed); len(violations) > 0 {
			logger.Warn("reloaded datasets have violations", zap.Strings("violations", violations))
		}
		if err := searcher.Sync(refreshed); err != nil {
			logger.Warn("fulltext resync failed", zap.Error(err))
		}
	}, logger)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("dataDir", store.Dir()))
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func runMCP(cmd *cobra.Command, args []string) error {
	store, snap, err := loadStore()
	if err != nil {
		return err
	}

	searcher := fulltext.NewSearcher(fulltext.Options{Logger: logger})
	defer searcher.Close()
	if err := searcher.Sync(snap); err != nil {
		return err
	}

	reg := registry.New(registry.Config{
		Store:    store,
		Searcher: searcher,
		Logger:   logger,
		ServerInfo: registry.ServerInfo{
			Name:    "storecore",
			Version: version,
		},
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("mcp server on stdio", zap.String("dataDir", store.Dir()))
	return reg.NewMCPServer().Run(ctx, &mcp.StdioTransport{})
}

func runValidate(cmd *cobra.Command, args []string) error {
	store, err := dataset.NewStore(dataset.Options{
		Dir:    cfg.Data.Dir,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	snap, err := store.Load()
	if err != nil {
		return err
	}

	violations := dataset.Validate(snap)
	if len(violations) == 0 {
		fmt.Printf("%s: all references resolve (%d products, %d pages, %d intents)\n",
			store.Dir(),
			len(snap.Products.Products),
			len(snap.Pages.Pages),
			len(snap.Intents.Intents))
		return nil
	}
	for _, v := range violations {
		fmt.Println("violation:", v)
	}
	return fmt.Errorf("%d violation(s)", len(violations))
}

func runSearch(cmd *cobra.Command, args []string) error {
	_, snap, err := loadStore()
	if err != nil {
		return err
	}

	searcher := fulltext.NewSearcher(fulltext.Options{Logger: logger})
	defer searcher.Close()
	if err := searcher.Sync(snap); err != nil {
		return err
	}

	hits, err := searcher.Search(strings.Join(args, " "), 10)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("no results")
		return nil
	}
	for _, hit := range hits {
		fmt.Printf("%-8s %-24s %.3f\n", hit.Kind, hit.ID, hit.Score)
	}
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
