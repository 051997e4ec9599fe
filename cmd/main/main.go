package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pipeworks/syllawalk/pkg/walker"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	baseLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(baseLogger); err != nil {
		baseLogger.Error("An error occurred during server run, shutting down.", "error", err)
		os.Exit(1)
	}
	baseLogger.Info("Syllawalk has shut down.")
}

func run(baseLogger *slog.Logger) error {
	config, err := LoadConfig("./config.json")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var logLevel slog.Level
	switch strings.ToLower(config.Server.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	logger.Info("Starting syllable walk server", "version", Version, "commit", Commit, "build_date", BuildDate)

	corpus, err := loadCorpus(logger, config.Server)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	logger.Info("Corpus loaded", "syllables", corpus.Size())

	// The graph build is the expensive part of startup; it runs exactly
	// once, and everything after it is read-only.
	buildStart := time.Now()
	graph, err := walker.BuildGraph(corpus, config.Server.MaxNeighborDistance)
	if err != nil {
		return fmt.Errorf("failed to build neighbor graph: %w", err)
	}
	logger.Info("Neighbor graph built",
		"max_distance", graph.MaxDistance(),
		"edges", graph.EdgeCount(),
		"occupied_buckets", graph.OccupiedBuckets(),
		"duration", time.Since(buildStart),
	)

	w := walker.NewWalker(corpus, graph)
	w.SetLogger(logger)
	for _, p := range config.Profiles {
		if err = w.Profiles().Register(p); err != nil {
			return fmt.Errorf("failed to register configured profile %q: %w", p.Name, err)
		}
	}

	server := NewServer(config, logger, w, corpus, graph)
	httpServer := &http.Server{Addr: config.Server.ServerAddr, Handler: server.mux}

	go func() {
		logger.Info("Starting walk server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Walk server failed", "error", err)
		}
	}()

	osSignalChan := make(chan os.Signal, 1)
	signal.Notify(osSignalChan, syscall.SIGINT, syscall.SIGTERM)
	<-osSignalChan
	logger.Info("OS signal received, initiating shutdown.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = httpServer.Shutdown(ctx); err != nil {
		logger.Error("Walk server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped.")

	return nil
}

// loadCorpus reads the corpus from the configured SQLite database, falling
// back to the annotated-JSON interchange file when no database is set.
func loadCorpus(logger *slog.Logger, config *ServerConfig) (*walker.Corpus, error) {
	if config.CorpusDBPath != "" {
		db, err := initDB(config.CorpusDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open corpus database: %w", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logger.Error("Failed to close corpus database", "error", err)
			}
		}()
		return walker.LoadCorpusDB(context.Background(), db)
	}

	if config.CorpusJSONPath == "" {
		return nil, errors.New("no corpus source configured: set corpus_db_path or corpus_json_path")
	}
	file, err := os.Open(config.CorpusJSONPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return walker.LoadCorpusJSON(file)
}
