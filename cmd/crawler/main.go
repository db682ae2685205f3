package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rickgao/codeforces-data/internal/api"
	"github.com/rickgao/codeforces-data/internal/auth"
	"github.com/rickgao/codeforces-data/internal/config"
	"github.com/rickgao/codeforces-data/internal/database"
	"github.com/rickgao/codeforces-data/internal/stats"
	"github.com/rickgao/codeforces-data/internal/version"
	"github.com/rickgao/codeforces-data/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/crawler.yaml", "path to config file")
	handle := flag.String("handle", "", "override crawl.handle")
	from := flag.Int("from", 0, "override crawl.from (1-based)")
	count := flag.Int("count", 0, "override crawl.count")
	outputDir := flag.String("output", "", "override crawl.output_dir")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	// Set up structured logging
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting crawler",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Pull secrets from .env if one is present, before config expansion.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", "error", err)
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flag overrides take precedence over the config file.
	if *handle != "" {
		cfg.Crawl.Handle = *handle
	}
	if *from > 0 {
		cfg.Crawl.From = *from
	}
	if *count > 0 {
		cfg.Crawl.Count = *count
	}
	if *outputDir != "" {
		cfg.Crawl.OutputDir = *outputDir
	}

	logger.Info("configuration loaded",
		"handle", cfg.Crawl.Handle,
		"from", cfg.Crawl.From,
		"count", cfg.Crawl.Count,
		"api_url", cfg.API.BaseURL,
		"output_dir", cfg.Crawl.OutputDir,
		"archive", cfg.Database != nil,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("crawl failed", "error", err)
		os.Exit(1)
	}
}

// run performs one crawl: fetch, aggregate, persist.
func run(ctx context.Context, cfg *config.CrawlerConfig, logger *slog.Logger) error {
	creds, err := auth.NewCredentials(cfg.API.Key, cfg.API.Secret)
	if err != nil {
		return err
	}

	client := api.NewClient(
		cfg.API.BaseURL,
		creds,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
	)

	raw, err := client.GetUserStatus(ctx, cfg.Crawl.Handle, cfg.Crawl.From, cfg.Crawl.Count)
	if err != nil {
		// Surface the remote comment; no artifacts are written on any
		// fetch failure.
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			logger.Error("api rejected the request", "comment", apiErr.Comment)
		}
		return err
	}
	logger.Info("submissions fetched", "total", len(raw))

	rep := stats.Aggregate(api.ToSubmissions(raw))
	logger.Info("submissions aggregated",
		"solved", len(rep.Submissions),
		"ratings", len(rep.RatingCounts),
		"tags", len(rep.TagCounts),
	)

	rw := writer.NewReportWriter(cfg.Crawl.OutputDir, logger)
	if err := rw.WriteAll(rep); err != nil {
		return err
	}

	if cfg.Database != nil {
		pool, err := database.Connect(ctx, *cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		archive := writer.NewArchive(pool, logger)
		rec := writer.NewRun(cfg.Crawl.Handle, cfg.Crawl.From, cfg.Crawl.Count)
		if err := archive.SaveRun(ctx, rec, rep.Submissions); err != nil {
			return err
		}
	}

	return nil
}
