package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	strutil "github.com/baditaflorin/go_strutil"
	logadapter "github.com/baditaflorin/go_strutil/internal/adapters/logger"
	"github.com/baditaflorin/go_strutil/internal/adapters/normalizer"
	"github.com/baditaflorin/go_strutil/internal/warmup"
	"github.com/baditaflorin/go_strutil/pkg/cosine"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logger
	logger, err := createLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting strutil HTTP server",
		"port", cfg.Port,
		"read_timeout", cfg.ReadTimeout.Duration,
		"write_timeout", cfg.WriteTimeout.Duration,
		"max_request_size", cfg.MaxRequestSize,
		"concurrency", cfg.Concurrency,
	)

	similarity, err := newSimilarity(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize cosine similarity", "error", err)
		os.Exit(1)
	}

	srv := newServer(logger, similarity, cfg.RequestTimeout.Duration, maxPadLength(cfg))

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               srv.handle,
		ReadTimeout:           cfg.ReadTimeout.Duration,
		WriteTimeout:          cfg.WriteTimeout.Duration,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		logger.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// newSimilarity builds the similarity metric and, if configured, warms it up
// together with the string transformations the server exposes.
func newSimilarity(cfg Config, logger l.Logger) (*cosine.CosineSimilarity, error) {
	opts := []cosine.Option{
		cosine.WithLogger(logger),
		cosine.WithThreshold(cfg.Similarity.Threshold),
		cosine.WithPrecision(cfg.Similarity.Precision),
	}
	if kind, _ := normalizer.ParseNormalizerType(cfg.Similarity.Normalizer); kind == normalizer.CaseFoldingNormalizerType {
		opts = append(opts, cosine.WithCaseFolding())
	}

	similarity, err := cosine.New(opts...)
	if err != nil {
		return nil, err
	}

	if cfg.WarmUp {
		warmupCfg := warmup.DefaultWarmupConfig()
		similarity.WarmUp(context.Background(), warmupCfg)
		transforms := warmup.NewManager(logadapter.FromExisting(logger), warmupCfg)
		transforms.RegisterTransform(func(s string) string { return strutil.CamelCase(s, false) })
		transforms.RegisterTransform(strutil.Hyphenate)
		transforms.RegisterTransform(strutil.Quote)
		transforms.RegisterTransform(func(s string) string { return strutil.Format("{0}", s) })
		transforms.WarmUp(context.Background())
	}

	logger.Info("Similarity metric initialized successfully",
		"warm_up", cfg.WarmUp,
		"threshold", similarity.Threshold(),
		"cpus", runtime.NumCPU(),
	)
	return similarity, nil
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if strings.TrimSpace(logFile) != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
