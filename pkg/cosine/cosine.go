// Package cosine exposes a configurable cosine similarity metric over
// character-frequency vectors, for strings and for streams.
package cosine

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/baditaflorin/go_strutil/internal/adapters/logger"
	"github.com/baditaflorin/go_strutil/internal/adapters/normalizer"
	"github.com/baditaflorin/go_strutil/internal/adapters/stream"
	core "github.com/baditaflorin/go_strutil/internal/core/cosine"
	"github.com/baditaflorin/go_strutil/internal/core/domain"
	"github.com/baditaflorin/go_strutil/internal/ports"
	"github.com/baditaflorin/go_strutil/internal/warmup"
	"github.com/baditaflorin/l"
)

// Result holds the outcome of a similarity computation.
type Result = domain.Result

// StreamResult holds the outcome of a similarity computation on streams.
type StreamResult = ports.StreamResult

// WarmupConfig configures the optional warm-up run.
type WarmupConfig = warmup.WarmupConfig

// DefaultWarmupConfig returns the default warm-up configuration.
func DefaultWarmupConfig() WarmupConfig {
	return warmup.DefaultWarmupConfig()
}

// CosineSimilarity computes the cosine similarity metric.
type CosineSimilarity struct {
	calculator *core.Calculator
	streaming  *stream.StreamingCalculator
	logger     ports.Logger
	normalizer ports.Normalizer
	warmed     atomic.Bool
}

// Option defines a functional option for configuring CosineSimilarity.
type Option func(*config)

type config struct {
	Threshold    float64
	Precision    int
	ChunkSize    int
	Logger       ports.Logger
	Normalizer   ports.Normalizer
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithThreshold sets the score a comparison needs to pass.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithPrecision sets the number of decimals scores are rounded to; -1 disables rounding.
func WithPrecision(p int) Option {
	return func(cfg *config) {
		cfg.Precision = p
	}
}

// WithChunkSize sets the read size used by ComputeFromReaders.
func WithChunkSize(size int) Option {
	return func(cfg *config) {
		cfg.ChunkSize = size
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithNormalizer sets a custom normalizer. It must map runes independently.
func WithNormalizer(normalizer ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer
	}
}

// WithCaseFolding compares texts case-insensitively with punctuation blanked out.
func WithCaseFolding() Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.NewNormalizerFactory().CreateNormalizer(normalizer.CaseFoldingNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new CosineSimilarity instance.
func New(opts ...Option) (*CosineSimilarity, error) {
	defaultConfig := core.DefaultConfig()

	cfg := &config{
		Threshold:    defaultConfig.Threshold,
		Precision:    defaultConfig.Precision,
		ChunkSize:    stream.DefaultChunkSize,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	// Set up logger if not provided
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	// Set up normalizer if not provided
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewIdentityNormalizer()
	}

	calculator, err := core.NewCalculator(core.SimilarityConfig{
		Threshold: cfg.Threshold,
		Precision: cfg.Precision,
	}, cfg.Logger, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	cs := &CosineSimilarity{
		calculator: calculator,
		streaming: &stream.StreamingCalculator{
			Calculator: calculator,
			Source:     stream.NewVectorBuilder(cfg.Logger, cfg.Normalizer, cfg.ChunkSize),
			Logger:     cfg.Logger,
		},
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
	}

	if cfg.WarmUp {
		cs.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return cs, nil
}

// Threshold returns the configured pass threshold.
func (cs *CosineSimilarity) Threshold() float64 {
	return cs.calculator.Config().Threshold
}

// Compute calculates the cosine similarity between two texts.
func (cs *CosineSimilarity) Compute(ctx context.Context, original, augmented string) Result {
	return cs.calculator.Compute(ctx, original, augmented)
}

// ComputeFromReaders calculates the cosine similarity between two streams, reading
// each to EOF without buffering it whole.
func (cs *CosineSimilarity) ComputeFromReaders(ctx context.Context, original, augmented io.Reader) StreamResult {
	return cs.streaming.ComputeStreaming(ctx, original, augmented)
}

// WarmUp performs system warm-up to optimize performance.
func (cs *CosineSimilarity) WarmUp(ctx context.Context, wc WarmupConfig) {
	if !cs.warmed.CompareAndSwap(false, true) {
		cs.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(cs.logger, wc)
	warmupMgr.RegisterCalculator(cs.calculator)
	warmupMgr.RegisterNormalizer(cs.normalizer)

	warmupMgr.WarmUp(ctx)
}
