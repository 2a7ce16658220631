package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_strutil/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Transform is a string transformation exercised during warmup.
type Transform func(string) string

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	transforms  []Transform
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterTransform adds a string transformation to be warmed up
func (wm *Manager) RegisterTransform(fn Transform) {
	wm.transforms = append(wm.transforms, fn)
}

// WarmUp runs the warmup process for all registered components and returns the
// number of operations performed.
func (wm *Manager) WarmUp(ctx context.Context) int64 {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.calculators)+len(wm.normalizers)+len(wm.transforms),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	original := generateSampleText(wm.config.SampleTextSize)
	similar := generateSimilarText(original, 0.1)   // 10% difference
	different := generateSimilarText(original, 0.5) // 50% difference

	ops := wm.run(warmupCtx, func(j int) int64 {
		var done int64
		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(original)
			done++
		}
		for _, transform := range wm.transforms {
			_ = transform(original)
			done++
		}
		for _, calculator := range wm.calculators {
			// Alternate between different similarity levels
			switch j % 3 {
			case 0:
				_ = calculator.Compute(warmupCtx, original, original)
			case 1:
				_ = calculator.Compute(warmupCtx, original, similar)
			default:
				_ = calculator.Compute(warmupCtx, original, different)
			}
			done++
		}
		return done
	})

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"operations", ops,
		"duration", time.Since(startTime),
	)
	return ops
}

// run executes iteration on Concurrency goroutines, Iterations times each, stopping
// early when ctx is done.
func (wm *Manager) run(ctx context.Context, iteration func(j int) int64) int64 {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var done int64
			for j := 0; j < wm.config.Iterations; j++ {
				// Check for context cancellation
				if ctx.Err() != nil {
					break
				}
				done += iteration(j)
			}

			mu.Lock()
			total += done
			mu.Unlock()
		}()
	}

	wg.Wait()
	return total
}

// Helper functions for generating test data

// generateSampleText creates sample text of the specified size
func generateSampleText(size int) string {
	// Sample words to use in generating text
	words := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"hello", "world", "lorem", "ipsum", "dolor", "sit", "amet", "consectetur",
		"adipiscing", "elit", "sed", "do", "eiusmod", "tempor", "incididunt",
		"ut", "labore", "et", "dolore", "magna", "aliqua",
	}

	var sb strings.Builder
	wordsNeeded := size / 5 // Assuming average word length of 5

	for i := 0; i < wordsNeeded; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}

	result := sb.String()
	if len(result) > size {
		return result[:size]
	}
	return result
}

// generateSimilarText creates a text similar to the original with the specified difference ratio
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)

	// Number of words to change
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"different", "unique", "new", "fresh", "novel",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)

	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}

	return strings.Join(newWords, " ")
}
