package cosine

import (
	"context"
	"errors"
	"math"
	"unicode/utf8"

	"github.com/baditaflorin/go_strutil/internal/core/domain"
	"github.com/baditaflorin/go_strutil/internal/ports"
)

// MetricName identifies results produced by the calculator.
const MetricName = "cosine_similarity"

// SimilarityConfig holds configuration for the cosine similarity calculator.
type SimilarityConfig struct {
	Threshold float64
	// Precision is the number of decimals scores are rounded to; -1 disables rounding.
	Precision int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SimilarityConfig {
	return SimilarityConfig{
		Threshold: 0.7,
		Precision: 4,
	}
}

// Validate checks if the configuration is valid.
func (c SimilarityConfig) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return errors.New("threshold must be between 0 and 1")
	}
	if c.Precision < -1 || c.Precision > 15 {
		return errors.New("precision must be between -1 and 15")
	}
	return nil
}

// Round applies the configured precision to a score.
func (c SimilarityConfig) Round(score float64) float64 {
	if c.Precision < 0 {
		return score
	}
	factor := math.Pow(10, float64(c.Precision))
	return math.Round(score*factor) / factor
}

// Calculator implements the cosine similarity calculation.
type Calculator struct {
	config     SimilarityConfig
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewCalculator creates a new cosine similarity calculator.
func NewCalculator(config SimilarityConfig, logger ports.Logger, normalizer ports.Normalizer) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Config returns the calculator configuration.
func (c *Calculator) Config() SimilarityConfig {
	return c.config
}

// Compute calculates the cosine similarity between two texts.
func (c *Calculator) Compute(ctx context.Context, original, augmented string) domain.Result {
	c.logger.Debug("Starting cosine similarity computation",
		"original", original,
		"augmented", augmented,
	)

	details := make(map[string]interface{})

	normalizedOriginal := c.normalizer.Normalize(original)
	normalizedAugmented := c.normalizer.Normalize(augmented)

	c.logger.Debug("Normalized texts",
		"normalizedOriginal", normalizedOriginal,
		"normalizedAugmented", normalizedAugmented,
	)

	// Check context cancellation.
	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:      MetricName,
			Score:     0,
			Passed:    false,
			Threshold: c.config.Threshold,
			Details:   details,
		}
	default:
		// continue
	}

	origLen := utf8.RuneCountInString(normalizedOriginal)
	augLen := utf8.RuneCountInString(normalizedAugmented)
	origDistinct := len(NewVector(normalizedOriginal))
	augDistinct := len(NewVector(normalizedAugmented))

	c.logger.Debug("Computed character counts",
		"original_length", origLen,
		"augmented_length", augLen,
		"distinct_original", origDistinct,
		"distinct_augmented", augDistinct,
	)

	score := c.config.Round(Similarity(normalizedOriginal, normalizedAugmented))
	passed := score >= c.config.Threshold

	details["original_length"] = origLen
	details["augmented_length"] = augLen
	details["distinct_original"] = origDistinct
	details["distinct_augmented"] = augDistinct
	details["threshold"] = c.config.Threshold

	c.logger.Debug("Computed cosine similarity",
		"score", score,
		"passed", passed,
		"details", details,
	)

	return domain.Result{
		Name:              MetricName,
		Score:             score,
		Passed:            passed,
		OriginalLength:    origLen,
		AugmentedLength:   augLen,
		DistinctOriginal:  origDistinct,
		DistinctAugmented: augDistinct,
		Threshold:         c.config.Threshold,
		Details:           details,
	}
}

// ComputeVectors scores two prebuilt vectors. Two empty vectors, or two equal ones,
// score exactly 1.
func (c *Calculator) ComputeVectors(original, augmented Vector) domain.Result {
	details := make(map[string]interface{})

	origLen := original.Total()
	augLen := augmented.Total()

	var score float64
	switch {
	case origLen == 0 && augLen == 0:
		c.logger.Debug("Both texts are empty, considering them identical")
		details["note"] = "both texts are empty, considered identical"
		score = 1.0
	case original.Equal(augmented):
		score = 1.0
	default:
		score = Cosine(original, augmented)
	}

	score = c.config.Round(score)
	passed := score >= c.config.Threshold

	details["original_length"] = origLen
	details["augmented_length"] = augLen
	details["distinct_original"] = len(original)
	details["distinct_augmented"] = len(augmented)
	details["threshold"] = c.config.Threshold

	c.logger.Debug("Computed cosine similarity from vectors",
		"score", score,
		"passed", passed,
		"details", details,
	)

	return domain.Result{
		Name:              MetricName,
		Score:             score,
		Passed:            passed,
		OriginalLength:    origLen,
		AugmentedLength:   augLen,
		DistinctOriginal:  len(original),
		DistinctAugmented: len(augmented),
		Threshold:         c.config.Threshold,
		Details:           details,
	}
}
