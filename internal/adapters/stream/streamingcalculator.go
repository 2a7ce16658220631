package stream

import (
	"context"
	"io"
	"time"

	"github.com/baditaflorin/go_strutil/internal/core/cosine"
	"github.com/baditaflorin/go_strutil/internal/ports"
)

// StreamingCalculator scores two text streams without holding either in memory.
type StreamingCalculator struct {
	Calculator *cosine.Calculator
	Source     ports.VectorSource
	Logger     ports.Logger
}

// ComputeStreaming calculates the cosine similarity between two text streams
func (sc *StreamingCalculator) ComputeStreaming(ctx context.Context, original io.Reader, augmented io.Reader) ports.StreamResult {
	startTime := time.Now()
	threshold := sc.Calculator.Config().Threshold

	origVector, origBytes, err := sc.Source.Build(ctx, original)
	if err != nil {
		sc.Logger.Error("Error processing original stream", "error", err)
		return failedResult("error processing original stream: "+err.Error(), threshold, origBytes, startTime)
	}

	augVector, augBytes, err := sc.Source.Build(ctx, augmented)
	if err != nil {
		sc.Logger.Error("Error processing augmented stream", "error", err)
		return failedResult("error processing augmented stream: "+err.Error(), threshold, origBytes+augBytes, startTime)
	}

	result := sc.Calculator.ComputeVectors(cosine.Vector(origVector), cosine.Vector(augVector))

	sc.Logger.Debug("Computed streaming similarity",
		"score", result.Score,
		"passed", result.Passed,
		"bytes_processed", origBytes+augBytes,
		"duration", time.Since(startTime),
	)

	return ports.StreamResult{
		Name:            result.Name,
		Score:           result.Score,
		Passed:          result.Passed,
		OriginalLength:  result.OriginalLength,
		AugmentedLength: result.AugmentedLength,
		Threshold:       result.Threshold,
		Details:         result.Details,
		BytesProcessed:  origBytes + augBytes,
		ProcessingTime:  time.Since(startTime),
	}
}

func failedResult(message string, threshold float64, bytesProcessed int64, startTime time.Time) ports.StreamResult {
	return ports.StreamResult{
		Name:           cosine.MetricName,
		Score:          0,
		Passed:         false,
		Threshold:      threshold,
		Details:        map[string]interface{}{"error": message},
		BytesProcessed: bytesProcessed,
		ProcessingTime: time.Since(startTime),
	}
}
