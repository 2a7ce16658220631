package warmup

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/baditaflorin/go_strutil/internal/adapters/logger"
	"github.com/baditaflorin/go_strutil/internal/adapters/normalizer"
	"github.com/baditaflorin/go_strutil/internal/core/cosine"
)

func TestWarmUpRunsEveryComponent(t *testing.T) {
	log, err := logger.NewDiscardLogger()
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	defer log.Close()

	calc, err := cosine.NewCalculator(cosine.DefaultConfig(), log, normalizer.NewIdentityNormalizer())
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	var transformCalls atomic.Int64
	mgr := NewManager(log, WarmupConfig{
		Concurrency:    2,
		Iterations:     5,
		SampleTextSize: 100,
	})
	mgr.RegisterCalculator(calc)
	mgr.RegisterNormalizer(normalizer.NewCaseFoldingNormalizer())
	mgr.RegisterTransform(func(s string) string {
		transformCalls.Add(1)
		return strings.ToUpper(s)
	})

	ops := mgr.WarmUp(context.Background())
	if ops != 2*5*3 {
		t.Errorf("operations = %d, want 30", ops)
	}
	if transformCalls.Load() != 10 {
		t.Errorf("transform calls = %d, want 10", transformCalls.Load())
	}
}

func TestWarmUpStopsWhenCancelled(t *testing.T) {
	log, err := logger.NewDiscardLogger()
	if err != nil {
		t.Fatalf("create logger: %v", err)
	}
	defer log.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mgr := NewManager(log, WarmupConfig{Concurrency: 0, Iterations: 100, SampleTextSize: 10})
	mgr.RegisterTransform(strings.ToLower)
	if ops := mgr.WarmUp(ctx); ops != 0 {
		t.Errorf("expected no operations after cancellation, got %d", ops)
	}
}

func TestGenerateSampleText(t *testing.T) {
	text := generateSampleText(200)
	if len(text) > 200 || len(text) == 0 {
		t.Fatalf("unexpected sample length %d", len(text))
	}
	similar := generateSimilarText(text, 0.5)
	if similar == text {
		t.Error("expected similar text to differ from the sample")
	}
	if len(strings.Fields(similar)) != len(strings.Fields(text)) {
		t.Error("expected word count to be preserved")
	}
}
