package benchmark

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	strutil "github.com/baditaflorin/go_strutil"
	"github.com/baditaflorin/go_strutil/internal/adapters/normalizer"
	"github.com/baditaflorin/go_strutil/pkg/cosine"
	"github.com/baditaflorin/l"
)

const (
	asciiSample   = "The quick brown fox jumps over the lazy dog. This sentence contains all letters of the English alphabet and is commonly used for testing text processing algorithms and systems."
	unicodeSample = "Příliš žluťoučký kůň úpěl ďábelské ódy. Voix ambiguë d'un cœur qui au zéphyr préfère les jattes de kiwis. 素早い茶色の狐がのろまな犬を飛び越える。"
)

// generateText creates a text of at least size bytes by repeating sample
func generateText(sample string, size int) string {
	if size <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(size + len(sample))

	for sb.Len() < size {
		sb.WriteString(sample)
		sb.WriteString(" ")
	}

	return sb.String()
}

func discardLogger(b *testing.B) l.Logger {
	b.Helper()
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	if err != nil {
		b.Fatalf("create logger: %v", err)
	}
	b.Cleanup(func() { _ = logger.Close() })
	return logger
}

// BenchmarkSimilarity compares the ASCII fast path with the general rune path
func BenchmarkSimilarity(b *testing.B) {
	benchmarks := []struct {
		name   string
		sample string
		size   int
	}{
		{"ASCII-Small", asciiSample, 100},
		{"ASCII-Medium", asciiSample, 10000},
		{"ASCII-Large", asciiSample, 100000},
		{"Unicode-Small", unicodeSample, 100},
		{"Unicode-Medium", unicodeSample, 10000},
		{"Unicode-Large", unicodeSample, 100000},
	}

	for _, bm := range benchmarks {
		original := generateText(bm.sample, bm.size)
		augmented := strings.Replace(original, "e", "a", 10)

		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(original) + len(augmented)))

			for i := 0; i < b.N; i++ {
				_ = strutil.Similarity(original, augmented)
			}
		})
	}
}

// BenchmarkNormalizers compares the normalizers on mixed text
func BenchmarkNormalizers(b *testing.B) {
	factory := normalizer.NewNormalizerFactory()
	text := generateText(asciiSample+unicodeSample, 10000)

	benchmarks := []struct {
		name     string
		normType normalizer.NormalizerType
	}{
		{"Identity", normalizer.IdentityNormalizerType},
		{"CaseFolding", normalizer.CaseFoldingNormalizerType},
	}

	for _, bm := range benchmarks {
		norm := factory.CreateNormalizer(bm.normType)

		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))

			for i := 0; i < b.N; i++ {
				_ = norm.Normalize(text)
			}
		})
	}
}

// BenchmarkCosineSimilarity benchmarks the configurable metric
func BenchmarkCosineSimilarity(b *testing.B) {
	original := generateText(asciiSample, 10000)
	similar := strings.Replace(original, "the", "a", 10)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	configs := []struct {
		name string
		opts []cosine.Option
	}{
		{"Standard", nil},
		{"CaseFolding", []cosine.Option{cosine.WithCaseFolding()}},
		{"NoRounding", []cosine.Option{cosine.WithPrecision(-1)}},
	}

	for _, cfg := range configs {
		b.Run(cfg.name, func(b *testing.B) {
			cs, err := cosine.New(append(cfg.opts, cosine.WithLogger(discardLogger(b)))...)
			if err != nil {
				b.Fatalf("create metric: %v", err)
			}
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = cs.Compute(ctx, original, similar)
			}
		})
	}
}

// BenchmarkStreamingSimilarity benchmarks reader input with different chunk sizes
func BenchmarkStreamingSimilarity(b *testing.B) {
	original := generateText(asciiSample+unicodeSample, 100000)
	similar := strings.Replace(original, "the", "a", 100)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	chunkSizes := []struct {
		name string
		size int
	}{
		{"1KB", 1024},
		{"8KB", 8192},
		{"32KB", 32768},
	}

	for _, cs := range chunkSizes {
		b.Run(cs.name, func(b *testing.B) {
			metric, err := cosine.New(
				cosine.WithChunkSize(cs.size),
				cosine.WithLogger(discardLogger(b)),
			)
			if err != nil {
				b.Fatalf("create metric: %v", err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(original) + len(similar)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = metric.ComputeFromReaders(ctx, strings.NewReader(original), strings.NewReader(similar))
			}
		})
	}
}

// BenchmarkCasing benchmarks CamelCase and Hyphenate
func BenchmarkCasing(b *testing.B) {
	separated := strings.Repeat("background-color_user.account:id-", 50)
	camel := strutil.CamelCase(separated, false)

	b.Run("CamelCase", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = strutil.CamelCase(separated, false)
		}
	})

	b.Run("CamelCaseUnicode", func(b *testing.B) {
		input := strings.Repeat("straße-ärger_öl.", 50)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = strutil.CamelCase(input, true)
		}
	})

	b.Run("Hyphenate", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = strutil.Hyphenate(camel)
		}
	})
}

// BenchmarkPadding benchmarks padding with single and multi-character fills
func BenchmarkPadding(b *testing.B) {
	benchmarks := []struct {
		name   string
		length int
		fill   string
	}{
		{"SingleFill-Short", 16, "0"},
		{"SingleFill-Long", 1024, "0"},
		{"MultiFill-Long", 1024, "-=*"},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = strutil.PadLeft("value", bm.length, bm.fill)
			}
		})
	}
}

// BenchmarkFormat benchmarks template substitution
func BenchmarkFormat(b *testing.B) {
	template := strings.Repeat("{0} met {1} at {2} with {3}; ", 20)
	args := []interface{}{"alice", "bob", 12.5, true}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = strutil.Format(template, args...)
	}
}

// BenchmarkHash benchmarks the polynomial hash
func BenchmarkHash(b *testing.B) {
	input := generateText(asciiSample, 1024)

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		_ = strutil.Hash(input)
	}
}
