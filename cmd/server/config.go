package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	strutil "github.com/baditaflorin/go_strutil"
	"github.com/baditaflorin/go_strutil/internal/adapters/normalizer"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

// Duration is a time.Duration written as a string such as "30s" in config files.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// SimilarityConfig configures the /similarity endpoint.
type SimilarityConfig struct {
	Threshold  float64 `toml:"threshold"`
	Precision  int     `toml:"precision"`
	Normalizer string  `toml:"normalizer"`
}

// Config holds the server configuration.
type Config struct {
	Port           int              `toml:"port"`
	ReadTimeout    Duration         `toml:"read_timeout"`
	WriteTimeout   Duration         `toml:"write_timeout"`
	RequestTimeout Duration         `toml:"request_timeout"`
	MaxRequestSize int              `toml:"max_request_size"`
	Concurrency    int              `toml:"concurrency"`
	WarmUp         bool             `toml:"warm_up"`
	LogFile        string           `toml:"log_file"`
	Similarity     SimilarityConfig `toml:"similarity"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Port:           DefaultPort,
		ReadTimeout:    Duration{DefaultReadTimeout},
		WriteTimeout:   Duration{DefaultWriteTimeout},
		RequestTimeout: Duration{DefaultRequestTimeout},
		MaxRequestSize: DefaultMaxRequestSize,
		Concurrency:    DefaultConcurrency,
		WarmUp:         true,
		Similarity: SimilarityConfig{
			Threshold:  0.7,
			Precision:  4,
			Normalizer: "none",
		},
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if c.ReadTimeout.Duration <= 0 || c.WriteTimeout.Duration <= 0 || c.RequestTimeout.Duration <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.MaxRequestSize <= 0 {
		return errors.New("max_request_size must be positive")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	if _, ok := normalizer.ParseNormalizerType(c.Similarity.Normalizer); !ok {
		return fmt.Errorf("unknown similarity normalizer %q", c.Similarity.Normalizer)
	}
	return nil
}

// maxPadLength caps /pad target lengths at the request size limit and the largest
// width the padding functions accept.
func maxPadLength(cfg Config) int {
	return min(cfg.MaxRequestSize, strutil.MaxPadWidth)
}

// loadConfig reads the TOML file at path over the defaults. An empty path keeps the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// parseConfig builds the configuration from command-line arguments. Values from the
// file named by -config are overridden by flags that are set explicitly.
func parseConfig(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	defaults := DefaultConfig()
	configFile := fs.String("config", "", "Path to a TOML configuration file")
	port := fs.Int("port", defaults.Port, "HTTP server port")
	readTimeout := fs.Duration("read-timeout", defaults.ReadTimeout.Duration, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", defaults.WriteTimeout.Duration, "HTTP write timeout")
	requestTimeout := fs.Duration("request-timeout", defaults.RequestTimeout.Duration, "Per-request computation timeout")
	maxRequestSize := fs.Int("max-request-size", defaults.MaxRequestSize, "Maximum request size in bytes")
	concurrency := fs.Int("concurrency", defaults.Concurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := fs.Bool("warm-up", defaults.WarmUp, "Perform system warm-up on startup")
	logFile := fs.String("log-file", defaults.LogFile, "Log file path (empty = stdout)")
	threshold := fs.Float64("threshold", defaults.Similarity.Threshold, "Similarity pass threshold (0.0-1.0)")
	precision := fs.Int("precision", defaults.Similarity.Precision, "Similarity score precision (-1 = no rounding)")
	normalizerName := fs.String("normalizer", defaults.Similarity.Normalizer, "Similarity normalizer: 'none' or 'fold'")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "read-timeout":
			cfg.ReadTimeout = Duration{*readTimeout}
		case "write-timeout":
			cfg.WriteTimeout = Duration{*writeTimeout}
		case "request-timeout":
			cfg.RequestTimeout = Duration{*requestTimeout}
		case "max-request-size":
			cfg.MaxRequestSize = *maxRequestSize
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "warm-up":
			cfg.WarmUp = *warmUp
		case "log-file":
			cfg.LogFile = *logFile
		case "threshold":
			cfg.Similarity.Threshold = *threshold
		case "precision":
			cfg.Similarity.Precision = *precision
		case "normalizer":
			cfg.Similarity.Normalizer = *normalizerName
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
