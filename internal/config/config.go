package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = ".tweetscope.yaml"

// Config holds all tweetscope settings
type Config struct {
	DBPath        string `yaml:"db_path"`
	OutputDir     string `yaml:"output_dir"`
	DatasetName   string `yaml:"dataset_name"`
	LogLevel      string `yaml:"log_level"`
	StopwordsFile string `yaml:"stopwords_file"`

	Network     NetworkConfig     `yaml:"network"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Correlation CorrelationConfig `yaml:"correlation"`
	LLM         LLMConfig         `yaml:"llm"`
}

type NetworkConfig struct {
	TopK         int    `yaml:"top_k"`
	TagDelimiter string `yaml:"tag_delimiter"`
	Workers      int    `yaml:"workers"`
	HubThreshold int    `yaml:"hub_threshold"`
	TopN         int    `yaml:"top_n"`
}

type SentimentConfig struct {
	PositiveThreshold float64 `yaml:"positive_threshold"`
	NegativeThreshold float64 `yaml:"negative_threshold"`
}

type CorrelationConfig struct {
	Threshold float64 `yaml:"threshold"`
	TopN      int     `yaml:"top_n"`
}

// LLMConfig sizes the network section of the LLM summary
type LLMConfig struct {
	TopNodes int `yaml:"top_nodes"`
	TopEdges int `yaml:"top_edges"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		OutputDir:   "out",
		DatasetName: "Twitter Troll Dataset",
		LogLevel:    "info",
		Network: NetworkConfig{
			TopK:         50,
			TagDelimiter: ",",
			Workers:      1,
			HubThreshold: 5,
			TopN:         10,
		},
		Sentiment: SentimentConfig{
			PositiveThreshold: 0.05,
			NegativeThreshold: -0.05,
		},
		Correlation: CorrelationConfig{
			Threshold: 0.3,
			TopN:      10,
		},
		LLM: LLMConfig{
			TopNodes: 10,
			TopEdges: 20,
		},
	}
}

// Load reads a YAML file over the defaults, then applies environment
// overrides and validates. Keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return finish(cfg)
}

// LoadOrDefault is Load, except that a missing file yields the defaults
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return finish(Default())
	}
	return nil, err
}

func finish(cfg *Config) (*Config, error) {
	applyEnvironmentOverrides(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if dbPath := os.Getenv("TWEETSCOPE_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if out := os.Getenv("TWEETSCOPE_OUTPUT_DIR"); out != "" {
		cfg.OutputDir = out
	}
}

func validate(cfg *Config) error {
	if cfg.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if cfg.Network.TopK <= 0 {
		return fmt.Errorf("network.top_k must be positive, got %d", cfg.Network.TopK)
	}
	if cfg.Network.TagDelimiter == "" {
		return fmt.Errorf("network.tag_delimiter is required")
	}
	if cfg.Network.Workers < 1 {
		return fmt.Errorf("network.workers must be at least 1, got %d", cfg.Network.Workers)
	}
	if cfg.Network.TopN <= 0 {
		return fmt.Errorf("network.top_n must be positive, got %d", cfg.Network.TopN)
	}
	if cfg.Sentiment.NegativeThreshold > cfg.Sentiment.PositiveThreshold {
		return fmt.Errorf("sentiment.negative_threshold %.3f exceeds positive_threshold %.3f",
			cfg.Sentiment.NegativeThreshold, cfg.Sentiment.PositiveThreshold)
	}
	if cfg.Correlation.Threshold < 0 || cfg.Correlation.Threshold > 1 {
		return fmt.Errorf("correlation.threshold must be in [0, 1], got %.3f", cfg.Correlation.Threshold)
	}
	if cfg.Correlation.TopN <= 0 {
		return fmt.Errorf("correlation.top_n must be positive, got %d", cfg.Correlation.TopN)
	}
	if cfg.LLM.TopNodes <= 0 || cfg.LLM.TopEdges <= 0 {
		return fmt.Errorf("llm.top_nodes and llm.top_edges must be positive")
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log_level string to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}
