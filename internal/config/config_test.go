package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TWEETSCOPE_DB", "")
	t.Setenv("TWEETSCOPE_OUTPUT_DIR", "")
	cfg, err := Load(writeConfig(t, "dataset_name: trolls\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatasetName != "trolls" {
		t.Errorf("DatasetName = %q", cfg.DatasetName)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
	}
	if cfg.Network.TopK != 50 || cfg.Network.TagDelimiter != "," || cfg.Network.Workers != 1 {
		t.Errorf("Network = %+v", cfg.Network)
	}
	if cfg.Sentiment.PositiveThreshold != 0.05 || cfg.Sentiment.NegativeThreshold != -0.05 {
		t.Errorf("Sentiment = %+v", cfg.Sentiment)
	}
	if cfg.Correlation.Threshold != 0.3 || cfg.Correlation.TopN != 10 {
		t.Errorf("Correlation = %+v", cfg.Correlation)
	}
	if cfg.LLM.TopNodes != 10 || cfg.LLM.TopEdges != 20 {
		t.Errorf("LLM = %+v", cfg.LLM)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TWEETSCOPE_DB", "")
	t.Setenv("TWEETSCOPE_OUTPUT_DIR", "")
	cfg, err := Load(writeConfig(t, `
db_path: /data/tweets.db
output_dir: results
log_level: debug
network:
  top_k: 25
  tag_delimiter: ";"
  workers: 4
sentiment:
  positive_threshold: 0
  negative_threshold: 0
correlation:
  threshold: 0.5
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/data/tweets.db" || cfg.OutputDir != "results" {
		t.Errorf("paths = %q %q", cfg.DBPath, cfg.OutputDir)
	}
	if cfg.Network.TopK != 25 || cfg.Network.TagDelimiter != ";" || cfg.Network.Workers != 4 {
		t.Errorf("Network = %+v", cfg.Network)
	}
	if cfg.Network.HubThreshold != 5 {
		t.Errorf("unset nested key lost its default: %+v", cfg.Network)
	}
	if cfg.Sentiment.PositiveThreshold != 0 || cfg.Sentiment.NegativeThreshold != 0 {
		t.Errorf("explicit zero thresholds not kept: %+v", cfg.Sentiment)
	}
	if cfg.Correlation.Threshold != 0.5 || cfg.Correlation.TopN != 10 {
		t.Errorf("Correlation = %+v", cfg.Correlation)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TWEETSCOPE_DB", "/env/tweets.db")
	t.Setenv("TWEETSCOPE_OUTPUT_DIR", "/env/out")
	cfg, err := Load(writeConfig(t, "db_path: /file/tweets.db\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/env/tweets.db" || cfg.OutputDir != "/env/out" {
		t.Errorf("env not applied: %q %q", cfg.DBPath, cfg.OutputDir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, content, wantErr string
	}{
		{"top_k", "network:\n  top_k: 0\n", "top_k"},
		{"workers", "network:\n  workers: 0\n", "workers"},
		{"thresholds", "sentiment:\n  positive_threshold: -0.5\n", "negative_threshold"},
		{"correlation", "correlation:\n  threshold: 1.5\n", "correlation.threshold"},
		{"log level", "log_level: loud\n", "log_level"},
		{"yaml", "network: [\n", "parse config yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit file")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Setenv("TWEETSCOPE_DB", "")
	t.Setenv("TWEETSCOPE_OUTPUT_DIR", "")
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Network.TopK != 50 {
		t.Errorf("TopK = %d", cfg.Network.TopK)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug}, {"INFO", slog.LevelInfo}, {"", slog.LevelInfo},
		{"warn", slog.LevelWarn}, {"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}
