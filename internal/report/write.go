package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tweetscope/internal/dataset"
)

// Output file names inside the output directory
const (
	NetworkFile  = "network_data.json"
	SummaryFile  = "llm_eda_context.json"
	InsightsFile = "llm_eda_context_insights.json"
	DescribeFile = "descriptive_stats.csv"
)

// WriteJSON writes v as indented JSON to dir/name, creating dir if needed.
// It returns the written path.
func WriteJSON(dir, name string, v any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// WriteDescribeFile writes the descriptive statistics CSV to dir and returns its path
func WriteDescribeFile(dir string, table *dataset.Table) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, DescribeFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteDescribe(table, f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
