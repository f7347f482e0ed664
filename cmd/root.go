package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tweetscope/internal/config"
	"tweetscope/internal/correlation"
	"tweetscope/internal/dataset"
	"tweetscope/internal/db"
	"tweetscope/internal/graph"
	"tweetscope/internal/report"
	"tweetscope/internal/sentiment"
	"tweetscope/internal/textclean"
)

const dbFileName = ".tweetscope.db"

var (
	dbPath     string
	configPath string
	outDir     string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "tweetscope",
	Short:         "Exploratory analysis of a tweet dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg, err = config.LoadOrDefault(config.DefaultPath)
		}
		if err != nil {
			return err
		}
		if outDir != "" {
			cfg.OutputDir = outDir
		}

		level, _ := config.ParseLevel(cfg.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to "+dbFileName+" database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config (default "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "Output directory for JSON and CSV results")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

// DiscoverDB finds the database path using priority: env > flag > config > walk-up
func DiscoverDB() (string, error) {
	// 1. Environment variable
	if envPath := os.Getenv("TWEETSCOPE_DB"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	// 2. CLI flag
	if dbPath != "" {
		if _, err := os.Stat(dbPath); err == nil {
			return dbPath, nil
		}
		return "", fmt.Errorf("database not found at --db path: %s", dbPath)
	}

	// 3. Config file
	if cfg != nil && cfg.DBPath != "" {
		if _, err := os.Stat(cfg.DBPath); err == nil {
			return cfg.DBPath, nil
		}
	}

	// 4. Walk up from CWD
	dir, err := os.Getwd()
	if err == nil {
		for {
			candidate := filepath.Join(dir, dbFileName)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", fmt.Errorf("no %s found (set TWEETSCOPE_DB, use --db, or run `tweetscope import` first)", dbFileName)
}

// importTarget is where import writes: an existing database if one can be
// found, otherwise the flag, env or config path, otherwise ./.tweetscope.db
func importTarget() string {
	if path, err := DiscoverDB(); err == nil {
		return path
	}
	for _, p := range []string{os.Getenv("TWEETSCOPE_DB"), dbPath, cfg.DBPath} {
		if p != "" {
			return p
		}
	}
	return dbFileName
}

// OpenDatabase discovers and opens the database
func OpenDatabase(ctx context.Context) (*db.DB, error) {
	path, err := DiscoverDB()
	if err != nil {
		return nil, err
	}
	slog.Debug("opening database", "path", path)
	return db.OpenDB(ctx, path)
}

// loadTable reads the imported dataset
func loadTable(ctx context.Context) (*dataset.Table, error) {
	d, err := OpenDatabase(ctx)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	table, err := d.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("database %s holds no tweets; run `tweetscope import` first", d.Path)
	}
	attrs := []any{"rows", table.Len(), "columns", len(table.Columns())}
	imp, err := d.LatestImport(ctx)
	if err != nil {
		return nil, err
	}
	if imp != nil {
		attrs = append(attrs, "import", imp.ID, "imported", humanize.Time(time.UnixMilli(imp.CreatedAt)), "sources", imp.Sources)
	}
	slog.Debug("dataset loaded", attrs...)
	return table, nil
}

func networkOptions() graph.Options {
	return graph.Options{
		TopK:      cfg.Network.TopK,
		Delimiter: cfg.Network.TagDelimiter,
		Workers:   cfg.Network.Workers,
	}
}

func structureConfig() *graph.StructureConfig {
	return &graph.StructureConfig{HubThreshold: cfg.Network.HubThreshold, TopN: cfg.Network.TopN}
}

func correlationOptions() correlation.Options {
	return correlation.Options{
		Features:  dataset.NLPFeatures,
		Threshold: cfg.Correlation.Threshold,
		TopN:      cfg.Correlation.TopN,
	}
}

// newScorer builds the VADER scorer, with the configured stop-word file if any
func newScorer() (*sentiment.Scorer, error) {
	stopwords := textclean.English()
	if cfg.StopwordsFile != "" {
		var err error
		stopwords, err = textclean.LoadStopwords(cfg.StopwordsFile)
		if err != nil {
			return nil, err
		}
	}
	thresholds := sentiment.Thresholds{
		Positive: cfg.Sentiment.PositiveThreshold,
		Negative: cfg.Sentiment.NegativeThreshold,
	}
	return sentiment.NewScorer(sentiment.VADER(), textclean.New(stopwords), thresholds), nil
}

func reportOptions() (report.Options, error) {
	scorer, err := newScorer()
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		DatasetName: cfg.DatasetName,
		Network:     networkOptions(),
		Structure:   structureConfig(),
		Correlation: correlationOptions(),
		Scorer:      scorer,
		TopNodes:    cfg.LLM.TopNodes,
		TopEdges:    cfg.LLM.TopEdges,
	}, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
