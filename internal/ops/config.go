// Package ops loads the pipeline configuration.
package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"main/internal/execution"
	"main/internal/fractional"
	"main/internal/marketdata"
	"main/internal/product"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Data       DataConfig       `json:"data"`
	Output     OutputConfig     `json:"output"`
	MarketData MarketDataConfig `json:"marketData"`
	Execution  ExecutionConfig  `json:"execution"`
	Streaming  StreamingConfig  `json:"streaming"`
	Risk       RiskConfig       `json:"risk"`
	Booking    BookingConfig    `json:"booking"`
}

// DataConfig names the ingress CSV files.
type DataConfig struct {
	Dir        string `json:"dir"`
	Prices     string `json:"prices"`
	MarketData string `json:"marketData"`
	Trades     string `json:"trades"`
	Inquiries  string `json:"inquiries"`
}

// OutputConfig names the historical sink directory.
type OutputConfig struct {
	Dir string `json:"dir"`
}

// MarketDataConfig tunes order book ingestion.
type MarketDataConfig struct {
	BookDepth int `json:"bookDepth"`
}

// ExecutionConfig tunes the crossing algo. The threshold is fraction
// text, e.g. "0-002" for 1/128.
type ExecutionConfig struct {
	SpreadThreshold string `json:"spreadThreshold"`
}

// StreamingConfig tunes the visible size ladder.
type StreamingConfig struct {
	VisibleTiers []int64 `json:"visibleTiers"`
}

// RiskConfig overrides the bucket partition by ticker lists.
type RiskConfig struct {
	Buckets map[string][]string `json:"buckets"`
}

// BookingConfig toggles the execution-to-trade bridge.
type BookingConfig struct {
	BookExecutedTrades bool `json:"bookExecutedTrades"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	PricesPath      string
	MarketDataPath  string
	TradesPath      string
	InquiriesPath   string
	OutputDir       string
	BookDepth       int
	SpreadThreshold float64
	VisibleTiers    [2]int64
	Buckets         map[product.Bucket][]string

	BookExecutedTrades bool
}

// Default returns the configuration used when no file is given.
func Default() Loaded {
	return Loaded{
		PricesPath:      filepath.Join("data", "prices.csv"),
		MarketDataPath:  filepath.Join("data", "marketdata.csv"),
		TradesPath:      filepath.Join("data", "trades.csv"),
		InquiriesPath:   filepath.Join("data", "inquiries.csv"),
		OutputDir:       "output",
		BookDepth:       marketdata.DefaultBookDepth,
		SpreadThreshold: execution.DefaultSpreadThreshold,
		VisibleTiers:    [2]int64{1_000_000, 2_000_000},
		Buckets:         product.DefaultBuckets(),
	}
}

// Load reads a JSON config file and resolves it over the defaults.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	loaded := Default()

	dir := cfg.Data.Dir
	if dir == "" {
		dir = "data"
	}
	loaded.PricesPath = resolvePath(dir, cfg.Data.Prices, "prices.csv")
	loaded.MarketDataPath = resolvePath(dir, cfg.Data.MarketData, "marketdata.csv")
	loaded.TradesPath = resolvePath(dir, cfg.Data.Trades, "trades.csv")
	loaded.InquiriesPath = resolvePath(dir, cfg.Data.Inquiries, "inquiries.csv")

	if cfg.Output.Dir != "" {
		loaded.OutputDir = cfg.Output.Dir
	}

	if cfg.MarketData.BookDepth < 0 {
		return Loaded{}, fmt.Errorf("bookDepth must be >= 0")
	}
	if cfg.MarketData.BookDepth > 0 {
		loaded.BookDepth = cfg.MarketData.BookDepth
	}

	if cfg.Execution.SpreadThreshold != "" {
		threshold, err := parseThreshold(cfg.Execution.SpreadThreshold)
		if err != nil {
			return Loaded{}, err
		}
		loaded.SpreadThreshold = threshold
	}

	if len(cfg.Streaming.VisibleTiers) > 0 {
		if len(cfg.Streaming.VisibleTiers) != 2 {
			return Loaded{}, fmt.Errorf("visibleTiers must name exactly two sizes")
		}
		for _, tier := range cfg.Streaming.VisibleTiers {
			if tier <= 0 {
				return Loaded{}, fmt.Errorf("visibleTiers must be > 0")
			}
		}
		loaded.VisibleTiers = [2]int64{cfg.Streaming.VisibleTiers[0], cfg.Streaming.VisibleTiers[1]}
	}

	if len(cfg.Risk.Buckets) > 0 {
		buckets, err := resolveBuckets(cfg.Risk.Buckets)
		if err != nil {
			return Loaded{}, err
		}
		loaded.Buckets = buckets
	}

	loaded.BookExecutedTrades = cfg.Booking.BookExecutedTrades
	return loaded, nil
}

func resolvePath(dir, name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func parseThreshold(s string) (float64, error) {
	threshold, err := fractional.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("invalid spreadThreshold %q: %w", s, err)
	}
	if threshold <= 0 {
		return 0, fmt.Errorf("spreadThreshold must be > 0")
	}
	return threshold, nil
}

func resolveBuckets(cfg map[string][]string) (map[product.Bucket][]string, error) {
	if len(cfg) < 2 {
		return nil, fmt.Errorf("risk buckets must partition products into at least two groups")
	}
	buckets := make(map[product.Bucket][]string, len(cfg))
	for name, tickers := range cfg {
		members := make([]string, 0, len(tickers))
		for _, ticker := range tickers {
			cusip, ok := product.CUSIPByTicker(ticker)
			if !ok {
				return nil, fmt.Errorf("unknown ticker in bucket %s: %s", name, ticker)
			}
			members = append(members, cusip)
		}
		buckets[product.Bucket(name)] = members
	}
	return buckets, nil
}
