package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MinPathCount is the smallest simulation path count the governor
// will accept.
const MinPathCount = 50

const (
	DefaultPathCount          = 250
	DefaultBucketCap          = 10
	DefaultScoreThreshold     = 0.10
	FastPathCount             = 100
	FastBucketCap             = 5
	FastScoreThreshold        = 0.25
	DefaultMaxConcurrentScans = 10
)

// ScanConfig is the explicit knob set that fully determines the scan
// budget governor's behavior, plus the scan-level worker bound.
type ScanConfig struct {
	FastMode             bool    `yaml:"fast_mode"`
	PathCount            int     `yaml:"path_count"`
	BucketCap            int     `yaml:"bucket_cap"`
	ScoreThreshold       float64 `yaml:"score_threshold"`
	MaxConcurrentTickers int     `yaml:"max_concurrent_tickers"`

	// EnabledStrategies restricts the scan to the listed kinds; empty
	// means every kind.
	EnabledStrategies []StrategyKind `yaml:"enabled_strategies"`
}

// DefaultScanConfig returns the documented defaults; fast mode trades
// accuracy for throughput by shrinking the path count and tightening
// the admission gates.
func DefaultScanConfig(fastMode bool) ScanConfig {
	if fastMode {
		return ScanConfig{
			FastMode:             true,
			PathCount:            FastPathCount,
			BucketCap:            FastBucketCap,
			ScoreThreshold:       FastScoreThreshold,
			MaxConcurrentTickers: DefaultMaxConcurrentScans,
		}
	}

	return ScanConfig{
		PathCount:            DefaultPathCount,
		BucketCap:            DefaultBucketCap,
		ScoreThreshold:       DefaultScoreThreshold,
		MaxConcurrentTickers: DefaultMaxConcurrentScans,
	}
}

func (c ScanConfig) Validate() error {
	if c.PathCount < MinPathCount {
		return fmt.Errorf("ScanConfig: Validate: path count must be >= %d, got %d", MinPathCount, c.PathCount)
	}

	if c.BucketCap < 0 {
		return fmt.Errorf("ScanConfig: Validate: bucket cap must be >= 0, got %d", c.BucketCap)
	}

	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("ScanConfig: Validate: score threshold must be in [0, 1], got %v", c.ScoreThreshold)
	}

	if c.MaxConcurrentTickers <= 0 {
		return fmt.Errorf("ScanConfig: Validate: max concurrent tickers must be positive, got %d", c.MaxConcurrentTickers)
	}

	for _, kind := range c.EnabledStrategies {
		if err := kind.Validate(); err != nil {
			return fmt.Errorf("ScanConfig: Validate: %v", err)
		}
	}

	return nil
}

// StrategyEnabled reports whether candidates of the given kind should
// be built; an empty EnabledStrategies list enables everything.
func (c ScanConfig) StrategyEnabled(kind StrategyKind) bool {
	if len(c.EnabledStrategies) == 0 {
		return true
	}

	for _, enabled := range c.EnabledStrategies {
		if enabled == kind {
			return true
		}
	}

	return false
}

// LoadScanConfig reads a ScanConfig from a YAML file. Fields omitted
// from the file keep the defaults for the file's fast_mode setting.
func LoadScanConfig(path string) (ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScanConfig{}, fmt.Errorf("LoadScanConfig: failed to read %s: %v", path, err)
	}

	var fileCfg struct {
		FastMode             bool           `yaml:"fast_mode"`
		PathCount            *int           `yaml:"path_count"`
		BucketCap            *int           `yaml:"bucket_cap"`
		ScoreThreshold       *float64       `yaml:"score_threshold"`
		MaxConcurrentTickers *int           `yaml:"max_concurrent_tickers"`
		EnabledStrategies    []StrategyKind `yaml:"enabled_strategies"`
	}

	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return ScanConfig{}, fmt.Errorf("LoadScanConfig: failed to unmarshal %s: %v", path, err)
	}

	cfg := DefaultScanConfig(fileCfg.FastMode)
	if fileCfg.PathCount != nil {
		cfg.PathCount = *fileCfg.PathCount
	}
	if fileCfg.BucketCap != nil {
		cfg.BucketCap = *fileCfg.BucketCap
	}
	if fileCfg.ScoreThreshold != nil {
		cfg.ScoreThreshold = *fileCfg.ScoreThreshold
	}
	if fileCfg.MaxConcurrentTickers != nil {
		cfg.MaxConcurrentTickers = *fileCfg.MaxConcurrentTickers
	}
	cfg.EnabledStrategies = fileCfg.EnabledStrategies

	if err := cfg.Validate(); err != nil {
		return ScanConfig{}, fmt.Errorf("LoadScanConfig: %v", err)
	}

	return cfg, nil
}
