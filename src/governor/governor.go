package governor

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"option-scanner/src/models"
	"option-scanner/src/simulation"
)

// ScanBudgetGovernor decides, per candidate, whether the Monte-Carlo
// simulation runs at all during a bulk scan. It owns the per-bucket
// evaluation counts; create one governor per ticker scan and do not
// share it across goroutines.
type ScanBudgetGovernor struct {
	cfg          models.ScanConfig
	engine       *simulation.MonteCarloEngine
	bucketCounts map[string]int
}

// NewScanBudgetGovernor fails fast on a misconfigured ScanConfig,
// before any scan begins.
func NewScanBudgetGovernor(cfg models.ScanConfig, engine *simulation.MonteCarloEngine) (*ScanBudgetGovernor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewScanBudgetGovernor: %v", err)
	}

	if engine == nil {
		return nil, fmt.Errorf("NewScanBudgetGovernor: engine is required")
	}

	return &ScanBudgetGovernor{
		cfg:          cfg,
		engine:       engine,
		bucketCounts: make(map[string]int),
	}, nil
}

// BucketCount reports how many simulations have run for a bucket.
func (g *ScanBudgetGovernor) BucketCount(bucket string) int {
	return g.bucketCounts[bucket]
}

// Attempt applies the admission policy in order: preliminary-score
// gate, then the per-bucket cap, then the simulation itself. A
// simulation fault is degraded to a ran-but-failed result with every
// summary scalar nil; the candidate is still reported so downstream
// ranking keeps a consistent row shape.
func (g *ScanBudgetGovernor) Attempt(bucket string, preliminaryScore float64, snap models.MarketSnapshot, params models.StrategyParameters, drift float64) (models.GateDecision, *models.SimulationResult) {
	if g.cfg.ScoreThreshold > 0 && preliminaryScore < g.cfg.ScoreThreshold {
		threshold := g.cfg.ScoreThreshold
		log.Debugf("ScanBudgetGovernor.Attempt: skipping %s candidate, preliminary score %.4f below threshold %.4f", bucket, preliminaryScore, threshold)

		return models.GateDecision{
			State:          models.GateSkippedScore,
			ScoreThreshold: &threshold,
		}, nil
	}

	if g.cfg.BucketCap > 0 && g.bucketCounts[bucket] >= g.cfg.BucketCap {
		capValue := g.cfg.BucketCap
		log.Debugf("ScanBudgetGovernor.Attempt: skipping %s candidate, bucket cap %d reached", bucket, capValue)

		return models.GateDecision{
			State:     models.GateSkippedCap,
			BucketCap: &capValue,
		}, nil
	}

	result, err := g.runSimulation(snap, params, drift)
	decision := models.GateDecision{
		State:     models.GateRan,
		PathsUsed: g.cfg.PathCount,
	}

	if err != nil {
		log.Warnf("ScanBudgetGovernor.Attempt: simulation failed for %s candidate: %v", bucket, err)
		return decision, &models.SimulationResult{PathCount: g.cfg.PathCount}
	}

	g.bucketCounts[bucket]++
	return decision, result
}

// runSimulation converts a simulation panic into an error so a single
// malformed candidate cannot abort a batch scan.
func (g *ScanBudgetGovernor) runSimulation(snap models.MarketSnapshot, params models.StrategyParameters, drift float64) (result *models.SimulationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("runSimulation: panic: %v", r)
		}
	}()

	return g.engine.Run(snap, params, drift, g.cfg.PathCount)
}
