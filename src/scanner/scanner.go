package scanner

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"option-scanner/src/governor"
	"option-scanner/src/models"
	"option-scanner/src/scoring"
	"option-scanner/src/simulation"
)

// Options are the scan-level inputs the caller provides alongside the
// ScanConfig knobs.
type Options struct {
	RiskFreeRate float64
	// Drift is the real-world drift assumption for the simulation;
	// zero means simulate at the risk-free rate.
	Drift *float64
	// Seed makes the whole scan deterministic; zero seeds from the
	// clock.
	Seed int64
}

// Scanner evaluates option-selling strategies across many tickers.
// Tickers run concurrently under a bounded worker pool; within one
// ticker, candidates run sequentially because the governor's bucket
// counters are not shared across goroutines.
type Scanner struct {
	fetcher models.MarketDataFetcher
	cfg     models.ScanConfig
	opts    Options
}

func NewScanner(fetcher models.MarketDataFetcher, cfg models.ScanConfig, opts Options) (*Scanner, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("NewScanner: fetcher is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewScanner: %v", err)
	}

	return &Scanner{fetcher: fetcher, cfg: cfg, opts: opts}, nil
}

func (s *Scanner) drift() float64 {
	if s.opts.Drift != nil {
		return *s.opts.Drift
	}

	return s.opts.RiskFreeRate
}

// ScanTickers runs the full scan and returns every candidate,
// including skipped ones, sorted by score descending.
func (s *Scanner) ScanTickers(ctx context.Context, symbols []models.StockSymbol) ([]models.CandidateResult, error) {
	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Infof("scanning %d tickers (fast_mode=%v, paths=%d)", len(symbols), s.cfg.FastMode, s.cfg.PathCount)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []models.CandidateResult
	)

	sem := make(chan struct{}, s.cfg.MaxConcurrentTickers)

	for i, symbol := range symbols {
		wg.Add(1)

		go func(symbol models.StockSymbol, workerSeed int64) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// Each worker owns its generator; sharing one across
			// goroutines would race and break reproducibility.
			rng := rand.New(rand.NewSource(workerSeed))

			tickerResults, err := s.scanTicker(ctx, symbol, rng)
			if err != nil {
				log.Errorf("ScanTickers: %s: %v", symbol, err)
				return
			}

			mu.Lock()
			results = append(results, tickerResults...)
			mu.Unlock()
		}(symbol, seed+int64(i))
	}

	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

func (s *Scanner) scanTicker(ctx context.Context, symbol models.StockSymbol, rng *rand.Rand) ([]models.CandidateResult, error) {
	if err := symbol.Validate(); err != nil {
		return nil, fmt.Errorf("scanTicker: %v", err)
	}

	tick, err := s.fetcher.FetchStockTick(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("scanTicker: failed to fetch stock tick: %v", err)
	}

	chain, err := s.fetcher.FetchOptionChain(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("scanTicker: failed to fetch option chain: %v", err)
	}

	candidates := BuildCandidates(tick, chain, s.opts.RiskFreeRate, time.Now())
	candidates = s.filterEnabled(candidates)
	if len(candidates) == 0 {
		log.Infof("scanTicker: %s: no candidates", symbol)
		return nil, nil
	}

	simulator, err := simulation.NewPathSimulator(rng)
	if err != nil {
		return nil, fmt.Errorf("scanTicker: %v", err)
	}

	gov, err := governor.NewScanBudgetGovernor(s.cfg, simulation.NewMonteCarloEngine(simulator))
	if err != nil {
		return nil, fmt.Errorf("scanTicker: %v", err)
	}

	results := make([]models.CandidateResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, s.evaluate(gov, candidate))
	}

	log.Infof("scanTicker: %s: evaluated %d candidates", symbol, len(results))

	return results, nil
}

func (s *Scanner) filterEnabled(candidates []models.Candidate) []models.Candidate {
	if len(s.cfg.EnabledStrategies) == 0 {
		return candidates
	}

	out := candidates[:0]
	for _, c := range candidates {
		if s.cfg.StrategyEnabled(c.Strategy.Kind()) {
			out = append(out, c)
		}
	}

	return out
}

// evaluate gates one candidate through the governor and scores it.
// Skipped candidates keep their preliminary score so every row ranks.
func (s *Scanner) evaluate(gov *governor.ScanBudgetGovernor, candidate models.Candidate) models.CandidateResult {
	prelimInput := scoring.Input{
		AnnualizedROI: candidate.StaticAnnualizedROI,
		SpreadPercent: candidate.SpreadPercent,
		Volume:        candidate.Volume,
		OpenInterest:  candidate.OpenInterest,
		CushionSigmas: candidate.CushionSigmas,
	}
	prelim := scoring.Preliminary(prelimInput)

	decision, sim := gov.Attempt(candidate.Bucket, prelim, candidate.Snapshot, candidate.Strategy, s.drift())

	result := models.CandidateResult{
		Candidate:        candidate,
		Gate:             decision,
		Simulation:       sim,
		PreliminaryScore: prelim,
	}

	if !decision.Ran() || sim == nil || sim.ExpectedPnL == nil {
		result.Components = scoring.Score(scoring.Input{
			AnnualizedROI: candidate.StaticAnnualizedROI,
			SpreadPercent: candidate.SpreadPercent,
			Volume:        candidate.Volume,
			OpenInterest:  candidate.OpenInterest,
			CushionSigmas: candidate.CushionSigmas,
		})
		result.Score = result.Components.Score

		return result
	}

	capital := sim.CapitalPerContract(simulation.ContractMultiplier)
	result.Components = scoring.Score(scoring.Input{
		AnnualizedROI: sim.AnnualizedROI,
		PnLP5:         sim.PnLP5,
		Capital:       &capital,
		SpreadPercent: candidate.SpreadPercent,
		Volume:        candidate.Volume,
		OpenInterest:  candidate.OpenInterest,
		CushionSigmas: candidate.CushionSigmas,
	})
	result.Score = result.Components.Score

	return result
}
