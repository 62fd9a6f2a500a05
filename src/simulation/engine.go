package simulation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"option-scanner/src/models"
)

// ContractMultiplier is the number of shares one option contract
// controls.
const ContractMultiplier = 100.0

// MonteCarloEngine orchestrates the path simulator and the payoff
// evaluators, then reduces the per-path P&L batch to summary
// statistics. All per-contract dollar figures are per-share figures
// scaled by the contract multiplier.
type MonteCarloEngine struct {
	simulator  *PathSimulator
	multiplier float64
}

func NewMonteCarloEngine(simulator *PathSimulator) *MonteCarloEngine {
	return &MonteCarloEngine{
		simulator:  simulator,
		multiplier: ContractMultiplier,
	}
}

// Run simulates one candidate. Drift is caller-supplied and need not
// equal the risk-free rate. Non-finite path values are dropped from
// the reductions, not zeroed; if no finite samples remain every
// derived scalar stays nil.
func (e *MonteCarloEngine) Run(snap models.MarketSnapshot, params models.StrategyParameters, drift float64, nPaths int) (*models.SimulationResult, error) {
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: invalid snapshot: %v", err)
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: invalid strategy parameters: %v", err)
	}

	terminal, err := e.simulator.TerminalPrices(snap.Spot, drift, snap.ImpliedVolatility, snap.TimeToExpiry(), nPaths)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: %v", err)
	}

	pnlPerShare, capitalPerShare, err := EvaluatePayoff(params, snap, terminal)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: %v", err)
	}

	pnl := make([]float64, len(pnlPerShare))
	for i, v := range pnlPerShare {
		pnl[i] = v * e.multiplier
	}

	result := &models.SimulationResult{
		TerminalPrices:  terminal,
		ProfitAndLoss:   pnl,
		CapitalPerShare: capitalPerShare,
		PathCount:       nPaths,
	}

	finite := make([]float64, 0, len(pnl))
	for _, v := range pnl {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}

	if len(finite) == 0 {
		return result, nil
	}

	mean, err := stats.Mean(finite)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: failed to compute mean: %v", err)
	}

	p5, err := stats.Percentile(finite, 5)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: failed to compute p5: %v", err)
	}

	p50, err := stats.Percentile(finite, 50)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: failed to compute p50: %v", err)
	}

	p95, err := stats.Percentile(finite, 95)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: failed to compute p95: %v", err)
	}

	min, err := stats.Min(finite)
	if err != nil {
		return nil, fmt.Errorf("MonteCarloEngine.Run: failed to compute min: %v", err)
	}

	result.ExpectedPnL = &mean
	result.PnLP5 = &p5
	result.PnLP50 = &p50
	result.PnLP95 = &p95
	result.MinPnL = &min

	capitalPerContract := capitalPerShare * e.multiplier
	if capitalPerContract > 0 && snap.DaysToExpiration > 0 {
		result.AnnualizedROI = annualizeROI(mean/capitalPerContract, snap.DaysToExpiration)
		result.AnnualizedROIAtP5 = annualizeROI(p5/capitalPerContract, snap.DaysToExpiration)
	}

	if sd, err := stats.StandardDeviation(finite); err == nil && sd > 0 {
		ratio := mean / sd
		result.RiskAdjustedRatio = &ratio
	}

	return result, nil
}

// annualizeROI compounds a cycle return to a 365-day basis. A cycle
// return of -100% or worse cannot be compounded and reports as a
// total loss.
func annualizeROI(cycleROI float64, days int) *float64 {
	if days <= 0 {
		return nil
	}

	base := 1 + cycleROI
	if base <= 0 {
		lost := -1.0
		return &lost
	}

	annualized := math.Pow(base, 365.0/float64(days)) - 1
	return &annualized
}
