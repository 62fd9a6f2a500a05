package models

import "github.com/google/uuid"

// Candidate is one strategy on one underlying, ready for evaluation.
// Bucket groups candidates for the governor's per-bucket cap; the
// scanner uses the expiration date.
type Candidate struct {
	ID          uuid.UUID          `json:"id"`
	Symbol      StockSymbol        `json:"symbol"`
	Bucket      string             `json:"bucket"`
	Description string             `json:"description"`
	Snapshot    MarketSnapshot     `json:"snapshot"`
	Strategy    StrategyParameters `json:"strategy"`

	// Pre-simulation inputs for the preliminary score.
	StaticAnnualizedROI *float64 `json:"static_annualized_roi"`
	SpreadPercent       *float64 `json:"spread_percent"`
	Volume              *float64 `json:"volume"`
	OpenInterest        *float64 `json:"open_interest"`
	CushionSigmas       *float64 `json:"cushion_sigmas"`
}

// CandidateResult is the stable per-candidate output record. A
// skipped or failed simulation leaves the Simulation scalar fields
// nil so downstream ranking can distinguish "not evaluated" from
// "evaluated and found nothing".
type CandidateResult struct {
	Candidate        Candidate         `json:"candidate"`
	Gate             GateDecision      `json:"gate"`
	Simulation       *SimulationResult `json:"simulation,omitempty"`
	PreliminaryScore float64           `json:"preliminary_score"`
	Components       ScoreComponents   `json:"components"`
	Score            float64           `json:"score"`
}
