package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"option-scanner/src/pricing"
)

// PathSimulator draws terminal underlying prices under geometric
// Brownian motion. It always requires an explicit random source so
// concurrent scans stay reproducible and race-free; there is no
// fallback to the package-level generator.
type PathSimulator struct {
	rng *rand.Rand
}

func NewPathSimulator(rng *rand.Rand) (*PathSimulator, error) {
	if rng == nil {
		return nil, fmt.Errorf("NewPathSimulator: an explicit random source is required")
	}

	return &PathSimulator{rng: rng}, nil
}

// TerminalPrices draws nPaths terminal prices as
// S0 * exp((mu - 0.5*sigma^2)*T + sigma*sqrt(T)*Z). Drift is
// caller-supplied: simulate under a real-world drift for expected
// value estimation, distinct from the risk-neutral rate used for
// discounting. Zero volatility or horizon collapses every path to the
// deterministic drift-only price.
func (s *PathSimulator) TerminalPrices(spot, drift, vol, tYears float64, nPaths int) ([]float64, error) {
	if spot <= 0 {
		return nil, fmt.Errorf("TerminalPrices: spot must be positive, got %v", spot)
	}

	if nPaths <= 0 {
		return nil, fmt.Errorf("TerminalPrices: path count must be positive, got %d", nPaths)
	}

	sigma := pricing.NormalizeVol(vol)
	if sigma < 0 || tYears < 0 {
		sigma, tYears = math.Max(sigma, 0), math.Max(tYears, 0)
	}

	diffusion := sigma * math.Sqrt(tYears)
	driftTerm := (drift - 0.5*sigma*sigma) * tYears

	prices := make([]float64, nPaths)
	for i := range prices {
		z := s.rng.NormFloat64()
		prices[i] = spot * math.Exp(driftTerm+diffusion*z)
	}

	return prices, nil
}
