package models

import "fmt"

type StrategyKind string

const (
	CashSecuredPut  StrategyKind = "cash_secured_put"
	CoveredCall     StrategyKind = "covered_call"
	Collar          StrategyKind = "collar"
	IronCondor      StrategyKind = "iron_condor"
	BullPutSpread   StrategyKind = "bull_put_spread"
	BearCallSpread  StrategyKind = "bear_call_spread"
	PoorMansCovered StrategyKind = "poor_mans_covered_call"
	SyntheticCollar StrategyKind = "synthetic_collar"
)

var allStrategyKinds = []StrategyKind{
	CashSecuredPut,
	CoveredCall,
	Collar,
	IronCondor,
	BullPutSpread,
	BearCallSpread,
	PoorMansCovered,
	SyntheticCollar,
}

func (k StrategyKind) Validate() error {
	for _, kind := range allStrategyKinds {
		if k == kind {
			return nil
		}
	}

	return fmt.Errorf("StrategyKind: Validate: invalid strategy kind: %s", k)
}

func AllStrategyKinds() []StrategyKind {
	out := make([]StrategyKind, len(allStrategyKinds))
	copy(out, allStrategyKinds)
	return out
}
