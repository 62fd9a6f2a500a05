package scanner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"option-scanner/src/models"
	"option-scanner/src/pricing"
	"option-scanner/src/utils"
)

// deepITMFactor selects the long leg of a diagonal: a call struck at
// or below this fraction of spot.
const deepITMFactor = 0.85

// BuildCandidates turns one ticker's option chain into strategy
// candidates, one per strategy kind per expiration where the chain
// offers usable strikes. Candidate selection is deliberately plain:
// the nearest out-of-the-money strikes. Anything fancier belongs to
// the pre-screening layer.
func BuildCandidates(tick *models.StockTick, chain []models.OptionQuote, riskFreeRate float64, now time.Time) []models.Candidate {
	spot := tick.Spot()
	if spot <= 0 {
		return nil
	}

	byExpiration := make(map[string][]models.OptionQuote)
	for _, q := range chain {
		key := q.ExpirationDate.Format("2006-01-02")
		byExpiration[key] = append(byExpiration[key], q)
	}

	expirations := make([]string, 0, len(byExpiration))
	for key := range byExpiration {
		expirations = append(expirations, key)
	}
	sort.Strings(expirations)

	longLeg, longDays := findDiagonalLongLeg(chain, spot, now)

	var candidates []models.Candidate
	for _, expiration := range expirations {
		quotes := byExpiration[expiration]
		days := utils.DaysToExpiration(now, quotes[0].ExpirationDate)
		if days <= 0 {
			continue
		}

		b := candidateBuilder{
			tick:         tick,
			spot:         spot,
			riskFreeRate: riskFreeRate,
			bucket:       expiration,
			days:         days,
			longLeg:      longLeg,
			longDays:     longDays,
		}

		puts, calls := splitOTM(quotes, spot)
		candidates = append(candidates, b.build(puts, calls)...)
	}

	return candidates
}

type candidateBuilder struct {
	tick         *models.StockTick
	spot         float64
	riskFreeRate float64
	bucket       string
	days         int
	longLeg      *models.OptionQuote
	longDays     int
}

// splitOTM returns out-of-the-money puts (descending strike, nearest
// first) and calls (ascending strike, nearest first).
func splitOTM(quotes []models.OptionQuote, spot float64) (puts, calls []models.OptionQuote) {
	for _, q := range quotes {
		if q.Mid() <= 0 {
			continue
		}

		switch {
		case q.Side == models.PutSide && q.Strike < spot:
			puts = append(puts, q)
		case q.Side == models.CallSide && q.Strike > spot:
			calls = append(calls, q)
		}
	}

	sort.Slice(puts, func(i, j int) bool { return puts[i].Strike > puts[j].Strike })
	sort.Slice(calls, func(i, j int) bool { return calls[i].Strike < calls[j].Strike })

	return puts, calls
}

func (b candidateBuilder) build(puts, calls []models.OptionQuote) []models.Candidate {
	var out []models.Candidate

	appendIfValid := func(c *models.Candidate) {
		if c != nil && c.Strategy.Validate() == nil {
			out = append(out, *c)
		}
	}

	if len(puts) > 0 {
		appendIfValid(b.cashSecuredPut(puts[0]))
	}
	if len(calls) > 0 {
		appendIfValid(b.coveredCall(calls[0]))
	}
	if len(puts) > 1 {
		appendIfValid(b.bullPutSpread(puts[0], puts[1]))
	}
	if len(calls) > 1 {
		appendIfValid(b.bearCallSpread(calls[0], calls[1]))
	}
	if len(puts) > 1 && len(calls) > 1 {
		appendIfValid(b.ironCondor(puts[0], puts[1], calls[0], calls[1]))
	}
	if len(puts) > 0 && len(calls) > 0 {
		appendIfValid(b.collar(calls[0], puts[0]))
	}
	if b.longLeg != nil && len(calls) > 0 {
		appendIfValid(b.poorMansCoveredCall(calls[0]))
		if len(puts) > 0 {
			appendIfValid(b.syntheticCollar(calls[0], puts[0]))
		}
	}

	return out
}

func (b candidateBuilder) newCandidate(description string, iv float64, strategy models.StrategyParameters, short models.OptionQuote, cushion *float64) *models.Candidate {
	snapshot := models.MarketSnapshot{
		Spot:              b.spot,
		DaysToExpiration:  b.days,
		ImpliedVolatility: pricing.NormalizeVol(iv),
		RiskFreeRate:      b.riskFreeRate,
		DividendYield:     b.tick.DividendYield,
	}

	volume := float64(short.Volume)
	openInterest := float64(short.OpenInterest)

	return &models.Candidate{
		ID:            uuid.New(),
		Symbol:        b.tick.Symbol,
		Bucket:        b.bucket,
		Description:   description,
		Snapshot:      snapshot,
		Strategy:      strategy,
		SpreadPercent: short.SpreadPercent(),
		Volume:        &volume,
		OpenInterest:  &openInterest,
		CushionSigmas: cushion,
	}
}

// withStaticROI fills the pre-simulation ROI estimate from the net
// premium and capital, compounded to a 365-day basis.
func withStaticROI(c *models.Candidate, premium, capitalPerShare float64, days int) *models.Candidate {
	if c == nil || capitalPerShare <= 0 || days <= 0 {
		return c
	}

	cycleROI := premium / capitalPerShare
	if 1+cycleROI <= 0 {
		return c
	}

	annualized := math.Pow(1+cycleROI, 365.0/float64(days)) - 1
	c.StaticAnnualizedROI = &annualized

	return c
}

func (b candidateBuilder) cashSecuredPut(put models.OptionQuote) *models.Candidate {
	premium := put.Mid()
	params := models.CashSecuredPutParams{Strike: put.Strike, Premium: premium}

	c := b.newCandidate(
		fmt.Sprintf("CSP %s %.2fP", b.bucket, put.Strike),
		put.ImpliedVolatility,
		params,
		put,
		pricing.CushionBelow(b.spot, put.Strike, put.ImpliedVolatility, b.days),
	)

	return withStaticROI(c, premium, put.Strike, b.days)
}

func (b candidateBuilder) coveredCall(call models.OptionQuote) *models.Candidate {
	premium := call.Mid()
	params := models.CoveredCallParams{
		Strike:   call.Strike,
		Premium:  premium,
		Dividend: b.cycleDividend(),
	}

	c := b.newCandidate(
		fmt.Sprintf("CC %s %.2fC", b.bucket, call.Strike),
		call.ImpliedVolatility,
		params,
		call,
		pricing.CushionAbove(b.spot, call.Strike, call.ImpliedVolatility, b.days),
	)

	return withStaticROI(c, premium, b.spot, b.days)
}

func (b candidateBuilder) collar(call, put models.OptionQuote) *models.Candidate {
	if put.Strike >= call.Strike {
		return nil
	}

	params := models.CollarParams{
		CallStrike:  call.Strike,
		CallPremium: call.Mid(),
		PutStrike:   put.Strike,
		PutCost:     put.Mid(),
		Dividend:    b.cycleDividend(),
	}

	c := b.newCandidate(
		fmt.Sprintf("COLLAR %s %.2fP/%.2fC", b.bucket, put.Strike, call.Strike),
		averageIV(call, put),
		params,
		call,
		pricing.CushionAbove(b.spot, call.Strike, call.ImpliedVolatility, b.days),
	)

	return withStaticROI(c, call.Mid()-put.Mid(), b.spot, b.days)
}

func (b candidateBuilder) bullPutSpread(short, long models.OptionQuote) *models.Candidate {
	credit := short.Mid() - long.Mid()
	if credit <= 0 {
		return nil
	}

	params := models.BullPutSpreadParams{
		ShortStrike: short.Strike,
		LongStrike:  long.Strike,
		NetCredit:   credit,
	}

	c := b.newCandidate(
		fmt.Sprintf("BPS %s %.2f/%.2fP", b.bucket, short.Strike, long.Strike),
		averageIV(short, long),
		params,
		short,
		pricing.CushionBelow(b.spot, short.Strike, short.ImpliedVolatility, b.days),
	)

	return withStaticROI(c, credit, params.Width()-credit, b.days)
}

func (b candidateBuilder) bearCallSpread(short, long models.OptionQuote) *models.Candidate {
	credit := short.Mid() - long.Mid()
	if credit <= 0 {
		return nil
	}

	params := models.BearCallSpreadParams{
		ShortStrike: short.Strike,
		LongStrike:  long.Strike,
		NetCredit:   credit,
	}

	c := b.newCandidate(
		fmt.Sprintf("BCS %s %.2f/%.2fC", b.bucket, short.Strike, long.Strike),
		averageIV(short, long),
		params,
		short,
		pricing.CushionAbove(b.spot, short.Strike, short.ImpliedVolatility, b.days),
	)

	return withStaticROI(c, credit, params.Width()-credit, b.days)
}

func (b candidateBuilder) ironCondor(putShort, putLong, callShort, callLong models.OptionQuote) *models.Candidate {
	credit := putShort.Mid() - putLong.Mid() + callShort.Mid() - callLong.Mid()
	if credit <= 0 {
		return nil
	}

	params := models.IronCondorParams{
		PutLongStrike:   putLong.Strike,
		PutShortStrike:  putShort.Strike,
		CallShortStrike: callShort.Strike,
		CallLongStrike:  callLong.Strike,
		NetCredit:       credit,
	}

	cushion := minCushion(
		pricing.CushionBelow(b.spot, putShort.Strike, putShort.ImpliedVolatility, b.days),
		pricing.CushionAbove(b.spot, callShort.Strike, callShort.ImpliedVolatility, b.days),
	)

	c := b.newCandidate(
		fmt.Sprintf("IC %s %.2f/%.2fP %.2f/%.2fC", b.bucket, putLong.Strike, putShort.Strike, callShort.Strike, callLong.Strike),
		averageIV(putShort, callShort),
		params,
		putShort,
		cushion,
	)

	maxWidth := math.Max(params.PutWidth(), params.CallWidth())
	return withStaticROI(c, credit, maxWidth-credit, b.days)
}

func (b candidateBuilder) poorMansCoveredCall(short models.OptionQuote) *models.Candidate {
	long := *b.longLeg
	if long.Strike >= short.Strike {
		return nil
	}

	params := models.PoorMansCoveredCallParams{
		LongStrike:           long.Strike,
		LongPremium:          long.Mid(),
		LongDaysToExpiration: b.longDays,
		ShortStrike:          short.Strike,
		ShortPremium:         short.Mid(),
	}

	c := b.newCandidate(
		fmt.Sprintf("PMCC %s %.2fC over %.2fC", b.bucket, short.Strike, long.Strike),
		short.ImpliedVolatility,
		params,
		short,
		pricing.CushionAbove(b.spot, short.Strike, short.ImpliedVolatility, b.days),
	)

	return withStaticROI(c, short.Mid(), params.NetDebit(), b.days)
}

func (b candidateBuilder) syntheticCollar(shortCall, put models.OptionQuote) *models.Candidate {
	long := *b.longLeg
	if long.Strike >= shortCall.Strike || put.Strike >= shortCall.Strike {
		return nil
	}

	params := models.SyntheticCollarParams{
		LongStrike:           long.Strike,
		LongPremium:          long.Mid(),
		LongDaysToExpiration: b.longDays,
		ShortCallStrike:      shortCall.Strike,
		ShortCallPremium:     shortCall.Mid(),
		PutStrike:            put.Strike,
		PutCost:              put.Mid(),
	}

	cushion := minCushion(
		pricing.CushionBelow(b.spot, put.Strike, put.ImpliedVolatility, b.days),
		pricing.CushionAbove(b.spot, shortCall.Strike, shortCall.ImpliedVolatility, b.days),
	)

	c := b.newCandidate(
		fmt.Sprintf("SYNTH %s %.2fP/%.2fC over %.2fC", b.bucket, put.Strike, shortCall.Strike, long.Strike),
		averageIV(shortCall, put),
		params,
		shortCall,
		cushion,
	)

	return withStaticROI(c, shortCall.Mid()-put.Mid(), params.NetDebit(), b.days)
}

// cycleDividend estimates the dividend received per share over the
// cycle from the annual dividend-per-share estimate.
func (b candidateBuilder) cycleDividend() float64 {
	if b.tick.DividendPerShare <= 0 {
		return 0
	}

	return b.tick.DividendPerShare * float64(b.days) / 365.0
}

// findDiagonalLongLeg picks the deep in-the-money call from the
// furthest expiration to anchor diagonal structures.
func findDiagonalLongLeg(chain []models.OptionQuote, spot float64, now time.Time) (*models.OptionQuote, int) {
	var best *models.OptionQuote
	bestDays := 0

	for i := range chain {
		q := chain[i]
		if q.Side != models.CallSide || q.Strike > spot*deepITMFactor || q.Mid() <= 0 {
			continue
		}

		days := utils.DaysToExpiration(now, q.ExpirationDate)
		if days > bestDays || (days == bestDays && best != nil && q.Strike < best.Strike) {
			best = &chain[i]
			bestDays = days
		}
	}

	return best, bestDays
}

func averageIV(a, q models.OptionQuote) float64 {
	return (pricing.NormalizeVol(a.ImpliedVolatility) + pricing.NormalizeVol(q.ImpliedVolatility)) / 2.0
}

func minCushion(a, q *float64) *float64 {
	if a == nil {
		return q
	}
	if q == nil {
		return a
	}

	if *a < *q {
		return a
	}

	return q
}
