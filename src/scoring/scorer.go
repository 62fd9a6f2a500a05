package scoring

import (
	"math"

	"option-scanner/src/models"
)

// Normalization bands for the score components.
const (
	roiSaturation     = 1.0  // >= 100% annualized ROI scores 1.0
	maxSpreadPercent  = 0.20 // >= 20% bid-ask spread scores 0.0
	volumeOISaturation = 0.5 // volume/open-interest >= 0.5 scores 1.0
	cushionSaturation = 3.0  // >= 3 sigmas of cushion scores 1.0

	neutralLiquidity = 0.5
	neutralDownside  = 0.5
)

// Input carries everything the unified risk/reward score consumes.
// Every field is optional: a missing or non-finite input degrades its
// component to a neutral value instead of failing the score. This is
// the one place where the missing-value policy lives.
type Input struct {
	AnnualizedROI *float64
	PnLP5         *float64
	Capital       *float64 // per contract, same units as PnLP5
	SpreadPercent *float64 // decimal, 0.05 = 5%
	Volume        *float64
	OpenInterest  *float64
	CushionSigmas *float64
}

// Score combines the four components with fixed weights
// (0.50/0.20/0.20/0.10) into a final score in [0, 1], rounded to six
// decimal places.
func Score(in Input) models.ScoreComponents {
	roi := roiComponent(in.AnnualizedROI)
	downside := downsideComponent(in.PnLP5, in.Capital)
	liquidity := liquidityComponent(in.SpreadPercent, in.Volume, in.OpenInterest)
	cushion := cushionComponent(in.CushionSigmas)

	total := models.ScoreWeightROI*roi +
		models.ScoreWeightDownside*downside +
		models.ScoreWeightLiquidity*liquidity +
		models.ScoreWeightCushion*cushion

	return models.ScoreComponents{
		ROI:       roi,
		Downside:  downside,
		Liquidity: liquidity,
		Cushion:   cushion,
		Score:     round6(clamp01(total)),
	}
}

// Preliminary scores a candidate before any simulation has run: the
// downside component is unknowable and stays neutral.
func Preliminary(in Input) float64 {
	in.PnLP5 = nil
	in.Capital = nil
	return Score(in).Score
}

func roiComponent(roi *float64) float64 {
	v, ok := finite(roi)
	if !ok {
		return 0
	}

	return clamp01(v / roiSaturation)
}

func downsideComponent(p5, capital *float64) float64 {
	loss, ok := finite(p5)
	if !ok {
		return neutralDownside
	}

	if loss >= 0 {
		return 1
	}

	atRisk, ok := finite(capital)
	if !ok || atRisk <= 0 {
		return neutralDownside
	}

	// Linear decay: a P5 loss equal to the full capital scores 0.
	return clamp01(1 - (-loss)/atRisk)
}

func liquidityComponent(spreadPct, volume, openInterest *float64) float64 {
	spreadScore := neutralLiquidity
	if v, ok := finite(spreadPct); ok {
		spreadScore = clamp01(1 - v/maxSpreadPercent)
	}

	volOIScore := neutralLiquidity
	vol, volOK := finite(volume)
	oi, oiOK := finite(openInterest)
	if volOK && oiOK && oi > 0 {
		volOIScore = clamp01((vol / oi) / volumeOISaturation)
	}

	return 0.7*spreadScore + 0.3*volOIScore
}

func cushionComponent(cushion *float64) float64 {
	v, ok := finite(cushion)
	if !ok {
		return 0
	}

	return clamp01(v / cushionSaturation)
}

func finite(p *float64) (float64, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}

	return *p, true
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

func round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
