package models

// Weights of the four score components. They are fixed by design and
// sum to 1.0.
const (
	ScoreWeightROI       = 0.50
	ScoreWeightDownside  = 0.20
	ScoreWeightLiquidity = 0.20
	ScoreWeightCushion   = 0.10
)

// ScoreComponents holds the four normalized sub-scores, each clipped
// to [0, 1], and their weighted sum.
type ScoreComponents struct {
	ROI       float64 `json:"roi"`
	Downside  float64 `json:"downside"`
	Liquidity float64 `json:"liquidity"`
	Cushion   float64 `json:"cushion"`
	Score     float64 `json:"score"`
}
