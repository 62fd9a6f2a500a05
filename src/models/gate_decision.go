package models

type GateState string

const (
	GateRan          GateState = "ran"
	GateSkippedScore GateState = "skipped_score"
	GateSkippedCap   GateState = "skipped_cap"
)

// GateDecision records the admission-control outcome for one
// candidate. ScoreThreshold and BucketCap are set only when they
// triggered a skip. PathsUsed is zero unless the simulation ran.
type GateDecision struct {
	State          GateState `json:"state"`
	ScoreThreshold *float64  `json:"score_threshold,omitempty"`
	BucketCap      *int      `json:"bucket_cap,omitempty"`
	PathsUsed      int       `json:"paths_used"`
}

func (d GateDecision) Ran() bool {
	return d.State == GateRan
}
