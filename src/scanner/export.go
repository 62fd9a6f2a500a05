package scanner

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"option-scanner/src/models"
)

// CandidateResultCSV is the flattened row shape for CSV export.
// Optional fields export as empty cells, never as zeros.
type CandidateResultCSV struct {
	Symbol           string `csv:"symbol"`
	Description      string `csv:"description"`
	Strategy         string `csv:"strategy"`
	Expiration       string `csv:"expiration"`
	GateState        string `csv:"gate_state"`
	PathsUsed        int    `csv:"paths_used"`
	Score            string `csv:"score"`
	PreliminaryScore string `csv:"preliminary_score"`
	ExpectedPnL      string `csv:"expected_pnl"`
	PnLP5            string `csv:"pnl_p5"`
	PnLP50           string `csv:"pnl_p50"`
	PnLP95           string `csv:"pnl_p95"`
	MinPnL           string `csv:"min_pnl"`
	AnnualizedROI    string `csv:"annualized_roi"`
	AnnualizedROIP5  string `csv:"annualized_roi_at_p5"`
	CapitalPerShare  string `csv:"capital_per_share"`
}

func toCSVRow(r models.CandidateResult) CandidateResultCSV {
	row := CandidateResultCSV{
		Symbol:           string(r.Candidate.Symbol),
		Description:      r.Candidate.Description,
		Strategy:         string(r.Candidate.Strategy.Kind()),
		Expiration:       r.Candidate.Bucket,
		GateState:        string(r.Gate.State),
		PathsUsed:        r.Gate.PathsUsed,
		Score:            fmt.Sprintf("%.6f", r.Score),
		PreliminaryScore: fmt.Sprintf("%.6f", r.PreliminaryScore),
	}

	if r.Simulation != nil {
		row.ExpectedPnL = formatOptional(r.Simulation.ExpectedPnL)
		row.PnLP5 = formatOptional(r.Simulation.PnLP5)
		row.PnLP50 = formatOptional(r.Simulation.PnLP50)
		row.PnLP95 = formatOptional(r.Simulation.PnLP95)
		row.MinPnL = formatOptional(r.Simulation.MinPnL)
		row.AnnualizedROI = formatOptional(r.Simulation.AnnualizedROI)
		row.AnnualizedROIP5 = formatOptional(r.Simulation.AnnualizedROIAtP5)
		row.CapitalPerShare = fmt.Sprintf("%.2f", r.Simulation.CapitalPerShare)
	}

	return row
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf("%.4f", *v)
}

// ExportCSV writes the scan results to a CSV file.
func ExportCSV(results []models.CandidateResult, path string) error {
	rows := make([]CandidateResultCSV, 0, len(results))
	for _, r := range results {
		rows = append(rows, toCSVRow(r))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ExportCSV: error creating CSV file: %v", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("ExportCSV: error marshalling file: %v", err)
	}

	log.Infof("Exported %d scan results to %s", len(rows), path)

	return nil
}

// RenderTable prints a ranked summary table of the scan results.
func RenderTable(w io.Writer, results []models.CandidateResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Strategy", "Expiration", "Gate", "Score", "Exp PnL", "Ann ROI"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, r := range results {
		expPnL, annROI := "n/a", "n/a"
		if r.Simulation != nil {
			if r.Simulation.ExpectedPnL != nil {
				expPnL = fmt.Sprintf("$%.2f", *r.Simulation.ExpectedPnL)
			}
			if r.Simulation.AnnualizedROI != nil {
				annROI = fmt.Sprintf("%.1f%%", *r.Simulation.AnnualizedROI*100)
			}
		}

		table.Append([]string{
			string(r.Candidate.Symbol),
			r.Candidate.Description,
			r.Candidate.Bucket,
			string(r.Gate.State),
			fmt.Sprintf("%.4f", r.Score),
			expPnL,
			annROI,
		})
	}

	table.Render()
}
