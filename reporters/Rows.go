package reporters

import (
	"sort"
	"strings"

	"github.com/reaandrew/slitherreport/core"
)

// Row is one line of the detailed findings table.
type Row struct {
	Index            int    `json:"index"`
	Check            string `json:"check"`
	Severity         string `json:"severity"`
	Confidence       string `json:"confidence,omitempty"`
	File             string `json:"file"`
	Lines            string `json:"lines"`
	ShortDescription string `json:"short_description"`
	Recommendation   string `json:"recommendation"`
}

// BuildRows orders findings by severity rank, then by check name ignoring
// case, and numbers them from 1. Findings that compare equal keep their
// load order.
func BuildRows(findings []core.Finding) []Row {
	sorted := make([]core.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := core.SeverityRank(sorted[i].Severity), core.SeverityRank(sorted[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(sorted[i].Check) < strings.ToLower(sorted[j].Check)
	})

	rows := make([]Row, 0, len(sorted))
	for i, finding := range sorted {
		rows = append(rows, Row{
			Index:            i + 1,
			Check:            finding.Check,
			Severity:         finding.Severity,
			Confidence:       finding.Confidence,
			File:             finding.DisplayFile(),
			Lines:            finding.Lines,
			ShortDescription: finding.ShortDescription,
			Recommendation:   finding.Recommendation,
		})
	}
	return rows
}

// EscapeCell keeps free text from breaking a pipe-delimited table.
func EscapeCell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}
