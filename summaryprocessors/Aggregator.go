package summaryprocessors

import (
	"fmt"

	"github.com/reaandrew/slitherreport/core"
)

// FileFindings groups the findings read from one report file.
type FileFindings struct {
	Source   string
	Findings []core.Finding
}

// Summary is the aggregate of one run.
type Summary struct {
	Total      int
	BySeverity *Counter
	ByCheck    *Counter
	PerFile    []FileFindings
	Findings   []core.Finding
}

// Aggregator tallies findings in a single pass. Report files that yield no
// findings never appear in PerFile.
type Aggregator struct {
	summary     Summary
	fileIndexes map[string]int
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		summary: Summary{
			BySeverity: NewCounter(),
			ByCheck:    NewCounter(),
		},
		fileIndexes: map[string]int{},
	}
}

func (a *Aggregator) Process(finding core.Finding) {
	a.summary.Total++
	a.summary.ByCheck.Add(finding.Check)
	a.summary.BySeverity.Add(finding.Severity)
	a.summary.Findings = append(a.summary.Findings, finding)

	index, ok := a.fileIndexes[finding.Source]
	if !ok {
		index = len(a.summary.PerFile)
		a.fileIndexes[finding.Source] = index
		a.summary.PerFile = append(a.summary.PerFile, FileFindings{Source: finding.Source})
	}
	a.summary.PerFile[index].Findings = append(a.summary.PerFile[index].Findings, finding)
}

func (a *Aggregator) Summary() Summary {
	return a.summary
}

// Summarize feeds every finding of repository through a new Aggregator.
func Summarize(repository core.FindingRepository) (Summary, error) {
	var aggregator SummaryProcessor = NewAggregator()
	iterator := repository.NewIterator()
	for iterator.HasNext() {
		set, err := iterator.Next()
		if err != nil {
			return Summary{}, fmt.Errorf("failed to retrieve next finding set: %w", err)
		}
		for _, finding := range set.Findings {
			aggregator.Process(finding)
		}
	}
	return aggregator.Summary(), nil
}
