package reporters

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/reportstorage"
	"github.com/reaandrew/slitherreport/summaryprocessors"
)

type ReportIdGenerator interface {
	Generate() string
}

type UuidReportGenerator struct {
}

func (u UuidReportGenerator) Generate() string {
	return uuid.New().String()
}

type JsonFileCount struct {
	Source   string `json:"source"`
	Findings int    `json:"findings"`
}

// JsonSummary is the document written by JsonReporter.
type JsonSummary struct {
	ReportID   string                    `json:"report_id"`
	ReportsDir string                    `json:"reports_dir,omitempty"`
	Total      int                       `json:"total"`
	BySeverity []summaryprocessors.Count `json:"by_severity"`
	TopChecks  []summaryprocessors.Count `json:"top_checks"`
	Findings   []Row                     `json:"findings"`
	PerFile    []JsonFileCount           `json:"per_file"`
}

type JsonReporter struct {
	Options           Options
	Storage           reportstorage.ReportStorage
	ReportIdGenerator ReportIdGenerator
}

func NewDefaultJsonReporter(options Options, storage reportstorage.ReportStorage) JsonReporter {
	return JsonReporter{
		Options:           options,
		Storage:           storage,
		ReportIdGenerator: UuidReportGenerator{},
	}
}

func (j JsonReporter) Report(repository core.FindingRepository) error {
	summary, err := summaryprocessors.Summarize(repository)
	if err != nil {
		return fmt.Errorf("failed to summarize findings: %w", err)
	}

	document := JsonSummary{
		ReportID:   j.ReportIdGenerator.Generate(),
		ReportsDir: j.Options.ReportsDir,
		Total:      summary.Total,
		BySeverity: summary.BySeverity.MostCommon(0),
		TopChecks:  summary.ByCheck.MostCommon(j.Options.topChecks()),
		Findings:   BuildRows(summary.Findings),
		PerFile:    make([]JsonFileCount, 0, len(summary.PerFile)),
	}
	for _, file := range summary.PerFile {
		document.PerFile = append(document.PerFile, JsonFileCount{Source: file.Source, Findings: len(file.Findings)})
	}

	summaryBytes, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary data: %w", err)
	}

	if err := j.Storage.Store(summaryBytes); err != nil {
		return fmt.Errorf("failed to store JSON report: %w", err)
	}
	return nil
}
