package reporters

import (
	"fmt"
	"strings"

	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/reportstorage"
	"github.com/reaandrew/slitherreport/summaryprocessors"
)

const MarkdownTitle = "Slither aggregated report"

var tableColumns = []string{"#", "Check", "Severity", "File", "Lines", "Short description", "Recommended action"}

type MarkdownReporter struct {
	Options Options
	Storage reportstorage.ReportStorage
}

func (m MarkdownReporter) Report(repository core.FindingRepository) error {
	summary, err := summaryprocessors.Summarize(repository)
	if err != nil {
		return fmt.Errorf("failed to summarize findings: %w", err)
	}

	content := RenderMarkdown(summary, m.Options)
	if err := m.Storage.Store([]byte(content)); err != nil {
		return fmt.Errorf("failed to store markdown report: %w", err)
	}
	return nil
}

// RenderMarkdown renders the totals, severity and check breakdowns, the
// detailed findings table and the per-file counts, in that order.
func RenderMarkdown(summary summaryprocessors.Summary, options Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", MarkdownTitle)
	if options.ReportsDir != "" {
		fmt.Fprintf(&b, "- Generated from JSON files in `%s`\n", options.ReportsDir)
	}
	fmt.Fprintf(&b, "- Total findings: **%d**\n", summary.Total)

	b.WriteString("\n## Findings by severity\n\n")
	writeCounts(&b, summary.BySeverity.MostCommon(0), "- **%s**: %d\n")

	b.WriteString("\n## Top checks\n\n")
	writeCounts(&b, summary.ByCheck.MostCommon(options.topChecks()), "- %s: %d\n")

	b.WriteString("\n---\n\n## Detailed findings table\n\n")
	fmt.Fprintf(&b, "(Columns: %s)\n\n", strings.Join(tableColumns, ", "))
	fmt.Fprintf(&b, "| %s |\n", strings.Join(tableColumns, " | "))
	b.WriteString("|---:|---|---|---|---|---|---|\n")
	for _, row := range BuildRows(summary.Findings) {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			row.Index,
			EscapeCell(row.Check),
			EscapeCell(row.Severity),
			EscapeCell(row.File),
			EscapeCell(row.Lines),
			EscapeCell(row.ShortDescription),
			EscapeCell(row.Recommendation))
	}

	b.WriteString("\n---\n\n## Per-file findings (count)\n\n")
	if len(summary.PerFile) == 0 {
		b.WriteString("- none\n")
	}
	for _, file := range summary.PerFile {
		fmt.Fprintf(&b, "- **%s**: %d findings\n", file.Source, len(file.Findings))
	}

	return b.String()
}

func writeCounts(b *strings.Builder, counts []summaryprocessors.Count, format string) {
	if len(counts) == 0 {
		b.WriteString("- none\n")
		return
	}
	for _, count := range counts {
		fmt.Fprintf(b, format, count.Key, count.Count)
	}
}
