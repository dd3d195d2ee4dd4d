package reporters

import (
	"fmt"

	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/reportstorage"
	"github.com/reaandrew/slitherreport/summaryprocessors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet   = "Summary"
	TopChecksSheet = "Top Checks"
	FindingsSheet  = "Findings"
	FilesSheet     = "Files"
)

// XlsxReporter writes the summary as a workbook with one sheet per section.
type XlsxReporter struct {
	Options Options
	Storage reportstorage.ReportStorage
}

func (x XlsxReporter) Report(repository core.FindingRepository) error {
	summary, err := summaryprocessors.Summarize(repository)
	if err != nil {
		return fmt.Errorf("failed to summarize findings: %w", err)
	}

	f, err := BuildWorkbook(summary, x.Options)
	if err != nil {
		return err
	}
	defer f.Close()

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to serialize XLSX report: %w", err)
	}
	if err := x.Storage.Store(buffer.Bytes()); err != nil {
		return fmt.Errorf("failed to store XLSX report: %w", err)
	}

	log.Debugf("XLSX report contains %d findings", summary.Total)
	return nil
}

func BuildWorkbook(summary summaryprocessors.Summary, options Options) (*excelize.File, error) {
	f := excelize.NewFile()

	// Reuse the default sheet for the summary rather than leaving it empty.
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename default sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Reports directory", options.ReportsDir},
		{"Total findings", summary.Total},
		{},
		{"Severity", "Count"},
	}
	for _, count := range summary.BySeverity.MostCommon(0) {
		summaryRows = append(summaryRows, []interface{}{count.Key, count.Count})
	}
	if err := writeSheet(f, SummarySheet, summaryRows); err != nil {
		return nil, err
	}

	checkRows := [][]interface{}{{"Check", "Count"}}
	for _, count := range summary.ByCheck.MostCommon(options.topChecks()) {
		checkRows = append(checkRows, []interface{}{count.Key, count.Count})
	}
	if err := writeSheet(f, TopChecksSheet, checkRows); err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(tableColumns))
	for _, column := range tableColumns {
		header = append(header, column)
	}
	findingRows := [][]interface{}{header}
	for _, row := range BuildRows(summary.Findings) {
		findingRows = append(findingRows, []interface{}{
			row.Index,
			row.Check,
			row.Severity,
			row.File,
			row.Lines,
			row.ShortDescription,
			row.Recommendation,
		})
	}
	if err := writeSheet(f, FindingsSheet, findingRows); err != nil {
		return nil, err
	}

	fileRows := [][]interface{}{{"Report", "Findings"}}
	for _, file := range summary.PerFile {
		fileRows = append(fileRows, []interface{}{file.Source, len(file.Findings)})
	}
	if err := writeSheet(f, FilesSheet, fileRows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheetName string, rows [][]interface{}) error {
	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("failed to create sheet '%s': %w", sheetName, err)
		}
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cellAddress, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to get cell address for row %d in sheet '%s': %w", i+1, sheetName, err)
		}
		values := row
		if err := f.SetSheetRow(sheetName, cellAddress, &values); err != nil {
			return fmt.Errorf("failed to set data for row %d in sheet '%s': %w", i+1, sheetName, err)
		}
	}
	return nil
}
