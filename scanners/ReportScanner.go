package scanners

import (
	"fmt"

	"github.com/reaandrew/slitherreport/core"
	log "github.com/sirupsen/logrus"
)

// ReportScanner loads the reports of a directory, runs them through the
// processors and stores one finding set per report.
type ReportScanner struct {
	loader            *ReportDirectoryScanner
	processors        []core.ReportProcessor
	findingRepository core.FindingRepository
}

func NewReportScanner(loader *ReportDirectoryScanner,
	processors []core.ReportProcessor,
	findingRepository core.FindingRepository) *ReportScanner {
	return &ReportScanner{
		loader:            loader,
		processors:        processors,
		findingRepository: findingRepository,
	}
}

// Scan returns the number of reports loaded. The error wraps
// ErrReportDirNotFound when directory does not exist.
func (rs *ReportScanner) Scan(directory string) (int, error) {
	reports, err := rs.loader.Scan(directory)
	if err != nil {
		return 0, err
	}

	for _, report := range reports {
		var findings []core.Finding
		supported := false
		for _, processor := range rs.processors {
			if !processor.Supports(report) {
				continue
			}
			supported = true
			results, err := processor.Process(report)
			if err != nil {
				log.Warnf("Skipping %s: %v", report.Name, err)
				continue
			}
			findings = append(findings, results...)
		}
		if !supported {
			log.Debugf("No detector results in %s", report.Name)
		}

		if err := rs.findingRepository.Store(core.FindingSet{Source: report.Name, Findings: findings}); err != nil {
			return 0, fmt.Errorf("failed to store findings of %s: %w", report.Name, err)
		}
	}

	log.Infof("Loaded %d report(s) from %s", len(reports), directory)
	return len(reports), nil
}
