package processors

import (
	"github.com/reaandrew/slitherreport/core"
	log "github.com/sirupsen/logrus"
)

// SlitherProcessor normalizes every detector entry of a Slither JSON report.
type SlitherProcessor struct {
	Normalizer FindingNormalizer
}

func NewSlitherProcessor() SlitherProcessor {
	return SlitherProcessor{Normalizer: NewFindingNormalizer()}
}

// Supports reports whether the document has any of the keys Slither places
// detectors under.
func (p SlitherProcessor) Supports(report core.ReportFile) bool {
	if _, ok := report.Document["results"]; ok {
		return true
	}
	_, ok := report.Document["detectors"]
	return ok
}

func (p SlitherProcessor) Process(report core.ReportFile) ([]core.Finding, error) {
	detectors := ExtractDetectors(report.Document)
	findings := make([]core.Finding, 0, len(detectors))
	for _, detector := range detectors {
		findings = append(findings, p.Normalizer.Normalize(report.Name, detector))
	}
	log.Debugf("Extracted %d findings from %s", len(findings), report.Name)
	return findings, nil
}
