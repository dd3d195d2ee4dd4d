package gates

import (
	"fmt"
	"strings"

	"github.com/reaandrew/slitherreport/core"
)

// Violation is a finding that fails the gate.
type Violation struct {
	Source     string
	Check      string
	Severity   string
	Confidence string
}

func (v Violation) String() string {
	return fmt.Sprintf("High severity + High confidence found in %s -> %s", v.Source, v.Check)
}

type Result struct {
	Violations []Violation
	Evaluated  int
}

func (r Result) Passed() bool {
	return len(r.Violations) == 0
}

// IsHighSeverityHighConfidence ignores case and surrounding whitespace on
// both fields. Critical does not count as High here.
func IsHighSeverityHighConfidence(finding core.Finding) bool {
	return isHigh(finding.Severity) && isHigh(finding.Confidence)
}

func isHigh(value string) bool {
	return strings.ToLower(strings.TrimSpace(value)) == "high"
}

// Evaluate checks every finding of repository and reports all violations in
// load order, not just the first.
func Evaluate(repository core.FindingRepository) (Result, error) {
	var result Result
	iterator := repository.NewIterator()
	for iterator.HasNext() {
		set, err := iterator.Next()
		if err != nil {
			return Result{}, fmt.Errorf("failed to retrieve next finding set: %w", err)
		}
		for _, finding := range set.Findings {
			result.Evaluated++
			if !IsHighSeverityHighConfidence(finding) {
				continue
			}
			result.Violations = append(result.Violations, Violation{
				Source:     set.Source,
				Check:      finding.Check,
				Severity:   finding.Severity,
				Confidence: finding.Confidence,
			})
		}
	}
	return result, nil
}
