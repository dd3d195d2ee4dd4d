package processors

import (
	"github.com/reaandrew/slitherreport/core"
)

// InitializeProcessors creates and returns the report processors used by
// both the summary and the gate.
func InitializeProcessors() []core.ReportProcessor {
	var processors []core.ReportProcessor

	processors = append(processors, NewSlitherProcessor())

	return processors
}
