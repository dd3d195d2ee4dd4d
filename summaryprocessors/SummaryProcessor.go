package summaryprocessors

import "github.com/reaandrew/slitherreport/core"

type SummaryProcessor interface {
	Process(finding core.Finding)
	Summary() Summary
}
