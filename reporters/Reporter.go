package reporters

import "github.com/reaandrew/slitherreport/core"

type Reporter interface {
	Report(repository core.FindingRepository) error
}
