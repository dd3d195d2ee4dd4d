package reporters

import (
	"fmt"
	"strings"

	"github.com/reaandrew/slitherreport/reportstorage"
)

const DefaultTopChecks = 30

// Options are shared by every report format.
type Options struct {
	ReportsDir string
	OutputPath string
	TopChecks  int
}

func (o Options) topChecks() int {
	if o.TopChecks <= 0 {
		return DefaultTopChecks
	}
	return o.TopChecks
}

func CreateReporter(reportFormat string, options Options) (Reporter, error) {
	storage, err := reportstorage.CreateFileReportStorage(options.OutputPath)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(reportFormat) {
	case "markdown", "md":
		return MarkdownReporter{Options: options, Storage: storage}, nil
	case "xlsx":
		return XlsxReporter{Options: options, Storage: storage}, nil
	case "json":
		return NewDefaultJsonReporter(options, storage), nil
	}

	return nil, fmt.Errorf("unknown report format: %s", reportFormat)
}
