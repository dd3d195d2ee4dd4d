package core

// ReportProcessor turns a parsed report into normalized findings.
type ReportProcessor interface {
	Supports(report ReportFile) bool

	Process(report ReportFile) ([]Finding, error)
}
