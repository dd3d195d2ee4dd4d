package core

// ReportFile is a parsed report together with the name it was loaded from.
type ReportFile struct {
	Name     string
	Path     string
	Document RawDocument
}
