package core

// RawDocument is the decoded JSON of a single report file. Its shape varies
// between scanner versions, so it is kept as a generic map.
type RawDocument map[string]interface{}

// RawFinding is one detector entry exactly as it appears in a report.
type RawFinding map[string]interface{}

// LocationRef is a resolved source location of a finding element.
type LocationRef struct {
	Filename string `json:"filename,omitempty"`
	Lines    string `json:"lines,omitempty"`
}

type Finding struct {
	Check            string        `json:"check"`
	Severity         string        `json:"severity"`
	Confidence       string        `json:"confidence,omitempty"`
	Description      string        `json:"description,omitempty"`
	ShortDescription string        `json:"short_description,omitempty"`
	File             string        `json:"file,omitempty"`
	Lines            string        `json:"lines,omitempty"`
	Recommendation   string        `json:"recommendation,omitempty"`
	Elements         []LocationRef `json:"elements,omitempty"`
	Source           string        `json:"source"`
	Raw              RawFinding    `json:"-"`
}

// DisplayFile returns the finding's file, or the report it was read from
// when no element carried a filename.
func (f Finding) DisplayFile() string {
	if f.File != "" {
		return f.File
	}
	return f.Source
}
