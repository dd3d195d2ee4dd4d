package core

import "strings"

const UnknownSeverityRank = 4

var severityRanks = map[string]int{
	"high":          0,
	"critical":      0,
	"medium":        1,
	"low":           2,
	"informational": 3,
}

// SeverityRank orders severities for display, most severe first. Lookup is
// case-insensitive; anything unrecognised, "unknown" included, ranks last.
func SeverityRank(severity string) int {
	if rank, ok := severityRanks[strings.ToLower(strings.TrimSpace(severity))]; ok {
		return rank
	}
	return UnknownSeverityRank
}
