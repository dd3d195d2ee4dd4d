package processors

import (
	"strings"

	"github.com/reaandrew/slitherreport/core"
)

const UnknownValue = "unknown"

// Aliases used by the different Slither JSON layouts, in order of preference.
var (
	CheckKeys       = []string{"check", "name", "title", "detector"}
	SeverityKeys    = []string{"severity", "impact"}
	ConfidenceKeys  = []string{"confidence", "confidence_level", "confidenceString"}
	DescriptionKeys = []string{"description", "info", "message"}
	RecordFileKeys  = []string{"filename", "file"}
)

// FindingNormalizer maps raw detector entries to canonical findings. It never
// fails: missing or malformed fields fall back to "unknown" or "".
type FindingNormalizer struct {
	Recommendations *RecommendationTable
}

func NewFindingNormalizer() FindingNormalizer {
	return FindingNormalizer{Recommendations: DefaultRecommendations()}
}

func (n FindingNormalizer) Normalize(source string, raw core.RawFinding) core.Finding {
	check := FirstNonEmptyOr(raw, UnknownValue, CheckKeys...)
	description := FirstNonEmpty(raw, DescriptionKeys...)
	location, elements := resolveFindingLocation(raw)

	recommendations := n.Recommendations
	if recommendations == nil {
		recommendations = DefaultRecommendations()
	}

	return core.Finding{
		Check:            check,
		Severity:         FirstNonEmptyOr(raw, UnknownValue, SeverityKeys...),
		Confidence:       FirstNonEmpty(raw, ConfidenceKeys...),
		Description:      description,
		ShortDescription: firstLine(description),
		File:             location.Filename,
		Lines:            location.Lines,
		Recommendation:   recommendations.Recommend(check),
		Elements:         elements,
		Source:           source,
		Raw:              raw,
	}
}

// resolveFindingLocation picks the first element that names a file. When no
// element does, the first element is used as is; a finding without any
// element list is located by its own filename/file and line keys.
func resolveFindingLocation(raw core.RawFinding) (core.LocationRef, []core.LocationRef) {
	elements := asList(raw["elements"])
	if len(elements) == 0 {
		elements = asList(raw["locations"])
	}
	if len(elements) == 0 {
		return core.LocationRef{
			Filename: FirstNonEmpty(raw, RecordFileKeys...),
			Lines:    FormatLines(raw),
		}, nil
	}

	refs := make([]core.LocationRef, 0, len(elements))
	for _, element := range elements {
		refs = append(refs, ResolveLocation(element))
	}
	for _, ref := range refs {
		if ref.Filename != "" {
			return ref, refs
		}
	}
	return refs[0], refs
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
