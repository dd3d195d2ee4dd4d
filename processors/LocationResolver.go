package processors

import (
	"fmt"
	"strings"

	"github.com/reaandrew/slitherreport/core"
)

var (
	filenameKeys              = []string{"filename", "path"}
	sourceMappingFilenameKeys = []string{"filename", "filename_relative", "filename_short", "filename_absolute"}
)

// lineFormatter renders one encoding of a line range. The boolean reports
// whether the encoding was present, even if it rendered to nothing.
type lineFormatter func(element map[string]interface{}) (string, bool)

var lineFormatters = []lineFormatter{
	singleLine,
	startEndLines,
	lineList,
	sourceMappingStartEnd,
	sourceMappingLineSpan,
}

// ResolveLocation extracts the filename and line range of a finding element.
// Anything that is not an object resolves to an empty location.
func ResolveLocation(element interface{}) core.LocationRef {
	elem, ok := asMap(element)
	if !ok {
		return core.LocationRef{}
	}

	filename := FirstNonEmpty(elem, filenameKeys...)
	if filename == "" {
		sourceMapping, _ := asMap(elem["source_mapping"])
		filename = FirstNonEmpty(sourceMapping, sourceMappingFilenameKeys...)
	}

	return core.LocationRef{
		Filename: filename,
		Lines:    FormatLines(elem),
	}
}

// FormatLines renders the first line encoding found on element:
// "L5", "L10-L12", "3,4,5", or "" when none is present.
func FormatLines(element map[string]interface{}) string {
	for _, format := range lineFormatters {
		if lines, ok := format(element); ok {
			return lines
		}
	}
	return ""
}

func singleLine(element map[string]interface{}) (string, bool) {
	line := FirstNonEmpty(element, "line")
	if line == "" {
		return "", false
	}
	return "L" + line, true
}

func startEndLines(element map[string]interface{}) (string, bool) {
	return lineSpan(element)
}

func lineList(element map[string]interface{}) (string, bool) {
	list, ok := element["lines"].([]interface{})
	if !ok {
		return "", false
	}
	return strings.Join(scalarStrings(list), ","), true
}

func sourceMappingStartEnd(element map[string]interface{}) (string, bool) {
	sourceMapping, _ := asMap(element["source_mapping"])
	return lineSpan(sourceMapping)
}

// sourceMappingLineSpan covers Slither's own layout, which only lists the
// covered lines under source_mapping.
func sourceMappingLineSpan(element map[string]interface{}) (string, bool) {
	sourceMapping, _ := asMap(element["source_mapping"])
	lines := scalarStrings(asList(sourceMapping["lines"]))
	switch len(lines) {
	case 0:
		return "", false
	case 1:
		return "L" + lines[0], true
	default:
		return fmt.Sprintf("L%s-L%s", lines[0], lines[len(lines)-1]), true
	}
}

func lineSpan(record map[string]interface{}) (string, bool) {
	start := FirstNonEmpty(record, "start_line")
	end := FirstNonEmpty(record, "end_line")
	if start == "" || end == "" {
		return "", false
	}
	return fmt.Sprintf("L%s-L%s", start, end), true
}

func scalarStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := scalarString(value); ok {
			out = append(out, s)
		}
	}
	return out
}
