package processors

import "github.com/reaandrew/slitherreport/core"

// detectorSource looks for detector entries in one known report layout.
type detectorSource func(document map[string]interface{}) []interface{}

// detectorSources lists the layouts Slither has used across versions, most
// authoritative first.
var detectorSources = []detectorSource{
	resultsDetectors,
	printerDetectors,
	topLevelDetectors,
}

// ExtractDetectors returns the detector entries of a report. The first
// source holding a non-empty list wins; later sources are never consulted
// once one has matched. Entries that are not JSON objects are dropped.
func ExtractDetectors(document core.RawDocument) []core.RawFinding {
	for _, source := range detectorSources {
		entries := source(document)
		if len(entries) == 0 {
			continue
		}
		detectors := make([]core.RawFinding, 0, len(entries))
		for _, entry := range entries {
			if detector, ok := asMap(entry); ok {
				detectors = append(detectors, detector)
			}
		}
		return detectors
	}
	return []core.RawFinding{}
}

func resultsDetectors(document map[string]interface{}) []interface{} {
	results, _ := asMap(document["results"])
	return asList(results["detectors"])
}

func printerDetectors(document map[string]interface{}) []interface{} {
	results, _ := asMap(document["results"])
	for _, entry := range asList(results["printers"]) {
		printer, ok := asMap(entry)
		if !ok {
			continue
		}
		fields, _ := asMap(printer["additional_fields"])
		if detectors := asList(fields["detectors"]); len(detectors) > 0 {
			return detectors
		}
	}
	return nil
}

func topLevelDetectors(document map[string]interface{}) []interface{} {
	return asList(document["detectors"])
}
