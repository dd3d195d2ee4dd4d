package processors

import (
	"encoding/json"
	"testing"

	"github.com/reaandrew/slitherreport/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDocument(t *testing.T, content string) core.RawDocument {
	t.Helper()
	var document core.RawDocument
	require.NoError(t, json.Unmarshal([]byte(content), &document))
	return document
}

func checksOf(detectors []core.RawFinding) []string {
	var checks []string
	for _, detector := range detectors {
		checks = append(checks, FirstNonEmpty(detector, CheckKeys...))
	}
	return checks
}

func TestExtractDetectors(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "results detectors",
			content:  `{"results": {"detectors": [{"check": "a"}, {"check": "b"}]}}`,
			expected: []string{"a", "b"},
		},
		{
			name:    "results detectors win over top level",
			content: `{"results": {"detectors": [{"check": "inner"}]},
				"detectors": [{"check": "outer"}]}`,
			expected: []string{"inner"},
		},
		{
			name:    "results detectors win over printers",
			content: `{"results": {"detectors": [{"check": "inner"}],
				"printers": [{"additional_fields": {"detectors": [{"check": "printer"}]}}]}}`,
			expected: []string{"inner"},
		},
		{
			name:    "first printer with detectors",
			content: `{"results": {"printers": [
				{"additional_fields": {}},
				{"additional_fields": {"detectors": [{"check": "second"}]}},
				{"additional_fields": {"detectors": [{"check": "third"}]}}]},
				"detectors": [{"check": "outer"}]}`,
			expected: []string{"second"},
		},
		{
			name:     "empty results detectors fall through",
			content:  `{"results": {"detectors": []}, "detectors": [{"check": "outer"}]}`,
			expected: []string{"outer"},
		},
		{
			name:     "top level detectors",
			content:  `{"detectors": [{"check": "outer"}]}`,
			expected: []string{"outer"},
		},
		{
			name:     "non object entries are dropped",
			content:  `{"detectors": [1, "x", {"check": "kept"}, null]}`,
			expected: []string{"kept"},
		},
		{
			name:    "malformed results",
			content: `{"results": "oops", "detectors": {"check": "not a list"}}`,
		},
		{
			name:    "nothing",
			content: `{}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detectors := ExtractDetectors(decodeDocument(t, tc.content))
			assert.NotNil(t, detectors)
			assert.Equal(t, tc.expected, checksOf(detectors))
		})
	}
}

func TestExtractDetectorsNilDocument(t *testing.T) {
	assert.Empty(t, ExtractDetectors(nil))
}
