package processors

import (
	"testing"

	"github.com/reaandrew/slitherreport/core"
	"github.com/stretchr/testify/assert"
)

func TestFormatLines(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{"single line", `{"line": 5}`, "L5"},
		{"start and end", `{"start_line": 10, "end_line": 12}`, "L10-L12"},
		{"line wins over start and end", `{"line": 7, "start_line": 10, "end_line": 12}`, "L7"},
		{"only start", `{"start_line": 10, "lines": [1, 2]}`, "1,2"},
		{"line list", `{"lines": [3, 4, 5]}`, "3,4,5"},
		{"empty line list", `{"lines": [], "source_mapping": {"start_line": 1, "end_line": 2}}`, ""},
		{"source mapping start and end", `{"source_mapping": {"start_line": 20, "end_line": 25}}`, "L20-L25"},
		{"source mapping lines", `{"source_mapping": {"lines": [30, 31, 32]}}`, "L30-L32"},
		{"source mapping single line", `{"source_mapping": {"lines": [30]}}`, "L30"},
		{"string line", `{"line": "9"}`, "L9"},
		{"null line", `{"line": null, "start_line": 1, "end_line": 1}`, "L1-L1"},
		{"nothing", `{"name": "x"}`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatLines(decodeDocument(t, tc.content)))
		})
	}
}

func TestResolveLocation(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected core.LocationRef
	}{
		{
			name:     "filename",
			content:  `{"filename": "contracts/A.sol", "line": 4}`,
			expected: core.LocationRef{Filename: "contracts/A.sol", Lines: "L4"},
		},
		{
			name:     "path",
			content:  `{"path": "contracts/B.sol"}`,
			expected: core.LocationRef{Filename: "contracts/B.sol"},
		},
		{
			name:     "source mapping filename",
			content:  `{"source_mapping": {"filename": "contracts/C.sol", "start_line": 1, "end_line": 3}}`,
			expected: core.LocationRef{Filename: "contracts/C.sol", Lines: "L1-L3"},
		},
		{
			name:     "slither source mapping",
			content:  `{"source_mapping": {"filename_relative": "contracts/D.sol", "filename_absolute": "/abs/contracts/D.sol", "lines": [8, 9]}}`,
			expected: core.LocationRef{Filename: "contracts/D.sol", Lines: "L8-L9"},
		},
		{
			name:     "empty element",
			content:  `{}`,
			expected: core.LocationRef{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveLocation(map[string]interface{}(decodeDocument(t, tc.content))))
		})
	}
}

func TestResolveLocationNonObject(t *testing.T) {
	assert.Equal(t, core.LocationRef{}, ResolveLocation("contracts/A.sol"))
	assert.Equal(t, core.LocationRef{}, ResolveLocation(nil))
}
