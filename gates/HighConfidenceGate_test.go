package gates

import (
	"testing"

	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHighSeverityHighConfidence(t *testing.T) {
	testCases := []struct {
		name       string
		severity   string
		confidence string
		expected   bool
	}{
		{name: "high high", severity: "High", confidence: "High", expected: true},
		{name: "mixed case and spaces", severity: " HIGH ", confidence: "high\n", expected: true},
		{name: "medium confidence", severity: "High", confidence: "Medium", expected: false},
		{name: "low severity", severity: "Low", confidence: "High", expected: false},
		{name: "critical is not high", severity: "Critical", confidence: "High", expected: false},
		{name: "missing confidence", severity: "High", confidence: "", expected: false},
		{name: "unknown severity", severity: "unknown", confidence: "High", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			finding := core.Finding{Severity: tc.severity, Confidence: tc.confidence}
			assert.Equal(t, tc.expected, IsHighSeverityHighConfidence(finding))
		})
	}
}

func TestEvaluateCollectsEveryViolation(t *testing.T) {
	repository := repositories.NewInMemoryFindingRepository()
	require.NoError(t, repository.Store(core.FindingSet{
		Source: "a.json",
		Findings: []core.Finding{
			{Check: "reentrancy-eth", Severity: "High", Confidence: "High"},
			{Check: "timestamp", Severity: "Low", Confidence: "Medium"},
		},
	}))
	require.NoError(t, repository.Store(core.FindingSet{Source: "empty.json"}))
	require.NoError(t, repository.Store(core.FindingSet{
		Source:   "b.json",
		Findings: []core.Finding{{Check: "suicidal", Severity: "high", Confidence: "HIGH"}},
	}))

	result, err := Evaluate(repository)
	require.NoError(t, err)

	assert.False(t, result.Passed())
	assert.Equal(t, 3, result.Evaluated)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, "High severity + High confidence found in a.json -> reentrancy-eth", result.Violations[0].String())
	assert.Equal(t, "High severity + High confidence found in b.json -> suicidal", result.Violations[1].String())
}

func TestEvaluatePasses(t *testing.T) {
	repository := repositories.NewInMemoryFindingRepository()
	require.NoError(t, repository.Store(core.FindingSet{
		Source:   "a.json",
		Findings: []core.Finding{{Check: "solc-version", Severity: "Informational", Confidence: "High"}},
	}))

	result, err := Evaluate(repository)
	require.NoError(t, err)
	assert.True(t, result.Passed())
	assert.Empty(t, result.Violations)

	result, err = Evaluate(repositories.NewInMemoryFindingRepository())
	require.NoError(t, err)
	assert.True(t, result.Passed())
	assert.Zero(t, result.Evaluated)
}
