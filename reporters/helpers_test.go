package reporters

import (
	"testing"

	"github.com/reaandrew/slitherreport/core"
	"github.com/reaandrew/slitherreport/repositories"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	data []byte
}

func (m *memoryStorage) Store(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

func repositoryWith(t *testing.T, sets ...core.FindingSet) core.FindingRepository {
	t.Helper()
	repository := repositories.NewInMemoryFindingRepository()
	for _, set := range sets {
		require.NoError(t, repository.Store(set))
	}
	return repository
}

func sampleSets() []core.FindingSet {
	return []core.FindingSet{
		{
			Source: "core.json",
			Findings: []core.Finding{
				{
					Check:            "reentrancy-events",
					Severity:         "Low",
					Confidence:       "Medium",
					ShortDescription: "Reentrancy in Vault.withdraw | events",
					File:             "contracts/Vault.sol",
					Lines:            "L40-L52",
					Recommendation:   "Ensure checks-effects-interactions",
					Source:           "core.json",
				},
				{
					Check:          "arbitrary-send-eth",
					Severity:       "High",
					Confidence:     "High",
					File:           "contracts/Vault.sol",
					Lines:          "L60",
					Recommendation: "Restrict who can trigger transfers",
					Source:         "core.json",
				},
			},
		},
		{Source: "empty.json"},
		{
			Source: "token.json",
			Findings: []core.Finding{
				{
					Check:          "solc-version",
					Severity:       "Informational",
					Recommendation: "Pin | the compiler",
					Source:         "token.json",
				},
				{
					Check:          "unknown",
					Severity:       "unknown",
					Recommendation: "Review this finding",
					Source:         "token.json",
				},
				{
					Check:          "reentrancy-events",
					Severity:       "Low",
					File:           "contracts/Token.sol",
					Recommendation: "Ensure checks-effects-interactions",
					Source:         "token.json",
				},
			},
		},
	}
}
