package repositories

import (
	"testing"

	"github.com/reaandrew/slitherreport/core"
	"github.com/stretchr/testify/assert"
)

func TestStoreKeepsSetsInOrder(t *testing.T) {
	repository := NewInMemoryFindingRepository()

	err := repository.Store(core.FindingSet{
		Source:   "a.json",
		Findings: []core.Finding{{Check: "finding 1"}, {Check: "finding 2"}},
	})
	assert.Nil(t, err)
	err = repository.Store(core.FindingSet{
		Source:   "b.json",
		Findings: []core.Finding{{Check: "finding 3"}},
	})
	assert.Nil(t, err)

	sources := []string{}
	checks := []string{}
	iterator := repository.NewIterator()
	for iterator.HasNext() {
		set, err := iterator.Next()
		assert.Nil(t, err)
		sources = append(sources, set.Source)
		for _, finding := range set.Findings {
			checks = append(checks, finding.Check)
		}
	}

	assert.Equal(t, []string{"a.json", "b.json"}, sources)
	assert.Equal(t, []string{"finding 1", "finding 2", "finding 3"}, checks)
}

func TestNextPastEndReturnsError(t *testing.T) {
	iterator := NewInMemoryFindingRepository().NewIterator()
	assert.False(t, iterator.HasNext())
	_, err := iterator.Next()
	assert.Error(t, err)
}

func TestResetRestartsIteration(t *testing.T) {
	repository := NewInMemoryFindingRepository()
	assert.Nil(t, repository.Store(core.FindingSet{Source: "a.json"}))

	iterator := repository.NewIterator()
	_, err := iterator.Next()
	assert.Nil(t, err)
	assert.False(t, iterator.HasNext())

	assert.Nil(t, iterator.Reset())
	assert.True(t, iterator.HasNext())
}

func TestIteratorIgnoresLaterStores(t *testing.T) {
	repository := NewInMemoryFindingRepository()
	assert.Nil(t, repository.Store(core.FindingSet{Source: "a.json"}))

	iterator := repository.NewIterator()
	assert.Nil(t, repository.Store(core.FindingSet{Source: "b.json"}))

	count := 0
	for iterator.HasNext() {
		_, _ = iterator.Next()
		count++
	}
	assert.Equal(t, 1, count)
}

func TestAllFindings(t *testing.T) {
	repository := NewInMemoryFindingRepository()
	assert.Nil(t, repository.Store(core.FindingSet{Source: "a.json", Findings: []core.Finding{{Check: "x"}}}))
	assert.Nil(t, repository.Store(core.FindingSet{Source: "b.json"}))
	assert.Nil(t, repository.Store(core.FindingSet{Source: "c.json", Findings: []core.Finding{{Check: "y"}, {Check: "z"}}}))

	findings, err := AllFindings(repository)
	assert.Nil(t, err)
	assert.Len(t, findings, 3)
	assert.Equal(t, "z", findings[2].Check)
}
