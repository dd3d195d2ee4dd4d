package repositories

import (
	"fmt"

	"github.com/reaandrew/slitherreport/core"
)

// InMemoryFindingRepository keeps finding sets for the duration of one run.
// Sets are returned in the order they were stored.
type InMemoryFindingRepository struct {
	sets []core.FindingSet
}

func NewInMemoryFindingRepository() core.FindingRepository {
	return &InMemoryFindingRepository{
		sets: make([]core.FindingSet, 0),
	}
}

func (r *InMemoryFindingRepository) Store(set core.FindingSet) error {
	findings := make([]core.Finding, len(set.Findings))
	copy(findings, set.Findings)
	r.sets = append(r.sets, core.FindingSet{Source: set.Source, Findings: findings})
	return nil
}

// NewIterator iterates over a snapshot of the stored sets, so later Store
// calls do not affect an iteration in progress.
func (r *InMemoryFindingRepository) NewIterator() core.FindingIterator {
	snapshot := make([]core.FindingSet, len(r.sets))
	copy(snapshot, r.sets)

	return &InMemoryFindingIterator{
		position: 0,
		sets:     snapshot,
	}
}

type InMemoryFindingIterator struct {
	position int
	sets     []core.FindingSet
}

func (it *InMemoryFindingIterator) HasNext() bool {
	return it.position < len(it.sets)
}

func (it *InMemoryFindingIterator) Next() (core.FindingSet, error) {
	if !it.HasNext() {
		return core.FindingSet{}, fmt.Errorf("no more finding sets")
	}
	set := it.sets[it.position]
	it.position++
	return set, nil
}

func (it *InMemoryFindingIterator) Reset() error {
	it.position = 0
	return nil
}

// AllFindings drains a repository into a single slice, in storage order.
func AllFindings(repository core.FindingRepository) ([]core.Finding, error) {
	var findings []core.Finding
	iterator := repository.NewIterator()
	for iterator.HasNext() {
		set, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve next finding set: %w", err)
		}
		findings = append(findings, set.Findings...)
	}
	return findings, nil
}
