package core

// FindingSet holds the findings read from one report file.
type FindingSet struct {
	Source   string    `json:"source"`
	Findings []Finding `json:"findings"`
}

type FindingRepository interface {
	Store(set FindingSet) error
	NewIterator() FindingIterator
}

type FindingIterator interface {
	HasNext() bool
	Next() (FindingSet, error)
	Reset() error
}
