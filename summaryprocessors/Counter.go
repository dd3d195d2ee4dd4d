package summaryprocessors

import "sort"

type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counter counts occurrences of keys and remembers the order in which each
// key was first seen.
type Counter struct {
	order  []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// MostCommon returns up to n counts, highest first. Equal counts keep
// first-seen order. n <= 0 returns every key.
func (c *Counter) MostCommon(n int) []Count {
	counts := make([]Count, 0, len(c.order))
	for _, key := range c.order {
		counts = append(counts, Count{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n > 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
