package processors

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/recommendations.yaml
var recommendationsFS embed.FS

const recommendationsFile = "data/recommendations.yaml"

type Recommendation struct {
	Fragment string `yaml:"fragment"`
	Action   string `yaml:"action"`
}

// RecommendationTable maps check-name fragments to remediation text. It is
// read-only once loaded.
type RecommendationTable struct {
	Recommendations []Recommendation `yaml:"recommendations"`
	Default         string           `yaml:"default"`
}

var defaultRecommendations = mustLoadRecommendations(recommendationsFS)

// DefaultRecommendations returns the table bundled with the binary.
func DefaultRecommendations() *RecommendationTable {
	return defaultRecommendations
}

func LoadRecommendations(f fs.FS, name string) (*RecommendationTable, error) {
	content, err := fs.ReadFile(f, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read recommendations %s: %w", name, err)
	}

	var table RecommendationTable
	if err := yaml.Unmarshal(content, &table); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations %s: %w", name, err)
	}
	if table.Default == "" {
		return nil, fmt.Errorf("recommendations %s has no default action", name)
	}
	for i := range table.Recommendations {
		table.Recommendations[i].Fragment = strings.ToLower(table.Recommendations[i].Fragment)
	}
	return &table, nil
}

func mustLoadRecommendations(f fs.FS) *RecommendationTable {
	table, err := LoadRecommendations(f, recommendationsFile)
	if err != nil {
		panic(err)
	}
	return table
}

// Recommend returns the action of the first fragment contained in check,
// compared case-insensitively, or the default action.
func (t *RecommendationTable) Recommend(check string) string {
	key := strings.ToLower(check)
	for _, recommendation := range t.Recommendations {
		if recommendation.Fragment != "" && strings.Contains(key, recommendation.Fragment) {
			return recommendation.Action
		}
	}
	return t.Default
}
