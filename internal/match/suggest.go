package match

import (
	"sort"
)

// DefaultThreshold is the minimum Similarity for a suggestion.
const DefaultThreshold = 0.5

// Candidate is a scored name.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name, best first. Ties keep the
// order of candidates.
func Rank(name string, candidates []string) []Candidate {
	ranked := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Candidate{Name: c, Score: Similarity(name, c)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Suggest returns up to limit candidate names scoring at least threshold.
func Suggest(name string, candidates []string, limit int, threshold float64) []string {
	var out []string

	for _, c := range Rank(name, candidates) {
		if len(out) == limit || c.Score < threshold {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
