package match

import "sort"

// DefaultThreshold is the minimum normalized similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a known name scored against the name being looked up.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList sorts by score descending, then by name.
type CandidateList []Candidate

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Rank scores every candidate against name. Duplicates are scored once.
func Rank(name string, candidates []string) CandidateList {
	seen := make(map[string]struct{}, len(candidates))
	ranked := make(CandidateList, 0, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}
		ranked = append(ranked, Candidate{Name: c, Score: NormalizedSimilarity(name, c)})
	}

	sort.Sort(ranked)

	return ranked
}

// Suggest returns at most limit candidate names whose similarity to name
// reaches DefaultThreshold, best first.
func Suggest(name string, candidates []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, candidates) {
		if len(out) == limit || c.Score < DefaultThreshold {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
