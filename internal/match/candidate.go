package match

import (
	"cmp"
	"slices"
)

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.5

// Candidate is a known name scored against a target.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is ordered by descending score, then by name.
type CandidateList []Candidate

// Rank scores every name against target and sorts the result.
// Duplicate names are scored once.
func Rank(target string, names []string) CandidateList {
	seen := make(map[string]struct{}, len(names))
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		candidates = append(candidates, Candidate{Name: name, Score: NormalizedSimilarity(target, name)})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if there is none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns up to n names from names that look like target, best
// first. An exact match is never suggested.
func Suggest(target string, names []string, n int) []string {
	ranked := Rank(target, names).AboveThreshold(DefaultThreshold)
	ranked = slices.DeleteFunc(ranked, func(c Candidate) bool { return c.Name == target })

	if len(ranked) == 0 {
		return nil
	}

	return ranked.Top(n).Names()
}
