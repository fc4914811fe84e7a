package match

import (
	"sort"
	"strings"
)

// MinSuggestionScore is the similarity a known value needs to be offered.
const MinSuggestionScore = 0.5

// Candidate is a known value scored against an input.
type Candidate struct {
	Value string
	Score float64
}

// CandidateList is a list of candidates sortable by descending score.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by score, then alphabetically for stable output.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Value < c[j].Value
}

// Top returns at most n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if len(c) <= n {
		return c
	}

	return c[:n]
}

// Values returns the candidate values in order.
func (c CandidateList) Values() []string {
	out := make([]string, len(c))
	for i, cand := range c {
		out[i] = cand.Value
	}

	return out
}

// Rank scores every known value against input, keeping those at or above
// MinSuggestionScore, best first. Comparison ignores case.
func Rank(input string, known []string) CandidateList {
	in := strings.ToLower(input)

	var list CandidateList

	for _, k := range known {
		score := Similarity(in, strings.ToLower(k))
		if score >= MinSuggestionScore {
			list = append(list, Candidate{Value: k, Score: score})
		}
	}

	sort.Sort(list)

	return list
}

// Suggest returns up to n known values resembling input.
func Suggest(input string, known []string, n int) []string {
	return Rank(input, known).Top(n).Values()
}
