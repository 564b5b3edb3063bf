package analyzer

import "sort"

type tokenCount struct {
	token string
	count int
}

// rankByFrequency returns the n most frequent distinct tokens in descending
// count order. The candidate list is built in first-occurrence order and the
// sort is stable, so ties resolve by encounter order and identical input
// always produces identical output.
func rankByFrequency(tokens []string, n int) []string {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranked := make([]tokenCount, len(order))
	for i, tok := range order {
		ranked[i] = tokenCount{token: tok, count: counts[tok]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]string, n)
	for i := 0; i < n; i++ {
		top[i] = ranked[i].token
	}
	return top
}
