package route

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/routekit/routekit/pattern"
)

const maxSuggestions = 3

// suggestions ranks the table's leading literals against the first
// argument token for "did you mean" output on a NoMatch.
func (t *Table) suggestions(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var words []string
	for _, e := range t.entries {
		for _, seg := range e.Pattern.Positionals() {
			lit, ok := seg.(*pattern.LiteralSegment)
			if !ok {
				break // only leading literals name commands
			}
			if !seen[lit.Text] {
				seen[lit.Text] = true
				words = append(words, lit.Text)
			}
			break
		}
	}
	return rankCandidates(args[0], words, maxSuggestions)
}

// rankCandidates scores candidates against a token: exact prefix matches
// rank above small edit distances, everything past the distance budget is
// dropped, and ties are broken alphabetically so output stays stable.
func rankCandidates(token string, candidates []string, max int) []string {
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		var score float64
		switch {
		case cand == token:
			score = 1.0
		case len(token) >= 2 && strings.HasPrefix(cand, token):
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > distanceLimit(len(cand)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{val: cand, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	if len(results) > max {
		results = results[:max]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.val
	}
	return out
}

// distanceLimit scales the tolerated edit distance with word length so
// short commands do not suggest unrelated short words.
func distanceLimit(length int) int {
	switch {
	case length <= 3:
		return 1
	case length <= 6:
		return 2
	default:
		return 3
	}
}
