// Package matcher scores free-text problem descriptions against playbooks and
// picks the best one.
//
// Scoring is presence based: every keyword found in the text adds
// KeywordWeight, and the symptom terms "error" and "fail" add HeuristicWeight
// each. A playbook is only reported as a match when its score reaches
// MinScore.
package matcher

import (
	"sort"
	"strings"

	"github.com/triageagent/triage-cli/playbook"
)

const (
	KeywordWeight   = 2
	HeuristicWeight = 1
	MinScore        = 2
)

// Result is the outcome of a match. The zero value is NoMatch.
type Result struct {
	Record *playbook.Record
	Score  int
}

var NoMatch = Result{}

func (r Result) Matched() bool {
	return r.Record != nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Score computes the relevance of record for text. It never returns a
// negative value.
func Score(record playbook.Record, text string) int {
	t := normalize(text)

	var score int
	for _, k := range record.Keywords {
		if strings.Contains(t, normalize(k)) {
			score += KeywordWeight
		}
	}

	if strings.Contains(t, "error") {
		score += HeuristicWeight
	}
	// "failed" contains "fail"
	if strings.Contains(t, "fail") {
		score += HeuristicWeight
	}
	return score
}

// FindBestMatch returns the highest scoring playbook of category.
// On ties the playbook listed first in the catalog wins.
func FindBestMatch(catalog playbook.Catalog, category, text string) Result {
	records := catalog.Records(category)

	best := NoMatch
	for i := range records {
		s := Score(records[i], text)
		// strict comparison keeps the earliest candidate on ties
		if s > best.Score {
			best = Result{Record: &records[i], Score: s}
		}
	}

	if best.Score < MinScore {
		return NoMatch
	}
	return best
}

// Rank scores every playbook of category, highest first. Candidates with equal
// scores keep their catalog order. Rank does not apply MinScore.
func Rank(catalog playbook.Catalog, category, text string) []Result {
	records := catalog.Records(category)

	results := make([]Result, 0, len(records))
	for i := range records {
		results = append(results, Result{Record: &records[i], Score: Score(records[i], text)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
