package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Status filters cycle through a fixed order; the empty string means no
// filter.
var (
	stepFilterOrder = []string{"", "pending", "running", "needs_qa", "failed"}
	jobFilterOrder  = []string{"", "queued", "started", "failed", "finished"}
)

// NextStepFilter returns the step status filter following current.
func NextStepFilter(current string) string { return nextInCycle(stepFilterOrder, current) }

// NextJobFilter returns the queue job status filter following current.
func NextJobFilter(current string) string { return nextInCycle(jobFilterOrder, current) }

func nextInCycle(order []string, current string) string {
	idx := 0
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	return order[(idx+1)%len(order)]
}

// FilterLabel renders a filter value for status lines, mapping the empty
// filter to "all".
func FilterLabel(v string) string {
	if v == "" {
		return "all"
	}
	return v
}

// BestMatchIndex returns the index of the label best matching the query, or
// -1 when nothing matches. Exact folds win over prefixes, prefixes over
// substrings, and substrings over fuzzy rank distance.
func BestMatchIndex(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return -1
	}
	return best.OriginalIndex
}
