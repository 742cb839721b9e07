package tools

import (
	"strings"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/textnorm"
)

// FaqAnswer returns the FAQ item whose question and topics overlap the
// query's tokens the most. The comparison is strictly greater-than, so
// the first item to reach the running maximum wins ties. ok is false
// when no item scores above zero.
func FaqAnswer(query string, snap *dataset.Snapshot) (dataset.FaqItem, bool) {
	tokens := textnorm.Tokens(query)

	var best dataset.FaqItem
	bestScore := 0

	for _, item := range snap.Faq.Items {
		parts := make([]string, 0, 1+len(item.Topics))
		parts = append(parts, item.Question)
		parts = append(parts, item.Topics...)
		haystack := textnorm.Normalize(strings.Join(parts, " "))

		score := 0
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = item
		}
	}

	if bestScore == 0 {
		return dataset.FaqItem{}, false
	}
	return best, true
}
