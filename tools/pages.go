package tools

import (
	"strings"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/textnorm"
)

// RouteToPage resolves user text to a content page via the routing
// keywords. Every keyword found as a substring of the normalized query
// is a candidate scored by its character length, and the longest one
// wins — specificity beats position. Equal lengths resolve to the
// earliest entry (strict greater-than). ok is false when nothing
// matched or the winning page id does not resolve.
func RouteToPage(query string, snap *dataset.Snapshot) (dataset.Page, bool) {
	normalized := textnorm.Normalize(query)

	bestPageID := ""
	bestScore := 0

	for _, route := range snap.Pages.RoutingKeywords {
		keyword := textnorm.Normalize(route.Keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, keyword) {
			if score := len(keyword); score > bestScore {
				bestScore = score
				bestPageID = route.PageID
			}
		}
	}

	if bestPageID == "" {
		return dataset.Page{}, false
	}
	return snap.PageByID(bestPageID)
}
