package tools

import (
	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/textnorm"
)

// IntentMatch bundles a matched intent with its resolved
// recommendations.
type IntentMatch struct {
	Intent   dataset.Intent    `json:"intent"`
	Products []dataset.Product `json:"products"`
	Recipes  []dataset.Recipe  `json:"recipes"`
}

// RecommendForIntent scans the intents in dataset order and returns
// the first one with a match phrase present in the normalized input —
// first match, not best match. Recommended ids that fail to resolve
// are dropped silently (validation guarantees they resolve for a sound
// snapshot; misses can only come from an unvalidated one). ok is false
// when no intent's phrases match.
func RecommendForIntent(text string, snap *dataset.Snapshot) (IntentMatch, bool) {
	var match *dataset.Intent
	for i := range snap.Intents.Intents {
		intent := &snap.Intents.Intents[i]
		if textnorm.ContainsAny(text, intent.MatchPhrases) {
			match = intent
			break
		}
	}
	if match == nil {
		return IntentMatch{}, false
	}

	products := make([]dataset.Product, 0, len(match.Recommend.ProductIDs))
	for _, id := range match.Recommend.ProductIDs {
		if p, ok := snap.ProductByID(id); ok {
			products = append(products, p)
		}
	}
	recipes := make([]dataset.Recipe, 0, len(match.Recommend.RecipeIDs))
	for _, id := range match.Recommend.RecipeIDs {
		if r, ok := snap.RecipeByID(id); ok {
			recipes = append(recipes, r)
		}
	}

	return IntentMatch{Intent: *match, Products: products, Recipes: recipes}, true
}
