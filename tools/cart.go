package tools

import (
	"strings"

	"github.com/pantrysmith/storecore/dataset"
)

// CartItem is one line of the shopper's cart, referenced by product id.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

// Suggestion is a cross-sell candidate with the rule's reason.
type Suggestion struct {
	Product dataset.Product `json:"product"`
	Reason  string          `json:"reason"`
}

// RecommendFromCart suggests cross-sell products for the current cart.
// The tag sets of all resolvable cart products are pooled
// (case-insensitively); every rule whose required tags are all present
// emits one suggestion per resolvable suggested id, carrying the
// rule's reason. Cart ids and suggestion ids that do not resolve are
// skipped. A product may appear more than once when several rules
// match — de-duplication is the caller's concern (see UniqueByID). An
// empty cart yields an empty result.
func RecommendFromCart(items []CartItem, snap *dataset.Snapshot) []Suggestion {
	if len(items) == 0 {
		return []Suggestion{}
	}

	cartTags := make(map[string]struct{})
	for _, item := range items {
		product, ok := snap.ProductByID(item.ProductID)
		if !ok {
			continue
		}
		for _, tag := range product.Tags {
			cartTags[strings.ToLower(tag)] = struct{}{}
		}
	}

	suggestions := []Suggestion{}
	for _, rule := range snap.Products.CrossSellRules {
		if !cartHasAll(cartTags, rule.IfCartHasTags) {
			continue
		}
		for _, id := range rule.SuggestProductIDs {
			if product, ok := snap.ProductByID(id); ok {
				suggestions = append(suggestions, Suggestion{Product: product, Reason: rule.Reason})
			}
		}
	}
	return suggestions
}

func cartHasAll(cartTags map[string]struct{}, required []string) bool {
	for _, tag := range required {
		if _, ok := cartTags[strings.ToLower(tag)]; !ok {
			return false
		}
	}
	return true
}

// UniqueByID drops later duplicates of the same product id, keeping
// first occurrences in order. Items with an empty id are dropped.
func UniqueByID(products []dataset.Product) []dataset.Product {
	seen := make(map[string]struct{}, len(products))
	result := make([]dataset.Product, 0, len(products))
	for _, p := range products {
		if p.ID == "" {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		result = append(result, p)
	}
	return result
}
