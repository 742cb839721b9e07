package tools

import (
	"sort"
	"strings"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/textnorm"
)

// SearchFilters narrows a product search. Tags are conjunctive: every
// listed tag must be present on the product. UseCases are disjunctive:
// at least one must match.
type SearchFilters struct {
	Tags     []string `json:"tags,omitempty"`
	UseCases []string `json:"use_cases,omitempty"`
}

// SearchProducts ranks the catalog against a free-text query plus
// structured filters. Each query token found as a substring of the
// product's normalized name/summary/tags/use-cases haystack scores one
// point; passing a given filter scores one more. Products failing a
// given filter are excluded outright, and products scoring zero are
// dropped. The result is sorted by descending score; ties keep the
// dataset's original order. No result cap.
func SearchProducts(query string, filters SearchFilters, snap *dataset.Snapshot) []dataset.Product {
	tokens := textnorm.Tokens(query)

	type scored struct {
		product dataset.Product
		score   int
	}
	var results []scored

	for _, product := range snap.Products.Products {
		score := 0
		haystack := productHaystack(product)

		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				score++
			}
		}

		if len(filters.Tags) > 0 {
			if !hasAllNormalized(product.Tags, filters.Tags) {
				continue
			}
			score++
		}

		if len(filters.UseCases) > 0 {
			if !hasAnyNormalized(product.UseCases, filters.UseCases) {
				continue
			}
			score++
		}

		if score > 0 {
			results = append(results, scored{product: product, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	products := make([]dataset.Product, len(results))
	for i, r := range results {
		products[i] = r.product
	}
	return products
}

// GetProduct looks a product up by exact id.
func GetProduct(id string, snap *dataset.Snapshot) (dataset.Product, bool) {
	return snap.ProductByID(id)
}

func productHaystack(p dataset.Product) string {
	parts := make([]string, 0, 2+len(p.Tags)+len(p.UseCases))
	parts = append(parts, p.Name, p.Summary)
	parts = append(parts, p.Tags...)
	parts = append(parts, p.UseCases...)
	return textnorm.Normalize(strings.Join(parts, " "))
}

// hasAllNormalized reports whether every want value appears in have,
// comparing normalized forms.
func hasAllNormalized(have, want []string) bool {
	set := normalizedSet(have)
	for _, w := range want {
		if _, ok := set[textnorm.Normalize(w)]; !ok {
			return false
		}
	}
	return true
}

// hasAnyNormalized reports whether at least one want value appears in
// have, comparing normalized forms.
func hasAnyNormalized(have, want []string) bool {
	set := normalizedSet(have)
	for _, w := range want {
		if _, ok := set[textnorm.Normalize(w)]; ok {
			return true
		}
	}
	return false
}

func normalizedSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[textnorm.Normalize(v)] = struct{}{}
	}
	return set
}
