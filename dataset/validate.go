package dataset

import "fmt"

// Validate applies the referential-integrity and shape invariants to a
// snapshot and returns every violation found. It never short-circuits:
// one call surfaces all problems. An empty result means the snapshot
// is sound. The bootstrap treats any non-empty result as fatal; it may
// also be re-run after a reload as a health check.
func Validate(snap *Snapshot) []string {
	var errs []string

	if snap.Business.StoreName == "" {
		errs = append(errs, "business.storeName is required")
	}
	if snap.Pages.Pages == nil {
		errs = append(errs, "pages.pages must be an array")
	}
	if snap.Products.Products == nil {
		errs = append(errs, "products.products must be an array")
	}
	if snap.Shipping.Methods == nil {
		errs = append(errs, "shipping.methods must be an array")
	}
	if snap.Faq.Items == nil {
		errs = append(errs, "faq.items must be an array")
	}
	if snap.Recipes.Recipes == nil {
		errs = append(errs, "recipes.recipes must be an array")
	}
	if snap.Intents.Intents == nil {
		errs = append(errs, "intents.intents must be an array")
	}

	productIDs := make(map[string]struct{}, len(snap.Products.Products))
	for _, p := range snap.Products.Products {
		productIDs[p.ID] = struct{}{}
	}
	pageIDs := make(map[string]struct{}, len(snap.Pages.Pages))
	for _, p := range snap.Pages.Pages {
		pageIDs[p.ID] = struct{}{}
	}
	recipeIDs := make(map[string]struct{}, len(snap.Recipes.Recipes))
	for _, r := range snap.Recipes.Recipes {
		recipeIDs[r.ID] = struct{}{}
	}

	for _, rule := range snap.Products.CrossSellRules {
		for _, id := range rule.SuggestProductIDs {
			if _, ok := productIDs[id]; !ok {
				errs = append(errs, fmt.Sprintf("cross_sell_rules references missing product id: %s", id))
			}
		}
	}

	for _, page := range snap.Pages.Pages {
		for _, id := range page.TopProducts {
			if _, ok := productIDs[id]; !ok {
				errs = append(errs, fmt.Sprintf("pages top_products references missing product id: %s", id))
			}
		}
	}

	for _, route := range snap.Pages.RoutingKeywords {
		if _, ok := pageIDs[route.PageID]; !ok {
			errs = append(errs, fmt.Sprintf("routing_keywords references missing page id: %s", route.PageID))
		}
	}

	for _, intent := range snap.Intents.Intents {
		for _, id := range intent.Recommend.ProductIDs {
			if _, ok := productIDs[id]; !ok {
				errs = append(errs, fmt.Sprintf("intents recommend references missing product id: %s", id))
			}
		}
		for _, id := range intent.Recommend.RecipeIDs {
			if _, ok := recipeIDs[id]; !ok {
				errs = append(errs, fmt.Sprintf("intents recommend references missing recipe id: %s", id))
			}
		}
	}

	for _, recipe := range snap.Recipes.Recipes {
		for _, id := range recipe.RecommendedProductIDs {
			if _, ok := productIDs[id]; !ok {
				errs = append(errs, fmt.Sprintf("recipes references missing product id: %s", id))
			}
		}
	}

	return errs
}
