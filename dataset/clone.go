package dataset

import (
	"maps"
	"slices"
)

// clone returns a deep copy of the snapshot. Every slice and map is
// reallocated so the copy shares no mutable state with the original;
// the override path relies on this to keep the cached Snapshot
// untouchable through a derived one.
func (s *Snapshot) clone() *Snapshot {
	next := &Snapshot{
		Business: s.Business,
		Pages:    s.Pages,
		Products: s.Products,
		Shipping: s.Shipping,
		Faq:      s.Faq,
		Recipes:  s.Recipes,
		Intents:  s.Intents,
	}

	next.Business.Support = maps.Clone(s.Business.Support)

	next.Pages.Pages = make([]Page, len(s.Pages.Pages))
	for i, p := range s.Pages.Pages {
		p.TopProducts = slices.Clone(p.TopProducts)
		p.SupportChannels = maps.Clone(p.SupportChannels)
		next.Pages.Pages[i] = p
	}
	next.Pages.RoutingKeywords = slices.Clone(s.Pages.RoutingKeywords)

	next.Products.Products = make([]Product, len(s.Products.Products))
	for i, p := range s.Products.Products {
		p.Features = slices.Clone(p.Features)
		p.Tags = slices.Clone(p.Tags)
		p.UseCases = slices.Clone(p.UseCases)
		p.Attributes = maps.Clone(p.Attributes)
		if p.Availability != nil {
			avail := *p.Availability
			p.Availability = &avail
		}
		next.Products.Products[i] = p
	}
	next.Products.CrossSellRules = make([]CrossSellRule, len(s.Products.CrossSellRules))
	for i, r := range s.Products.CrossSellRules {
		r.IfCartHasTags = slices.Clone(r.IfCartHasTags)
		r.SuggestProductIDs = slices.Clone(r.SuggestProductIDs)
		next.Products.CrossSellRules[i] = r
	}

	next.Shipping.Regions = make([]ShippingRegion, len(s.Shipping.Regions))
	for i, region := range s.Shipping.Regions {
		overrides := make([]RegionOverride, len(region.Overrides))
		for j, o := range region.Overrides {
			if o.MinDays != nil {
				v := *o.MinDays
				o.MinDays = &v
			}
			if o.MaxDays != nil {
				v := *o.MaxDays
				o.MaxDays = &v
			}
			overrides[j] = o
		}
		region.Overrides = overrides
		next.Shipping.Regions[i] = region
	}
	next.Shipping.Methods = slices.Clone(s.Shipping.Methods)

	next.Faq.Items = make([]FaqItem, len(s.Faq.Items))
	for i, item := range s.Faq.Items {
		item.Topics = slices.Clone(item.Topics)
		next.Faq.Items[i] = item
	}

	next.Recipes.Recipes = make([]Recipe, len(s.Recipes.Recipes))
	for i, r := range s.Recipes.Recipes {
		r.RecommendedProductIDs = slices.Clone(r.RecommendedProductIDs)
		next.Recipes.Recipes[i] = r
	}

	next.Intents.Intents = make([]Intent, len(s.Intents.Intents))
	for i, intent := range s.Intents.Intents {
		intent.MatchPhrases = slices.Clone(intent.MatchPhrases)
		intent.Recommend.ProductIDs = slices.Clone(intent.Recommend.ProductIDs)
		intent.Recommend.RecipeIDs = slices.Clone(intent.Recommend.RecipeIDs)
		next.Intents.Intents[i] = intent
	}

	return next
}

