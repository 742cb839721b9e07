package tools

import "github.com/pantrysmith/storecore/dataset"

func intPtr(v int) *int { return &v }

// testSnapshot mirrors the demo store: enough data to exercise every
// tool's scoring, tie-break, and fallback path.
func testSnapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		Business: dataset.Business{
			StoreName:   "Ember & Vine",
			StoreDomain: "emberandvine.example",
			Support:     map[string]string{"email": "help@emberandvine.example"},
		},
		Pages: dataset.PagesPayload{
			Store: dataset.StoreInfo{Name: "Ember & Vine", Domain: "emberandvine.example"},
			Pages: []dataset.Page{
				{ID: "home", Type: "landing", Title: "Home"},
				{ID: "subscriptions", Type: "catalog", Title: "Subscriptions"},
				{ID: "gifting", Type: "catalog", Title: "Gifting"},
				{ID: "help", Type: "support", Title: "Help"},
			},
			RoutingKeywords: []dataset.RoutingKeyword{
				{Keyword: "gift", PageID: "gifting"},
				{Keyword: "subscription", PageID: "subscriptions"},
				{Keyword: "subscriptions", PageID: "subscriptions"},
				{Keyword: "help", PageID: "help"},
				{Keyword: "", PageID: "home"},
			},
		},
		Products: dataset.ProductsPayload{
			Products: []dataset.Product{
				{
					ID:       "p_explorer_box",
					Name:     "Explorer Box",
					Price:    dataset.Price{Amount: 49, Currency: "USD"},
					Summary:  "A rotating world tour of pantry snacks",
					Tags:     []string{"gift", "box", "snacks"},
					UseCases: []string{"gifting", "office"},
				},
				{
					ID:       "p_cocoa_set",
					Name:     "Cocoa Set",
					Price:    dataset.Price{Amount: 29, Currency: "USD"},
					Summary:  "Single-origin drinking chocolate for gift baskets",
					Tags:     []string{"cocoa", "gift"},
					UseCases: []string{"cozy nights"},
				},
				{
					ID:      "p_chili_oil",
					Name:    "Chili Crisp Oil",
					Price:   dataset.Price{Amount: 14, Currency: "USD"},
					Summary: "Crunchy chili oil for everything",
					Tags:    []string{"pantry", "spicy"},
				},
			},
			CrossSellRules: []dataset.CrossSellRule{
				{
					IfCartHasTags:     []string{"gift"},
					SuggestProductIDs: []string{"p_cocoa_set"},
					Reason:            "Pairs well with a gift box",
				},
				{
					IfCartHasTags:     []string{"gift", "snacks"},
					SuggestProductIDs: []string{"p_chili_oil", "p_cocoa_set"},
					Reason:            "Snack lovers add heat",
				},
				{
					IfCartHasTags:     []string{"spicy"},
					SuggestProductIDs: []string{"p_explorer_box"},
					Reason:            "Balance the heat",
				},
			},
		},
		Shipping: dataset.ShippingPayload{
			Regions: []dataset.ShippingRegion{
				{
					RegionID:      "eu",
					DefaultMethod: "standard",
				},
				{
					RegionID:      "us",
					DefaultMethod: "standard",
					Overrides: []dataset.RegionOverride{
						{State: "NY", Method: "express", MinDays: intPtr(2), MaxDays: intPtr(5)},
						{State: "CA", Method: "express"},
						{State: "NY", Method: "standard", MinDays: intPtr(9), MaxDays: intPtr(9)},
					},
				},
			},
			Methods: []dataset.ShippingMethod{
				{ID: "standard", Name: "Standard", MinDays: 3, MaxDays: 7, Note: "Free over $50"},
				{ID: "express", Name: "Express", MinDays: 1, MaxDays: 3, Note: "Signature required"},
			},
		},
		Faq: dataset.FaqPayload{
			Items: []dataset.FaqItem{
				{ID: "faq_returns", Question: "What is your return policy?", Topics: []string{"returns", "refund"}},
				{ID: "faq_tracking", Question: "How do I track my order?", Topics: []string{"track", "order", "status"}},
				{ID: "faq_shipping", Question: "How long does shipping take?", Topics: []string{"shipping", "delivery"}},
			},
		},
		Recipes: dataset.RecipesPayload{
			Recipes: []dataset.Recipe{
				{ID: "r_dinner_party", Title: "Dinner Party Spread", RecommendedProductIDs: []string{"p_explorer_box", "p_chili_oil"}},
			},
		},
		Intents: dataset.IntentsPayload{
			Intents: []dataset.Intent{
				{
					ID:           "i_boss_gift",
					MatchPhrases: []string{"gift for my boss", "impress my boss"},
					Recommend: dataset.IntentRecommendation{
						ProductIDs: []string{"p_explorer_box"},
						RecipeIDs:  []string{"r_dinner_party"},
					},
				},
				{
					ID:           "i_spice",
					MatchPhrases: []string{"something spicy"},
					Recommend: dataset.IntentRecommendation{
						ProductIDs: []string{"p_chili_oil"},
					},
				},
			},
		},
	}
}
