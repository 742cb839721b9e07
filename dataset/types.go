package dataset

// Business is the store identity document. Root singleton.
type Business struct {
	StoreName   string            `json:"storeName"`
	StoreDomain string            `json:"storeDomain"`
	Support     map[string]string `json:"support,omitempty"`
}

// StoreInfo mirrors the business identity inside the pages document.
type StoreInfo struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Page is a content page. TopProducts reference product ids.
type Page struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Title           string            `json:"title,omitempty"`
	URL             string            `json:"url,omitempty"`
	TopProducts     []string          `json:"top_products,omitempty"`
	SupportChannels map[string]string `json:"support_channels,omitempty"`
}

// RoutingKeyword maps a phrase to a page. Many keywords may point at
// the same page.
type RoutingKeyword struct {
	Keyword string `json:"keyword"`
	PageID  string `json:"page_id"`
}

// PagesPayload is the pages dataset document.
type PagesPayload struct {
	Store           StoreInfo        `json:"store"`
	Pages           []Page           `json:"pages"`
	RoutingKeywords []RoutingKeyword `json:"routing_keywords,omitempty"`
}

// Price is a product price in a single currency.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Availability reports whether a product is in stock.
type Availability struct {
	InStock bool `json:"in_stock"`
}

// Product is a catalog entry. Referenced by pages, cross-sell rules,
// intents, and recipes.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	URL           string         `json:"url,omitempty"`
	Price         Price          `json:"price"`
	Summary       string         `json:"summary"`
	Features      []string       `json:"features,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	UseCases      []string       `json:"use_cases,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	Availability  *Availability  `json:"availability,omitempty"`
	ShippingNotes string         `json:"shipping_notes,omitempty"`
}

// CrossSellRule suggests products when the cart carries all the listed
// tags.
type CrossSellRule struct {
	IfCartHasTags     []string `json:"if_cart_has_tags"`
	SuggestProductIDs []string `json:"suggest_product_ids"`
	Reason            string   `json:"reason"`
}

// ProductsPayload is the products dataset document.
type ProductsPayload struct {
	Products       []Product       `json:"products"`
	CrossSellRules []CrossSellRule `json:"cross_sell_rules,omitempty"`
}

// ShippingMethod is a named delivery method with a day range.
type ShippingMethod struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	MinDays int    `json:"min_days"`
	MaxDays int    `json:"max_days"`
	Note    string `json:"note,omitempty"`
}

// RegionOverride replaces the method and day range for destinations
// matching State. Nil day fields fall back to the method's own range.
type RegionOverride struct {
	State   string `json:"state"`
	Method  string `json:"method"`
	MinDays *int   `json:"min_days,omitempty"`
	MaxDays *int   `json:"max_days,omitempty"`
}

// ShippingRegion groups a default method with state overrides.
type ShippingRegion struct {
	RegionID      string           `json:"region_id"`
	DefaultMethod string           `json:"default_method"`
	Overrides     []RegionOverride `json:"overrides,omitempty"`
}

// ShippingAnswers carries shipping-wide canned answer fragments.
type ShippingAnswers struct {
	FinalSource string `json:"final_source,omitempty"`
}

// ShippingPayload is the shipping dataset document.
type ShippingPayload struct {
	Regions       []ShippingRegion `json:"regions"`
	Methods       []ShippingMethod `json:"methods"`
	CommonAnswers ShippingAnswers  `json:"common_answers"`
}

// FaqItem is a question with matchable topics.
type FaqItem struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer,omitempty"`
	Topics   []string `json:"topics,omitempty"`
}

// FaqPayload is the faq dataset document.
type FaqPayload struct {
	Items []FaqItem `json:"items"`
}

// Recipe recommends a set of products.
type Recipe struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title,omitempty"`
	URL                   string   `json:"url,omitempty"`
	RecommendedProductIDs []string `json:"recommended_product_ids,omitempty"`
}

// RecipesPayload is the recipes dataset document.
type RecipesPayload struct {
	Recipes []Recipe `json:"recipes"`
}

// IntentRecommendation bundles the products and recipes an intent
// recommends.
type IntentRecommendation struct {
	ProductIDs []string `json:"product_ids,omitempty"`
	RecipeIDs  []string `json:"recipe_ids,omitempty"`
}

// Intent maps trigger phrases to a bundled recommendation.
type Intent struct {
	ID           string               `json:"id,omitempty"`
	MatchPhrases []string             `json:"match_phrases"`
	Recommend    IntentRecommendation `json:"recommend"`
}

// IntentsPayload is the intents dataset document.
type IntentsPayload struct {
	Intents []Intent `json:"intents"`
}

// OverrideModeCustom is the StoreOverride mode sentinel that activates
// the override; any other mode leaves the snapshot untouched.
const OverrideModeCustom = "custom"

// StoreOverride is a request-scoped patch of store identity and
// support data. It is applied per request and never persisted.
type StoreOverride struct {
	Mode        string            `json:"mode"`
	StoreName   string            `json:"storeName,omitempty"`
	StoreDomain string            `json:"storeDomain,omitempty"`
	Support     map[string]string `json:"support,omitempty"`
}

// Snapshot is the aggregate of all seven datasets as loaded at one
// instant. It is the unit of caching and of override, and is treated
// as read-only once obtained.
type Snapshot struct {
	Business Business        `json:"business"`
	Pages    PagesPayload    `json:"pages"`
	Products ProductsPayload `json:"products"`
	Shipping ShippingPayload `json:"shipping"`
	Faq      FaqPayload      `json:"faq"`
	Recipes  RecipesPayload  `json:"recipes"`
	Intents  IntentsPayload  `json:"intents"`
}

// ProductByID returns the first product with the given id.
func (s *Snapshot) ProductByID(id string) (Product, bool) {
	for _, p := range s.Products.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// PageByID returns the first page with the given id.
func (s *Snapshot) PageByID(id string) (Page, bool) {
	for _, p := range s.Pages.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}

// RecipeByID returns the first recipe with the given id.
func (s *Snapshot) RecipeByID(id string) (Recipe, bool) {
	for _, r := range s.Recipes.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// MethodByID returns the first shipping method with the given id.
func (s *Snapshot) MethodByID(id string) (ShippingMethod, bool) {
	for _, m := range s.Shipping.Methods {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}
