package registry

import (
	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/fulltext"
	"github.com/pantrysmith/storecore/tools"
)

// Argument shapes, shared by the map-based dispatch path and the MCP
// schema derivation.

type searchProductsArgs struct {
	Query    string   `json:"query"`
	Tags     []string `json:"tags,omitempty"`
	UseCases []string `json:"useCases,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

type getProductArgs struct {
	ProductID string `json:"productId"`
}

type queryArgs struct {
	Query string `json:"query"`
}

type textArgs struct {
	Text string `json:"text"`
}

type cartArgs struct {
	Items []tools.CartItem `json:"items"`
}

type shippingArgs struct {
	Destination string `json:"destination"`
}

type knowledgeSearchArgs struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// Result shapes. Lookup misses are reported in-band rather than as
// errors so MCP clients see a normal result.

type searchProductsResult struct {
	Products []dataset.Product `json:"products"`
}

type getProductResult struct {
	Found   bool             `json:"found"`
	Product *dataset.Product `json:"product,omitempty"`
}

type faqResult struct {
	Found bool             `json:"found"`
	Item  *dataset.FaqItem `json:"item,omitempty"`
}

type intentResult struct {
	Matched  bool              `json:"matched"`
	IntentID string            `json:"intentId,omitempty"`
	Products []dataset.Product `json:"products,omitempty"`
	Recipes  []dataset.Recipe  `json:"recipes,omitempty"`
}

type routeResult struct {
	Found bool          `json:"found"`
	Page  *dataset.Page `json:"page,omitempty"`
}

type cartResult struct {
	Suggestions []tools.Suggestion `json:"suggestions"`
}

type shippingResult struct {
	Found    bool            `json:"found"`
	Estimate *tools.Estimate `json:"estimate,omitempty"`
}

type knowledgeSearchResult struct {
	Hits []fulltext.Hit `json:"hits"`
}
