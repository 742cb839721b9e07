package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/fulltext"
	"github.com/pantrysmith/storecore/tools"
)

// Config configures a Registry.
type Config struct {
	// Store supplies snapshots for tool execution. Required.
	Store *dataset.Store

	// Searcher backs the knowledge_search tool. When nil the tool is
	// not registered.
	Searcher *fulltext.Searcher

	// Logger receives execution events. Defaults to zap.NewNop().
	Logger *zap.Logger

	ServerInfo ServerInfo
}

// ServerInfo describes this server to MCP clients.
type ServerInfo struct {
	Name    string
	Version string
}

// Handler executes a tool against a snapshot with JSON-shaped
// arguments.
type Handler func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error)

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type toolEntry struct {
	info    ToolInfo
	handler Handler
}

// Registry dispatches tool calls by name against dataset snapshots.
type Registry struct {
	store    *dataset.Store
	searcher *fulltext.Searcher
	logger   *zap.Logger
	info     ServerInfo

	mu    sync.RWMutex
	tools map[string]*toolEntry
	order []string
}

// New creates a Registry with the full built-in tool set registered.
func New(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{
		store:    cfg.Store,
		searcher: cfg.Searcher,
		logger:   logger,
		info:     cfg.ServerInfo,
		tools:    make(map[string]*toolEntry),
	}
	r.registerBuiltins()
	return r
}

// Register adds a tool under a unique name.
func (r *Registry) Register(name, description string, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = &toolEntry{
		info:    ToolInfo{Name: name, Description: description},
		handler: handler,
	}
	r.order = append(r.order, name)
	return nil
}

// Tools lists registered tools in registration order.
func (r *Registry) Tools() []ToolInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.tools[name].info)
	}
	return infos
}

// Execute runs a tool against the store's current snapshot, reloading
// from disk first when the files changed.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	snap, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}
	return r.ExecuteOn(ctx, name, args, snap)
}

// ExecuteOn runs a tool against a caller-supplied snapshot. Callers use
// this to apply a request-scoped store override before execution.
func (r *Registry) ExecuteOn(ctx context.Context, name string, args map[string]any, snap *dataset.Snapshot) (any, error) {
	r.mu.RLock()
	entry, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	out, err := entry.handler(ctx, args, snap)
	if err != nil {
		r.logger.Warn("tool failed", zap.String("tool", name), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("tool executed", zap.String("tool", name))
	return out, nil
}

func (r *Registry) registerBuiltins() {
	_ = r.Register("search_products",
		"Search the product catalog by keywords with optional tag and use-case filters",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a searchProductsArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			products := tools.SearchProducts(a.Query, tools.SearchFilters{
				Tags:     a.Tags,
				UseCases: a.UseCases,
			}, snap)
			if a.Limit > 0 && len(products) > a.Limit {
				products = products[:a.Limit]
			}
			return searchProductsResult{Products: products}, nil
		})

	_ = r.Register("get_product",
		"Fetch a single product by id",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a getProductArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			product, ok := tools.GetProduct(a.ProductID, snap)
			if !ok {
				return getProductResult{Found: false}, nil
			}
			return getProductResult{Found: true, Product: &product}, nil
		})

	_ = r.Register("faq_answer",
		"Find the FAQ entry best matching a free-text question",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a queryArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			item, ok := tools.FaqAnswer(a.Query, snap)
			if !ok {
				return faqResult{Found: false}, nil
			}
			return faqResult{Found: true, Item: &item}, nil
		})

	_ = r.Register("recommend_for_intent",
		"Match shopper text against curated intents and return the bundled recommendation",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a textArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			match, ok := tools.RecommendForIntent(a.Text, snap)
			if !ok {
				return intentResult{Matched: false}, nil
			}
			return intentResult{
				Matched:  true,
				IntentID: match.Intent.ID,
				Products: match.Products,
				Recipes:  match.Recipes,
			}, nil
		})

	_ = r.Register("route_to_page",
		"Route shopper text to the most specific content page",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a textArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			page, ok := tools.RouteToPage(a.Text, snap)
			if !ok {
				return routeResult{Found: false}, nil
			}
			return routeResult{Found: true, Page: &page}, nil
		})

	_ = r.Register("recommend_from_cart",
		"Suggest cross-sell products for the current cart contents",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a cartArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			return cartResult{Suggestions: tools.RecommendFromCart(a.Items, snap)}, nil
		})

	_ = r.Register("shipping_estimate",
		"Estimate delivery method and day range for a free-text destination",
		func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
			var a shippingArgs
			if err := decodeArgs(args, &a); err != nil {
				return nil, err
			}
			est, ok := tools.ShippingEstimate(a.Destination, snap)
			if !ok {
				return shippingResult{Found: false}, nil
			}
			return shippingResult{Found: true, Estimate: &est}, nil
		})

	if r.searcher != nil {
		_ = r.Register("knowledge_search",
			"Full-text search across products, pages, and FAQ entries",
			func(ctx context.Context, args map[string]any, snap *dataset.Snapshot) (any, error) {
				var a knowledgeSearchArgs
				if err := decodeArgs(args, &a); err != nil {
					return nil, err
				}
				if err := r.searcher.Sync(snap); err != nil {
					return nil, err
				}
				hits, err := r.searcher.Search(a.Query, a.Limit)
				if err != nil {
					return nil, err
				}
				return knowledgeSearchResult{Hits: hits}, nil
			})
	}
}

// decodeArgs maps loosely-typed JSON arguments onto a typed struct.
func decodeArgs(args map[string]any, v any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}
