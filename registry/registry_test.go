package registry

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/fulltext"
)

var registryFixtures = map[string]string{
	"business.json": `{
		"storeName": "Ember & Vine",
		"storeDomain": "emberandvine.example",
		"support": {"email": "help@emberandvine.example"}
	}`,
	"pages.json": `{
		"store": {"name": "Ember & Vine", "domain": "emberandvine.example"},
		"pages": [
			{"id": "home", "type": "landing", "title": "Home"},
			{"id": "gifting", "type": "catalog", "title": "Gifting"}
		],
		"routing_keywords": [
			{"keyword": "gift", "page_id": "gifting"}
		]
	}`,
	"products.json": `{
		"products": [
			{
				"id": "p_explorer_box",
				"name": "Explorer Box",
				"price": {"amount": 49, "currency": "USD"},
				"summary": "A rotating world tour of pantry snacks",
				"tags": ["gift", "box", "snacks"]
			},
			{
				"id": "p_cocoa_set",
				"name": "Cocoa Set",
				"price": {"amount": 29, "currency": "USD"},
				"summary": "Single-origin drinking chocolate",
				"tags": ["cocoa", "gift"]
			}
		],
		"cross_sell_rules": [
			{"if_cart_has_tags": ["gift"], "suggest_product_ids": ["p_cocoa_set"], "reason": "Pairs well with a gift box"}
		]
	}`,
	"shipping.json": `{
		"regions": [
			{
				"region_id": "us",
				"default_method": "standard",
				"overrides": [
					{"state": "NY", "method": "express", "min_days": 2, "max_days": 5}
				]
			}
		],
		"methods": [
			{"id": "standard", "name": "Standard", "min_days": 3, "max_days": 7},
			{"id": "express", "name": "Express", "min_days": 1, "max_days": 3}
		],
		"common_answers": {}
	}`,
	"faq.json": `{
		"items": [
			{"id": "faq_tracking", "question": "How do I track my order?", "topics": ["track", "order"]}
		]
	}`,
	"recipes.json": `{"recipes": []}`,
	"intents.json": `{
		"intents": [
			{
				"id": "i_boss_gift",
				"match_phrases": ["gift for my boss"],
				"recommend": {"product_ids": ["p_explorer_box"]}
			}
		]
	}`,
}

func newTestStore(t *testing.T) *dataset.Store {
	t.Helper()
	dir := t.TempDir()
	for name, body := range registryFixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	store, err := dataset.NewStore(dataset.Options{Dir: dir})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestExecuteSearchProducts(t *testing.T) {
	reg := New(Config{Store: newTestStore(t)})

	out, err := reg.Execute(context.Background(), "search_products", map[string]any{
		"query": "gift box",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	result, ok := out.(searchProductsResult)
	if !ok {
		t.Fatalf("unexpected result type %T", out)
	}
	if len(result.Products) != 2 || result.Products[0].ID != "p_explorer_box" {
		t.Errorf("unexpected products: %+v", result.Products)
	}
}

func TestExecuteLimitsResults(t *testing.T) {
	reg := New(Config{Store: newTestStore(t)})

	out, err := reg.Execute(context.Background(), "search_products", map[string]any{
		"query": "gift",
		"limit": 1,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result := out.(searchProductsResult); len(result.Products) != 1 {
		t.Errorf("expected 1 product, got %+v", result.Products)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	reg := New(Config{Store: newTestStore(t)})
	if _, err := reg.Execute(context.Background(), "no_such_tool", nil); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestExecuteInvalidArgs(t *testing.T) {
	reg := New(Config{Store: newTestStore(t)})
	_, err := reg.Execute(context.Background(), "get_product", map[string]any{
		"productId": 42,
	})
	if !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("expected ErrInvalidArgs, got %v", err)
	}
}

func TestExecuteReportsMissInBand(t *testing.T) {
	reg := New(Config{Store: newTestStore(t)})

	out, err := reg.Execute(context.Background(), "get_product", map[string]any{
		"productId": "p_missing",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result := out.(getProductResult); result.Found || result.Product != nil {
		t.Errorf("expected an in-band miss, got %+v", result)
	}
}

func TestToolsRegistrationOrder(t *testing.T) {
	reg := New(Config{Store: newTestStore(t)})

	want := []string{
		"search_products", "get_product", "faq_answer",
		"recommend_for_intent", "route_to_page", "recommend_from_cart",
		"shipping_estimate",
	}
	infos := reg.Tools()
	if len(infos) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(infos))
	}
	for i, info := range infos {
		if info.Name != want[i] {
			t.Errorf("tool %d: expected %s, got %s", i, want[i], info.Name)
		}
		if info.Description == "" {
			t.Errorf("tool %s has no description", info.Name)
		}
	}
}

func TestKnowledgeSearchNeedsSearcher(t *testing.T) {
	store := newTestStore(t)

	reg := New(Config{Store: store})
	if _, err := reg.Execute(context.Background(), "knowledge_search", map[string]any{"query": "chocolate"}); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound without a searcher, got %v", err)
	}

	searcher := fulltext.NewSearcher(fulltext.Options{})
	defer searcher.Close()
	reg = New(Config{Store: store, Searcher: searcher})

	out, err := reg.Execute(context.Background(), "knowledge_search", map[string]any{"query": "chocolate"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	result := out.(knowledgeSearchResult)
	if len(result.Hits) == 0 || result.Hits[0].ID != "p_cocoa_set" {
		t.Errorf("expected p_cocoa_set hit, got %+v", result.Hits)
	}
}

func TestExecuteOnUsesSuppliedSnapshot(t *testing.T) {
	store := newTestStore(t)
	reg := New(Config{Store: store})

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	patched := dataset.ApplyOverride(snap, &dataset.StoreOverride{
		Mode:      dataset.OverrideModeCustom,
		StoreName: "Pop-Up Vine",
	})
	patched.Products.Products[0].Name = "Explorer Box (Pop-Up)"

	out, err := reg.ExecuteOn(context.Background(), "get_product", map[string]any{
		"productId": "p_explorer_box",
	}, patched)
	if err != nil {
		t.Fatalf("ExecuteOn: %v", err)
	}
	if result := out.(getProductResult); result.Product.Name != "Explorer Box (Pop-Up)" {
		t.Errorf("expected patched snapshot to win, got %+v", result.Product)
	}

	// The store's own snapshot is untouched.
	out, err = reg.Execute(context.Background(), "get_product", map[string]any{
		"productId": "p_explorer_box",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result := out.(getProductResult); result.Product.Name != "Explorer Box" {
		t.Errorf("base snapshot was mutated: %+v", result.Product)
	}
}

func TestMCPRoundTrip(t *testing.T) {
	reg := New(Config{
		Store:      newTestStore(t),
		ServerInfo: ServerInfo{Name: "storecore", Version: "test"},
	})
	server := reg.NewMCPServer()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ctx := context.Background()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	defer func() {
		_ = serverSession.Close()
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	defer func() {
		_ = clientSession.Close()
	}()

	listed, err := clientSession.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(listed.Tools) != 7 {
		t.Errorf("expected 7 tools, got %d", len(listed.Tools))
	}

	result, err := clientSession.CallTool(ctx, &mcp.CallToolParams{
		Name:      "shipping_estimate",
		Arguments: map[string]any{"destination": "Brooklyn NY"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool reported an error: %+v", result.Content)
	}

	raw, err := json.Marshal(result.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var est shippingResult
	if err := json.Unmarshal(raw, &est); err != nil {
		t.Fatalf("unmarshal estimate: %v", err)
	}
	if !est.Found || est.Estimate.Method != "Express" || est.Estimate.MinDays != 2 || est.Estimate.MaxDays != 5 {
		t.Errorf("unexpected estimate: %+v", est)
	}
}
