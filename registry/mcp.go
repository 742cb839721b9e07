package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMCPServer builds an MCP server carrying this registry's identity
// with every registered tool attached.
func (r *Registry) NewMCPServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    r.info.Name,
		Version: r.info.Version,
	}, nil)
	r.RegisterMCP(server)
	return server
}

// RegisterMCP attaches every registered tool to an MCP server. Input
// schemas are derived from the tools' typed argument structs.
func (r *Registry) RegisterMCP(server *mcp.Server) {
	infos := r.Tools()
	byName := make(map[string]ToolInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	addTool[searchProductsArgs](server, r, byName["search_products"])
	addTool[getProductArgs](server, r, byName["get_product"])
	addTool[queryArgs](server, r, byName["faq_answer"])
	addTool[textArgs](server, r, byName["recommend_for_intent"])
	addTool[textArgs](server, r, byName["route_to_page"])
	addTool[cartArgs](server, r, byName["recommend_from_cart"])
	addTool[shippingArgs](server, r, byName["shipping_estimate"])
	if _, ok := byName["knowledge_search"]; ok {
		addTool[knowledgeSearchArgs](server, r, byName["knowledge_search"])
	}
}

// addTool bridges one registry tool into the MCP server, using T to
// derive the input schema.
func addTool[T any](server *mcp.Server, r *Registry, info ToolInfo) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        info.Name,
		Description: info.Description,
	}, func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		argMap, err := toArgMap(args)
		if err != nil {
			return nil, nil, err
		}
		out, err := r.Execute(ctx, info.Name, argMap)
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	})
}

// toArgMap round-trips a typed argument struct into the map shape the
// dispatch path expects.
func toArgMap(args any) (map[string]any, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return m, nil
}
