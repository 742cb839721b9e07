// Package registry exposes the storefront knowledge tools as a named
// tool set and as an MCP server.
//
// Registry binds the dataset store, the deterministic tools package,
// and the fulltext searcher into a single execution surface. Tools are
// addressed by name and take JSON-shaped argument maps, so the same
// dispatch path serves the HTTP API and the MCP transport.
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    Store: store,
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "storecore",
//	        Version: "1.0.0",
//	    },
//	})
//
//	out, err := reg.Execute(ctx, "search_products", map[string]any{
//	    "query": "gift box",
//	})
//
// For MCP, RegisterMCP attaches every tool to an mcp.Server with typed
// argument schemas:
//
//	server := mcp.NewServer(&mcp.Implementation{Name: "storecore"}, nil)
//	reg.RegisterMCP(server)
//	server.Run(ctx, &mcp.StdioTransport{})
package registry
