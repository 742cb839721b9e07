// Package tools implements the storefront retrieval tools.
//
// Every tool is a pure function of (input, snapshot): no I/O, no
// shared state, no side effects beyond reading the Snapshot it is
// handed. A lookup miss is signalled with an explicit ok=false or an
// empty slice, never an error; ids supplied by callers that do not
// resolve in the catalog are skipped silently.
//
// Matching semantics differ deliberately between tools and are
// observable behavior:
//
//   - SearchProducts and FaqAnswer score token overlap; FaqAnswer
//     keeps a single running best where the first item to reach the
//     maximum wins ties.
//   - RouteToPage prefers the longest matching keyword; equal lengths
//     resolve to the earliest entry.
//   - RecommendForIntent and ShippingEstimate stop at the first match
//     in dataset order.
package tools
