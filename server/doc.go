// Package server exposes the dataset store and tool registry over
// HTTP.
//
// The API serves raw dataset reads, full-text search, and tool
// execution. Tool calls may carry a request-scoped store override that
// patches store identity for that call only, and an optional session id
// under which calls are recorded in memory.
package server
