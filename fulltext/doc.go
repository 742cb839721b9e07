// Package fulltext provides a Bleve-backed full-text index over the
// store's products, pages, and FAQ entries.
//
// It complements the deterministic keyword tools: where those answer a
// shaped question (route, estimate, recommend), fulltext answers "show
// me everything about X" across dataset kinds with relevance ranking.
//
// # Usage
//
// The primary type is [Searcher]. Sync it against a snapshot before
// searching:
//
//	s := fulltext.NewSearcher(fulltext.Options{})
//	if err := s.Sync(snap); err != nil { ... }
//	hits, err := s.Search("drinking chocolate", 5)
//
// # Thread Safety
//
// Searcher is safe for concurrent use. Sync fingerprints the snapshot's
// indexed content and only rebuilds the in-memory index when the
// content actually changed, so calling it on every request is cheap.
package fulltext
