// Package dataset loads and serves the storefront's linked datasets.
//
// Seven JSON documents — business, pages, products, shipping, faq,
// recipes, intents — form one immutable Snapshot. A Store owns the
// cached Snapshot and reloads it when the modification time of any
// backing file moves past the recorded watermark. Snapshots are never
// mutated in place: a reload allocates a new Snapshot and swaps the
// cached pointer, so concurrent readers see either the old or the new
// aggregate, never a partial one.
//
// # Usage
//
// Create a store over a dataset directory and load:
//
//	store, err := dataset.NewStore(dataset.Options{Dir: "sampledata"})
//	if err != nil {
//	    return err
//	}
//	snap, err := store.Load()
//
// Validate referential integrity before serving traffic:
//
//	if violations := dataset.Validate(snap); len(violations) > 0 {
//	    // refuse to start; every violation is reported at once
//	}
//
// Apply a request-scoped store override without touching the cache:
//
//	scoped := dataset.ApplyOverride(snap, override)
//
// The override result shares no mutable state with the input; mutating
// it never affects the cached Snapshot.
//
// # Staleness
//
// Load compares file modification timestamps only, not content hashes.
// This is best-effort, low-cost invalidation: an edit that preserves
// the timestamp is not detected until the next timestamp change. The
// optional Watcher provides proactive refresh on filesystem events but
// the watermark remains the correctness mechanism.
package dataset
