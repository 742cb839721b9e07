package fulltext

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"

	"github.com/pantrysmith/storecore/dataset"
)

// Document kinds reported in search hits.
const (
	KindProduct = "product"
	KindPage    = "page"
	KindFaq     = "faq"
)

// ErrNotSynced is returned by Search before the first successful Sync.
var ErrNotSynced = errors.New("fulltext: index not built, call Sync first")

// DefaultLimit caps result sets when the caller passes a non-positive
// limit.
const DefaultLimit = 10

// Hit is one search result.
type Hit struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Score float64 `json:"score"`
}

// document is the indexed shape shared by all dataset kinds.
type document struct {
	ID    string   `json:"id"`
	Kind  string   `json:"kind"`
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

// Options configures a Searcher.
type Options struct {
	// Logger receives rebuild events. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// Searcher maintains an in-memory Bleve index over a snapshot's
// products, pages, and FAQ entries.
type Searcher struct {
	logger *zap.Logger

	mu          sync.RWMutex
	index       bleve.Index
	fingerprint string
}

// NewSearcher creates an empty Searcher. No index exists until Sync.
func NewSearcher(opts Options) *Searcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{logger: logger}
}

// Sync brings the index in line with snap. When the indexed content is
// unchanged since the previous Sync this is a fingerprint comparison
// and nothing else.
func (s *Searcher) Sync(snap *dataset.Snapshot) error {
	docs := collectDocuments(snap)
	fp := fingerprint(docs)

	s.mu.RLock()
	current := s.fingerprint
	s.mu.RUnlock()
	if current == fp {
		return nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	for _, doc := range docs {
		if err := batch.Index(doc.Kind+":"+doc.ID, doc); err != nil {
			_ = idx.Close()
			return fmt.Errorf("index %s %s: %w", doc.Kind, doc.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return fmt.Errorf("commit batch: %w", err)
	}

	s.mu.Lock()
	old := s.index
	s.index = idx
	s.fingerprint = fp
	s.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}

	s.logger.Info("fulltext index rebuilt", zap.Int("documents", len(docs)))
	return nil
}

// Search runs a match query and returns up to limit hits ranked by
// score. A non-positive limit falls back to DefaultLimit.
func (s *Searcher) Search(query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, ErrNotSynced
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = limit
	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, match := range res.Hits {
		kind, id, ok := strings.Cut(match.ID, ":")
		if !ok {
			continue
		}
		hits = append(hits, Hit{ID: id, Kind: kind, Score: match.Score})
	}
	return hits, nil
}

// Close releases the underlying index. The Searcher is unusable
// afterwards.
func (s *Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	s.fingerprint = ""
	return err
}

func collectDocuments(snap *dataset.Snapshot) []document {
	docs := make([]document, 0,
		len(snap.Products.Products)+len(snap.Pages.Pages)+len(snap.Faq.Items))

	for _, p := range snap.Products.Products {
		body := p.Summary
		if len(p.Features) > 0 {
			body += " " + strings.Join(p.Features, " ")
		}
		docs = append(docs, document{
			ID:    p.ID,
			Kind:  KindProduct,
			Title: p.Name,
			Body:  body,
			Tags:  slices.Concat(p.Tags, p.UseCases),
		})
	}
	for _, p := range snap.Pages.Pages {
		docs = append(docs, document{
			ID:    p.ID,
			Kind:  KindPage,
			Title: p.Title,
			Body:  p.Type,
		})
	}
	for _, item := range snap.Faq.Items {
		docs = append(docs, document{
			ID:    item.ID,
			Kind:  KindFaq,
			Title: item.Question,
			Body:  item.Answer,
			Tags:  item.Topics,
		})
	}
	return docs
}
