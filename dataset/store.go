package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Error values for store construction.
var (
	ErrNoPaths = errors.New("dataset paths are not configured")
)

// FS is the filesystem capability a Store needs. The default
// implementation reads from the OS; tests may inject their own.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }
func (osFS) ReadFile(name string) ([]byte, error)  { return os.ReadFile(name) }

// Paths names the seven backing dataset files.
type Paths struct {
	Business string
	Pages    string
	Products string
	Shipping string
	Faq      string
	Recipes  string
	Intents  string
}

// DefaultPaths returns the conventional file layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Business: filepath.Join(dir, "business.json"),
		Pages:    filepath.Join(dir, "pages.json"),
		Products: filepath.Join(dir, "products.json"),
		Shipping: filepath.Join(dir, "shipping.json"),
		Faq:      filepath.Join(dir, "faq.json"),
		Recipes:  filepath.Join(dir, "recipes.json"),
		Intents:  filepath.Join(dir, "intents.json"),
	}
}

func (p Paths) all() []string {
	return []string{p.Business, p.Pages, p.Products, p.Shipping, p.Faq, p.Recipes, p.Intents}
}

func (p Paths) complete() bool {
	for _, path := range p.all() {
		if path == "" {
			return false
		}
	}
	return true
}

// Options configures a Store.
type Options struct {
	// Dir is the dataset directory; used with DefaultPaths when Paths
	// is not fully specified.
	Dir string

	// Paths overrides the per-file layout.
	Paths Paths

	// FS is the filesystem capability. Defaults to the OS.
	FS FS

	// Logger for reload events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Store owns the cached Snapshot and its staleness watermark. A single
// Store is constructed at startup and shared by reference; it has no
// package-level state.
type Store struct {
	paths  Paths
	fsys   FS
	logger *zap.Logger

	mu        sync.RWMutex
	snapshot  *Snapshot
	watermark time.Time

	group singleflight.Group
}

// NewStore creates a Store over the given dataset files.
func NewStore(opts Options) (*Store, error) {
	paths := opts.Paths
	if !paths.complete() {
		if opts.Dir == "" {
			return nil, ErrNoPaths
		}
		paths = DefaultPaths(opts.Dir)
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = osFS{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		paths:  paths,
		fsys:   fsys,
		logger: logger,
	}, nil
}

// Load returns the current Snapshot, re-reading the backing files only
// when the latest modification time across them exceeds the recorded
// watermark. Concurrent calls that race a reload observe either the
// old or the new Snapshot, never a partially loaded one.
func (s *Store) Load() (*Snapshot, error) {
	latest, err := s.latestMtime()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	snap, mark := s.snapshot, s.watermark
	s.mu.RUnlock()

	if snap != nil && !latest.After(mark) {
		return snap, nil
	}

	v, err, _ := s.group.Do("reload", func() (any, error) {
		// Re-check under the group: another caller may have finished
		// the reload between our watermark check and here.
		s.mu.RLock()
		snap, mark := s.snapshot, s.watermark
		s.mu.RUnlock()
		if snap != nil && !latest.After(mark) {
			return snap, nil
		}

		next, err := s.readAll()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snapshot = next
		s.watermark = latest
		s.mu.Unlock()

		s.logger.Info("dataset snapshot loaded",
			zap.Time("watermark", latest),
			zap.Int("products", len(next.Products.Products)),
			zap.Int("pages", len(next.Pages.Pages)),
			zap.Int("intents", len(next.Intents.Intents)))
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Snapshot returns the cached Snapshot without a staleness check, or
// nil if Load has never succeeded.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Paths returns the configured dataset file paths.
func (s *Store) Paths() Paths {
	return s.paths
}

// Dir returns the directory of the business dataset file, which by
// convention holds all seven files.
func (s *Store) Dir() string {
	return filepath.Dir(s.paths.Business)
}

func (s *Store) latestMtime() (time.Time, error) {
	var newest time.Time
	for _, path := range s.paths.all() {
		info, err := s.fsys.Stat(path)
		if err != nil {
			return time.Time{}, fmt.Errorf("stat dataset file: %w", err)
		}
		if mod := info.ModTime(); mod.After(newest) {
			newest = mod
		}
	}
	return newest, nil
}

func (s *Store) readAll() (*Snapshot, error) {
	var snap Snapshot
	files := []struct {
		path string
		into any
	}{
		{s.paths.Business, &snap.Business},
		{s.paths.Pages, &snap.Pages},
		{s.paths.Products, &snap.Products},
		{s.paths.Shipping, &snap.Shipping},
		{s.paths.Faq, &snap.Faq},
		{s.paths.Recipes, &snap.Recipes},
		{s.paths.Intents, &snap.Intents},
	}

	for _, f := range files {
		raw, err := s.fsys.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("read dataset file: %w", err)
		}
		if err := json.Unmarshal(raw, f.into); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(f.path), err)
		}
	}

	return &snap, nil
}
