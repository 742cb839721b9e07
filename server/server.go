package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pantrysmith/storecore/dataset"
	"github.com/pantrysmith/storecore/fulltext"
	"github.com/pantrysmith/storecore/registry"
)

// Options configures a Server.
type Options struct {
	// Store supplies snapshots. Required.
	Store *dataset.Store

	// Registry dispatches tool calls. Required.
	Registry *registry.Registry

	// Searcher backs GET /api/search. When nil the route reports 503.
	Searcher *fulltext.Searcher

	// Logger defaults to zap.NewNop().
	Logger *zap.Logger
}

// Server is the HTTP surface over the store and registry.
type Server struct {
	store    *dataset.Store
	registry *registry.Registry
	searcher *fulltext.Searcher
	logger   *zap.Logger
	sessions *sessionStore
	router   *chi.Mux
}

// New builds the server and mounts all routes.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		store:    opts.Store,
		registry: opts.Registry,
		searcher: opts.Searcher,
		logger:   logger,
		sessions: newSessionStore(),
	}
	s.routes()
	return s
}

// Handler returns the mounted router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/config", s.handleConfig)
	r.Get("/api/data/business", s.handleData(func(snap *dataset.Snapshot) any { return snap.Business }))
	r.Get("/api/data/pages", s.handleData(func(snap *dataset.Snapshot) any { return snap.Pages }))
	r.Get("/api/data/products", s.handleData(func(snap *dataset.Snapshot) any { return snap.Products }))
	r.Get("/api/search", s.handleSearch)
	r.Post("/api/tools/{name}", s.handleToolCall)
	r.Get("/api/sessions/{id}", s.handleSession)

	s.router = r
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	snap, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	names := make([]string, 0)
	for _, info := range s.registry.Tools() {
		names = append(names, info.Name)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"storeName": snap.Business.StoreName,
		"dataDir":   s.store.Dir(),
		"tools":     names,
	})
}

// handleData reloads from disk on every request so edits to the JSON
// files show up without a restart.
func (s *Server) handleData(pick func(*dataset.Snapshot) any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		snap, err := s.store.Load()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, pick(snap))
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "search not configured"})
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query parameter q"})
		return
	}

	snap, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.searcher.Sync(snap); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	hits, err := s.searcher.Search(query, queryInt(r, "limit", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hits": hits})
}

type toolCallRequest struct {
	Arguments     map[string]any         `json:"arguments"`
	StoreOverride *dataset.StoreOverride `json:"storeOverride,omitempty"`
	SessionID     string                 `json:"sessionId,omitempty"`
}

func (s *Server) handleToolCall(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req toolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.store.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	// The override patches a derived copy; the cached snapshot is
	// never touched.
	snap = dataset.ApplyOverride(snap, req.StoreOverride)

	result, err := s.registry.ExecuteOn(r.Context(), name, req.Arguments, snap)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, registry.ErrToolNotFound):
			status = http.StatusNotFound
		case errors.Is(err, registry.ErrInvalidArgs):
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	sessionID := s.sessions.record(req.SessionID, SessionEntry{
		Tool:      name,
		Arguments: req.Arguments,
		At:        time.Now().UTC(),
	})
	s.logger.Debug("tool call",
		zap.String("tool", name),
		zap.String("session", sessionID))

	writeJSON(w, http.StatusOK, map[string]any{
		"result":    result,
		"sessionId": sessionID,
	})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
