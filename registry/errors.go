package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrToolNotFound  = errors.New("tool not found")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrInvalidArgs   = errors.New("invalid tool arguments")
	ErrNoSearcher    = errors.New("fulltext searcher not configured")
)
