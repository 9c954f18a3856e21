package repositories

import (
	"fmt"
	"log/slog"
)

// Supported storage backends
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the repository for backend. path is the database location for
// badger and sqlite and is ignored for memory.
func Open(backend, path string) (BlogRepository, error) {
	switch backend {
	case BackendBadger:
		return OpenBadger(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryBlogRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// OpenWithFallback behaves like Open but falls back to the in-memory repository
// when the requested backend cannot be opened.
func OpenWithFallback(backend, path string, logger *slog.Logger) BlogRepository {
	repo, err := Open(backend, path)
	if err == nil {
		return repo
	}
	logger.Warn("storage unavailable, running in memory-only mode",
		"backend", backend, "path", path, "error", err)
	return NewMemoryBlogRepository()
}
