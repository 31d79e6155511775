package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ietsi/tablero/internal/domain/project"
)

// Snapshot is one immutable load of the base record set. Derived views are
// always computed from a snapshot, never from mutable state.
type Snapshot struct {
	ID       string            `json:"id"`
	LoadedAt time.Time         `json:"loaded_at"`
	Projects []project.Project `json:"-"`
	Dropped  int               `json:"dropped"`
	// Notice carries the user-visible message when the load failed and the
	// snapshot degraded to an empty set.
	Notice string `json:"notice,omitempty"`
}

// Cache memoizes the parsed base set. The source is read at most once
// until Reload discards the snapshot; there is no implicit invalidation.
type Cache struct {
	source Source
	parser *project.Parser
	logger *slog.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewCache creates a cache over the given source and parser.
func NewCache(source Source, parser *project.Parser, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{source: source, parser: parser, logger: logger}
}

// Snapshot returns the cached snapshot, loading it on first use. A failed
// load yields an empty snapshot with a notice rather than an error.
func (c *Cache) Snapshot(ctx context.Context) *Snapshot {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return snap
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil {
		c.snap = c.load(ctx)
	}
	return c.snap
}

// Reload discards the cached snapshot and loads a fresh one.
func (c *Cache) Reload(ctx context.Context) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = c.load(ctx)
	return c.snap
}

func (c *Cache) load(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		LoadedAt: time.Now(),
	}

	reader, err := c.source.Open(ctx)
	if err != nil {
		c.logger.Error("export unavailable, serving empty set", "error", err)
		snap.Notice = "No se pudieron cargar los datos. Verifica que el archivo de datos esté presente."
		return snap
	}

	result, err := c.parser.Parse(reader)
	if err != nil {
		c.logger.Error("export unreadable, serving empty set", "error", err)
		snap.Notice = "No se pudieron cargar los datos. Verifica que el archivo de datos esté presente."
		return snap
	}

	snap.Projects = result.Projects
	snap.Dropped = result.Dropped
	c.logger.Info("export loaded", "snapshot_id", snap.ID, "projects", len(snap.Projects), "dropped", snap.Dropped)
	return snap
}
