package server

import (
	"sync"

	"photo-viewer/internal/catalog"
	"photo-viewer/internal/selection"
	"photo-viewer/internal/viewer"
)

// Handlers bundles the HTTP-facing collaborators. The selection store and
// the live session handle carry a single-goroutine contract, so every
// handler that touches them holds mu; the engine itself serializes on its
// own dispatch loop and needs no guarding.
type Handlers struct {
	catalog  *catalog.Catalog
	ingestor *catalog.Ingestor
	store    *selection.Store
	actions  *catalog.Actions
	engine   *viewer.Engine
	stats    *catalog.StatsSource

	mu      sync.Mutex
	session *viewer.Session
}

// New wires handlers to their collaborators.
func New(c *catalog.Catalog, ing *catalog.Ingestor, store *selection.Store, actions *catalog.Actions, engine *viewer.Engine) *Handlers {
	return &Handlers{
		catalog:  c,
		ingestor: ing,
		store:    store,
		actions:  actions,
		engine:   engine,
		stats:    catalog.NewStatsSource(c),
	}
}
