package services

import (
	"sync"
	"time"

	"learnhub/backend/store"
)

// API exposes the access functions over the store. A single mutex serializes
// every read-modify-write cycle, so two overlapping calls can never clobber
// each other's whole-collection writes.
type API struct {
	store *store.Store
	mu    sync.Mutex

	// latencyScale multiplies the per-operation delay weights that emulate
	// network latency. Zero disables the delays entirely.
	latencyScale float64
}

func New(st *store.Store, latencyScale float64) *API {
	return &API{store: st, latencyScale: latencyScale}
}

func (a *API) wait(d time.Duration) {
	if a.latencyScale <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * a.latencyScale))
}
