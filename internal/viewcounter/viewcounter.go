// Package viewcounter keeps a process-lifetime tally of view increments,
// separate from the durable views column. The tally starts empty on every
// restart and is only surfaced through the admin stats endpoint.
package viewcounter

import (
	"sync"

	"github.com/google/uuid"
)

type Tally struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int64
}

func New() *Tally {
	return &Tally{
		counts: make(map[uuid.UUID]int64),
	}
}

// Incr bumps the tally for a post and returns the new value.
func (t *Tally) Incr(postID uuid.UUID) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts[postID]++
	return t.counts[postID]
}

func (t *Tally) Get(postID uuid.UUID) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.counts[postID]
}

// Snapshot returns a copy of all tallies keyed by post id.
func (t *Tally) Snapshot() map[string]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := make(map[string]int64, len(t.counts))
	for id, count := range t.counts {
		snapshot[id.String()] = count
	}
	return snapshot
}

func (t *Tally) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.counts = make(map[uuid.UUID]int64)
}
