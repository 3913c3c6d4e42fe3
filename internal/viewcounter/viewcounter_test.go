package viewcounter

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestIncrConcurrent(t *testing.T) {
	tally := New()
	postID := uuid.New()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			tally.Incr(postID)
		}()
	}
	wg.Wait()

	if got := tally.Get(postID); got != n {
		t.Errorf("expected %d increments, got %d", n, got)
	}
}

func TestSnapshotAndReset(t *testing.T) {
	tally := New()
	a, b := uuid.New(), uuid.New()
	tally.Incr(a)
	tally.Incr(a)
	tally.Incr(b)

	snapshot := tally.Snapshot()
	if snapshot[a.String()] != 2 || snapshot[b.String()] != 1 {
		t.Errorf("unexpected snapshot: %v", snapshot)
	}

	// Snapshot is a copy.
	snapshot[a.String()] = 99
	if tally.Get(a) != 2 {
		t.Error("snapshot mutation leaked into the tally")
	}

	tally.Reset()
	if tally.Get(a) != 0 || tally.Get(b) != 0 {
		t.Error("reset did not clear the tally")
	}
}

func TestGetUnknownPost(t *testing.T) {
	tally := New()
	if got := tally.Get(uuid.New()); got != 0 {
		t.Errorf("expected 0 for unknown post, got %d", got)
	}
}
