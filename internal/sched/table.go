// Package sched tracks cancellable one-shot timers keyed by owner and
// task kind. Scheduling a kind replaces any pending timer of that kind
// for the same owner, and disposing an owner cancels everything it still
// has pending, so a discarded session can never be mutated by a stale
// callback.
package sched

import (
	"sync"
	"time"
)

// Kind names a category of scheduled work. Only one task per (owner,
// kind) pair may be pending at a time.
type Kind string

type entry struct {
	timer *time.Timer
	gen   uint64
}

// Table is a registry of pending timers. The zero value is not usable;
// construct with NewTable.
type Table struct {
	mu     sync.Mutex
	gen    uint64
	owners map[string]map[Kind]*entry
}

// NewTable creates an empty task table.
func NewTable() *Table {
	return &Table{owners: make(map[string]map[Kind]*entry)}
}

// Schedule runs fn after delay on behalf of ownerID. Any pending task of
// the same kind for that owner is cancelled first: last-issued-wins. fn
// runs on the timer goroutine exactly once, or never if superseded or
// cancelled.
func (t *Table) Schedule(ownerID string, kind Kind, delay time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds, ok := t.owners[ownerID]
	if !ok {
		kinds = make(map[Kind]*entry)
		t.owners[ownerID] = kinds
	}
	if prev, ok := kinds[kind]; ok {
		prev.timer.Stop()
	}

	t.gen++
	gen := t.gen
	e := &entry{gen: gen}
	e.timer = time.AfterFunc(delay, func() {
		if !t.claim(ownerID, kind, gen) {
			return
		}
		fn()
	})
	kinds[kind] = e
}

// claim removes the entry if it is still the current one for its slot.
// A false return means the task was superseded or cancelled after its
// timer fired but before it ran.
func (t *Table) claim(ownerID string, kind Kind, gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds, ok := t.owners[ownerID]
	if !ok {
		return false
	}
	e, ok := kinds[kind]
	if !ok || e.gen != gen {
		return false
	}
	delete(kinds, kind)
	if len(kinds) == 0 {
		delete(t.owners, ownerID)
	}
	return true
}

// Cancel stops the pending task of the given kind, reporting whether one
// was pending.
func (t *Table) Cancel(ownerID string, kind Kind) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds, ok := t.owners[ownerID]
	if !ok {
		return false
	}
	e, ok := kinds[kind]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(kinds, kind)
	if len(kinds) == 0 {
		delete(t.owners, ownerID)
	}
	return true
}

// CancelAll stops every pending task for ownerID.
func (t *Table) CancelAll(ownerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range t.owners[ownerID] {
		e.timer.Stop()
	}
	delete(t.owners, ownerID)
}

// Pending reports how many tasks the owner still has scheduled.
func (t *Table) Pending(ownerID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.owners[ownerID])
}
