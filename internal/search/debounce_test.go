package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/intake-platform/internal/catalog"
)

type sink struct {
	mu      sync.Mutex
	queries []string
	counts  []int
	signal  chan struct{}
}

func newSink() *sink {
	return &sink{signal: make(chan struct{}, 16)}
}

func (c *sink) deliver(q string, results []catalog.SearchDocument) {
	c.mu.Lock()
	c.queries = append(c.queries, q)
	c.counts = append(c.counts, len(results))
	c.mu.Unlock()
	c.signal <- struct{}{}
}

func (c *sink) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.signal:
	case <-time.After(time.Second):
		t.Fatal("no delivery within timeout")
	}
}

func (c *sink) snapshot() ([]string, []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...), append([]int(nil), c.counts...)
}

func TestDebouncerDeliversAfterQuiescence(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)
	sink := newSink()
	d := NewDebouncer(ix, 10*time.Millisecond, nil, sink.deliver)
	defer d.Stop()

	d.QueryChanged("couples")
	sink.wait(t)

	queries, counts := sink.snapshot()
	require.Len(t, queries, 1)
	assert.Equal(t, "couples", queries[0])
	assert.Greater(t, counts[0], 0)
}

func TestDebouncerOnlyMatchesLatestQuery(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)
	sink := newSink()
	d := NewDebouncer(ix, 30*time.Millisecond, nil, sink.deliver)
	defer d.Stop()

	d.QueryChanged("anxiety")
	d.QueryChanged("anxie")
	d.QueryChanged("couples")
	sink.wait(t)

	// allow any superseded timer a chance to misfire
	time.Sleep(60 * time.Millisecond)

	queries, _ := sink.snapshot()
	require.Len(t, queries, 1, "superseded queries must never be matched")
	assert.Equal(t, "couples", queries[0])
}

func TestDebouncerShortQueryShortCircuits(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)
	sink := newSink()
	d := NewDebouncer(ix, 50*time.Millisecond, nil, sink.deliver)
	defer d.Stop()

	start := time.Now()
	d.QueryChanged("a")
	sink.wait(t)

	assert.Less(t, time.Since(start), 50*time.Millisecond, "short queries should not wait out the interval")
	queries, counts := sink.snapshot()
	require.Len(t, queries, 1)
	assert.Equal(t, 0, counts[0])
}

func TestDebouncerShortQueryCancelsPendingPass(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)
	sink := newSink()
	d := NewDebouncer(ix, 30*time.Millisecond, nil, sink.deliver)
	defer d.Stop()

	d.QueryChanged("couples")
	d.QueryChanged("") // user cleared the box
	sink.wait(t)

	time.Sleep(60 * time.Millisecond)
	queries, counts := sink.snapshot()
	require.Len(t, queries, 1)
	assert.Equal(t, "", queries[0])
	assert.Equal(t, 0, counts[0])
}

func TestStopCancelsPending(t *testing.T) {
	ix := NewIndex(catalog.Default().Documents)
	sink := newSink()
	d := NewDebouncer(ix, 20*time.Millisecond, nil, sink.deliver)

	d.QueryChanged("couples")
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	queries, _ := sink.snapshot()
	assert.Empty(t, queries)
}
