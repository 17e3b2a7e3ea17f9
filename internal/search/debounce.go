package search

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/sched"
)

const taskDebounce sched.Kind = "search_debounce"

// Debouncer delays matching until a query has been quiet for the
// configured interval. A query change while a pass is pending cancels it,
// so only the most recent query is ever matched and delivered.
type Debouncer struct {
	index   *Index
	delay   time.Duration
	tasks   *sched.Table
	ownerID string
	deliver func(query string, results []catalog.SearchDocument)
}

// NewDebouncer wraps index with a quiescence interval. deliver is called
// on a timer goroutine with the matched query and its results; queries
// below MinQueryLength are delivered immediately as empty.
func NewDebouncer(index *Index, delay time.Duration, tasks *sched.Table, deliver func(query string, results []catalog.SearchDocument)) *Debouncer {
	if tasks == nil {
		tasks = sched.NewTable()
	}
	return &Debouncer{
		index:   index,
		delay:   delay,
		tasks:   tasks,
		ownerID: "search:" + uuid.NewString(),
		deliver: deliver,
	}
}

// QueryChanged schedules a matching pass for q, superseding any pending
// pass. Short queries short-circuit: the pending pass is cancelled and an
// empty result set is delivered without waiting out the interval.
func (d *Debouncer) QueryChanged(q string) {
	if len(strings.TrimSpace(q)) < MinQueryLength {
		d.tasks.Cancel(d.ownerID, taskDebounce)
		d.deliver(q, nil)
		return
	}
	d.tasks.Schedule(d.ownerID, taskDebounce, d.delay, func() {
		d.deliver(q, d.index.Match(q))
	})
}

// Stop cancels any pending matching pass. Call when the consumer goes
// away so a stale pass cannot deliver into a closed channel or socket.
func (d *Debouncer) Stop() {
	d.tasks.CancelAll(d.ownerID)
}
