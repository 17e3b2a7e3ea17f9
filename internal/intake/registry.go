package intake

import (
	"sync"
	"time"

	"github.com/mindwell/intake-platform/internal/catalog"
	"github.com/mindwell/intake-platform/internal/observability/metrics"
	"github.com/mindwell/intake-platform/internal/payments"
	"github.com/mindwell/intake-platform/internal/sched"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// Deps carries the collaborators shared by every wizard the registry
// opens.
type Deps struct {
	Catalog   *catalog.Catalog
	Processor *payments.Processor
	Tasks     *sched.Table
	Notifier  Notifier
	Metrics   *metrics.IntakeMetrics
	Logger    *logging.Logger
	Options   Options

	// Clock feeds the booking date rule. Defaults to time.Now.
	Clock func() time.Time
}

// Registry owns the live sessions. Each flow kind opened yields an
// independent wizard; nothing is shared between sessions beyond the
// immutable flow definitions.
type Registry struct {
	mu      sync.RWMutex
	flows   map[FlowKind]*Flow
	wizards map[string]*Wizard
	deps    Deps
}

// NewRegistry builds the flow definitions and an empty session map.
func NewRegistry(deps Deps) *Registry {
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Tasks == nil {
		deps.Tasks = sched.NewTable()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &Registry{
		flows: map[FlowKind]*Flow{
			FlowContact:     NewContactFlow(deps.Catalog),
			FlowBooking:     NewBookingFlow(deps.Catalog, deps.Clock),
			FlowTestimonial: NewTestimonialFlow(deps.Catalog),
		},
		wizards: make(map[string]*Wizard),
		deps:    deps,
	}
}

// Open starts a session for the flow kind. seed values land on top of
// the flow defaults; the booking modal uses it to pin the therapist the
// visitor clicked.
func (r *Registry) Open(kind FlowKind, seed map[string]string) (*Wizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flow, ok := r.flows[kind]
	if !ok {
		return nil, ErrUnknownFlow
	}
	w := NewWizard(flow, r.deps.Processor, r.deps.Tasks, r.deps.Notifier,
		r.deps.Metrics, r.deps.Logger, r.deps.Options, seed)
	r.wizards[w.ID()] = w
	return w, nil
}

// Get looks up a live session.
func (r *Registry) Get(id string) (*Wizard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wizards[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

// Dismiss discards a session, cancelling any scheduled work it still
// has pending.
func (r *Registry) Dismiss(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wizards[id]
	if !ok {
		return ErrSessionNotFound
	}
	w.Dismiss()
	delete(r.wizards, id)
	return nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wizards)
}
