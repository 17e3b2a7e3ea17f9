package intake

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindwell/intake-platform/internal/events"
	"github.com/mindwell/intake-platform/internal/observability/metrics"
	"github.com/mindwell/intake-platform/internal/payments"
	"github.com/mindwell/intake-platform/internal/sched"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// Scheduled task kinds. Only one task per kind may be pending for a
// session; scheduling replaces the prior one (last-issued-wins).
const (
	taskPayment sched.Kind = "payment"
	taskSubmit  sched.Kind = "submit"
	taskReset   sched.Kind = "reset"
)

// Notifier receives the outbound events. Delivery is fire-and-forget;
// the wizard never waits on it.
type Notifier interface {
	NotifyIntakeCompleted(ctx context.Context, evt events.IntakeCompletedV1) error
	NotifyPaymentResolved(ctx context.Context, evt events.PaymentResolvedV1) error
}

// Options tunes wizard timing and failure injection.
type Options struct {
	// SubmitDelay is the simulated submission latency.
	SubmitDelay time.Duration

	// ResetDelay overrides the per-flow auto-reset interval when > 0.
	ResetDelay time.Duration

	// SubmitFailureRate injects simulated submission failures. Zero
	// means submissions always succeed.
	SubmitFailureRate float64

	// MaxSubmitAttempts bounds retries after a failed submission. Zero
	// means unlimited.
	MaxSubmitAttempts int

	// DecideSubmit, when set, replaces SubmitFailureRate with a
	// deterministic outcome. Used by tests.
	DecideSubmit func() bool
}

// Wizard drives one FormSession through its flow. Every dispatch and
// every scheduled callback runs under the wizard mutex, so mutations of
// the session never interleave.
type Wizard struct {
	mu        sync.Mutex
	session   *FormSession
	flow      *Flow
	processor *payments.Processor
	tasks     *sched.Table
	notifier  Notifier
	metrics   *metrics.IntakeMetrics
	logger    *logging.Logger
	opts      Options

	submitStarted time.Time
}

// NewWizard opens a fresh session for the flow. seed values are applied
// over the flow defaults (the booking modal seeds the chosen therapist).
func NewWizard(flow *Flow, processor *payments.Processor, tasks *sched.Table, notifier Notifier, m *metrics.IntakeMetrics, logger *logging.Logger, opts Options, seed map[string]string) *Wizard {
	if logger == nil {
		logger = logging.Default()
	}
	if tasks == nil {
		tasks = sched.NewTable()
	}
	values := make(map[string]string, len(flow.Defaults)+len(seed))
	for k, v := range flow.Defaults {
		values[k] = v
	}
	for k, v := range seed {
		if v != "" {
			values[k] = v
		}
	}
	now := time.Now().UTC()
	w := &Wizard{
		session: &FormSession{
			ID:          uuid.NewString(),
			Flow:        flow.Kind,
			Step:        1,
			StepCount:   flow.StepCount(),
			Status:      StatusEditing,
			Values:      values,
			FieldErrors: make(map[string]string),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		flow:      flow,
		processor: processor,
		tasks:     tasks,
		notifier:  notifier,
		metrics:   m,
		logger:    logger.With("flow", string(flow.Kind)),
		opts:      opts,
	}
	m.ObserveSessionStarted(string(flow.Kind))
	return w
}

// ID returns the session id.
func (w *Wizard) ID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.ID
}

// State returns a copy of the current session.
func (w *Wizard) State() FormSession {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.clone()
}

// Summary computes the on-demand review projection, if the flow defines
// one and the session has reached the review step.
func (w *Wizard) Summary() (BookingSummary, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.flow.Project == nil || w.session.Step < w.session.StepCount {
		return BookingSummary{}, false
	}
	return w.flow.Project(w.session.Values)
}

// Dispatch applies one event. Every state/event pair is defined: events
// the current status does not accept return the unchanged session with
// an error, and a Next that fails validation returns the session with
// populated field errors and no error.
func (w *Wizard) Dispatch(ev Event) (FormSession, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	switch e := ev.(type) {
	case EditField:
		err = w.editField(e)
	case Next:
		err = w.next()
	case Back:
		err = w.back()
	case Cancel:
		err = w.cancel()
	case Retry:
		err = w.retry()
	case SubmitPayment:
		err = w.submitPayment(e)
	default:
		err = ErrUnknownEvent
	}
	if err == nil {
		w.session.UpdatedAt = time.Now().UTC()
	}
	return w.session.clone(), err
}

// Dismiss cancels every pending scheduled task. The registry calls it
// when the session is discarded so no callback mutates a freed session.
func (w *Wizard) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tasks.CancelAll(w.session.ID)
}

func (w *Wizard) editField(e EditField) error {
	s := w.session
	if s.Terminal() {
		return ErrTerminalSession
	}
	if s.Status != StatusEditing {
		return ErrEventNotAllowed
	}
	s.Values[e.Field] = e.Value
	delete(s.FieldErrors, e.Field)
	return nil
}

func (w *Wizard) next() error {
	s := w.session
	if s.Terminal() {
		return ErrTerminalSession
	}
	if s.Status != StatusEditing {
		return ErrEventNotAllowed
	}

	s.Status = StatusValidating
	errs := w.flow.Validate(s.Step, s.Values)
	if len(errs) > 0 {
		s.FieldErrors = errs
		s.Status = StatusEditing
		for field := range errs {
			w.metrics.ObserveValidationFailure(string(s.Flow), field)
		}
		w.logger.Info("step rejected by validation",
			"session_id", s.ID, "step", s.Step, "fields", len(errs))
		return nil
	}
	s.FieldErrors = make(map[string]string)

	if s.Step < s.StepCount {
		s.Step++
		s.Status = StatusEditing
		w.logger.Info("step advanced", "session_id", s.ID, "step", s.Step)
		return nil
	}

	// End of data entry: self-pay goes through the payment subflow,
	// everything else submits directly.
	if w.flow.Amount != nil && s.Values["paymentMethod"] == "self-pay" {
		s.Status = StatusAwaitingPayment
		s.SessionError = ""
		w.logger.Info("awaiting payment", "session_id", s.ID)
		return nil
	}
	w.beginSubmit()
	return nil
}

func (w *Wizard) back() error {
	s := w.session
	if s.Terminal() {
		return ErrTerminalSession
	}
	switch {
	case s.Status == StatusAwaitingPayment:
		// Back to the form, staying on the last step.
		s.Status = StatusEditing
		s.SessionError = ""
		return nil
	case s.Status == StatusEditing && s.Step > 1:
		s.Step--
		return nil
	default:
		return ErrEventNotAllowed
	}
}

func (w *Wizard) cancel() error {
	s := w.session
	switch s.Status {
	case StatusCompleted, StatusCancelled:
		return ErrTerminalSession
	}
	w.tasks.CancelAll(s.ID)
	s.Status = StatusCancelled
	w.metrics.ObserveSessionResolved(string(s.Flow), string(StatusCancelled))
	w.logger.Info("session cancelled", "session_id", s.ID)
	return nil
}

func (w *Wizard) retry() error {
	s := w.session
	if s.Status != StatusFailed {
		if s.Status == StatusCompleted || s.Status == StatusCancelled {
			return ErrTerminalSession
		}
		return ErrEventNotAllowed
	}
	if w.opts.MaxSubmitAttempts > 0 && s.SubmitAttempts >= w.opts.MaxSubmitAttempts {
		return ErrRetryExhausted
	}
	w.beginSubmit()
	return nil
}

func (w *Wizard) submitPayment(e SubmitPayment) error {
	s := w.session
	if s.Terminal() {
		return ErrTerminalSession
	}
	if s.Status != StatusAwaitingPayment || w.processor == nil {
		return ErrEventNotAllowed
	}

	amount := w.flow.Amount(s.Values)
	method := s.Values["paymentMethod"]
	s.SessionError = ""
	s.LastPayment = &payments.Attempt{
		Amount:    amount,
		Method:    method,
		Status:    payments.StatusPending,
		Timestamp: time.Now().UTC(),
	}

	w.tasks.Schedule(s.ID, taskPayment, w.processor.Delay(), func() {
		attempt := w.processor.Authorize(amount, method, e.Card)

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.session.Status != StatusAwaitingPayment {
			return
		}
		w.session.LastPayment = &attempt
		w.metrics.ObservePaymentAttempt(string(attempt.Status))
		w.emitPaymentResolved(attempt)
		if attempt.Status == payments.StatusSuccess {
			w.beginSubmit()
			return
		}
		w.session.SessionError = "Your card was declined. Please try again."
	})
	return nil
}

// emitPaymentResolved publishes the payment outcome fire-and-forget.
// Callers hold the wizard mutex.
func (w *Wizard) emitPaymentResolved(attempt payments.Attempt) {
	if w.notifier == nil {
		return
	}
	evt := events.PaymentResolvedV1{
		EventID:    uuid.NewString(),
		SessionID:  w.session.ID,
		Amount:     attempt.Amount,
		Method:     attempt.Method,
		Status:     string(attempt.Status),
		OccurredAt: attempt.Timestamp,
	}
	go func() {
		if err := w.notifier.NotifyPaymentResolved(context.Background(), evt); err != nil {
			w.logger.Error("payment notification failed",
				"session_id", evt.SessionID, "error", err)
		}
	}()
}

// beginSubmit enters Submitting and schedules the simulated submission.
// Callers hold the wizard mutex.
func (w *Wizard) beginSubmit() {
	s := w.session
	s.Status = StatusSubmitting
	s.SessionError = ""
	s.SubmitAttempts++
	w.submitStarted = time.Now()
	w.logger.Info("submitting", "session_id", s.ID, "attempt", s.SubmitAttempts)

	w.tasks.Schedule(s.ID, taskSubmit, w.opts.SubmitDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.session.Status != StatusSubmitting {
			return
		}
		if !w.submitSucceeds() {
			w.session.Status = StatusFailed
			w.session.SessionError = "Something went wrong. Please try again."
			w.metrics.ObserveSessionResolved(string(w.session.Flow), string(StatusFailed))
			w.logger.Warn("submission failed", "session_id", w.session.ID,
				"attempt", w.session.SubmitAttempts)
			return
		}
		w.complete()
	})
}

func (w *Wizard) submitSucceeds() bool {
	if w.opts.DecideSubmit != nil {
		return w.opts.DecideSubmit()
	}
	if w.opts.SubmitFailureRate <= 0 {
		return true
	}
	return rand.Float64() >= w.opts.SubmitFailureRate
}

// complete marks the session Completed, emits the notification event and
// schedules the auto-reset. Callers hold the wizard mutex.
func (w *Wizard) complete() {
	s := w.session
	s.Status = StatusCompleted
	w.metrics.ObserveSessionResolved(string(s.Flow), string(StatusCompleted))
	w.metrics.ObserveSubmitDuration(string(s.Flow), time.Since(w.submitStarted).Seconds())
	w.logger.Info("session completed", "session_id", s.ID)

	if w.notifier != nil {
		snapshot := s.clone()
		evt := events.IntakeCompletedV1{
			EventID:     uuid.NewString(),
			SessionID:   s.ID,
			Flow:        string(s.Flow),
			Summary:     w.flow.Summarize(snapshot.Values),
			Fields:      snapshot.Values,
			CompletedAt: time.Now().UTC(),
		}
		go func() {
			if err := w.notifier.NotifyIntakeCompleted(context.Background(), evt); err != nil {
				w.logger.Error("completion notification failed",
					"session_id", evt.SessionID, "error", err)
			}
		}()
	}

	w.tasks.Schedule(s.ID, taskReset, w.resetDelay(), func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.session.Status != StatusCompleted {
			return
		}
		w.resetLocked()
	})
}

func (w *Wizard) resetDelay() time.Duration {
	if w.opts.ResetDelay > 0 {
		return w.opts.ResetDelay
	}
	return w.flow.ResetDelay
}

// resetLocked returns the session to a fresh step 1. Callers hold the
// wizard mutex.
func (w *Wizard) resetLocked() {
	s := w.session
	values := make(map[string]string, len(w.flow.Defaults))
	for k, v := range w.flow.Defaults {
		values[k] = v
	}
	s.Values = values
	s.FieldErrors = make(map[string]string)
	s.SessionError = ""
	s.Step = 1
	s.Status = StatusEditing
	s.SubmitAttempts = 0
	s.LastPayment = nil
	s.UpdatedAt = time.Now().UTC()
	w.logger.Info("session reset", "session_id", s.ID)
}
