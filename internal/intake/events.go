package intake

import "github.com/mindwell/intake-platform/internal/payments"

// Event is a tagged user action dispatched against a wizard. The wizard
// also reacts to internal results (payment outcome, submit outcome,
// auto-reset) but those are scheduled by the wizard itself and never
// cross the API boundary.
type Event interface {
	isEvent()
}

// EditField sets one field value and clears that field's error.
type EditField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Next attempts to advance past the current step. Validation failures
// reject the advance and populate field errors; they are not faults.
type Next struct{}

// Back returns to the previous step, or from the payment screen back to
// the form. No validation runs.
type Back struct{}

// Cancel discards the session from any non-terminal state.
type Cancel struct{}

// Retry re-enters Submitting after a failed submission.
type Retry struct{}

// SubmitPayment confirms the simulated charge while awaiting payment.
type SubmitPayment struct {
	Card payments.CardDetails `json:"card"`
}

func (EditField) isEvent()     {}
func (Next) isEvent()          {}
func (Back) isEvent()          {}
func (Cancel) isEvent()        {}
func (Retry) isEvent()         {}
func (SubmitPayment) isEvent() {}
