package intake

import (
	"time"

	"github.com/mindwell/intake-platform/internal/payments"
)

// FlowKind identifies one of the intake flows.
type FlowKind string

const (
	FlowContact     FlowKind = "contact"
	FlowBooking     FlowKind = "booking"
	FlowTestimonial FlowKind = "testimonial"
)

// Status is the lifecycle state of a FormSession.
type Status string

const (
	StatusEditing         Status = "editing"
	StatusValidating      Status = "validating"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusSubmitting      Status = "submitting"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusCancelled       Status = "cancelled"
)

// FormSession is the mutable record of one in-progress flow. It is owned
// by exactly one Wizard; callers only ever see copies.
type FormSession struct {
	ID             string            `json:"id"`
	Flow           FlowKind          `json:"flow"`
	Step           int               `json:"step"`
	StepCount      int               `json:"stepCount"`
	Status         Status            `json:"status"`
	Values         map[string]string `json:"values"`
	FieldErrors    map[string]string `json:"fieldErrors"`
	SessionError   string            `json:"sessionError,omitempty"`
	SubmitAttempts int               `json:"attempts"`
	LastPayment    *payments.Attempt `json:"lastPayment,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Terminal reports whether the session accepts no further field mutation.
func (s *FormSession) Terminal() bool {
	switch s.Status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

func (s *FormSession) clone() FormSession {
	out := *s
	out.Values = make(map[string]string, len(s.Values))
	for k, v := range s.Values {
		out.Values[k] = v
	}
	out.FieldErrors = make(map[string]string, len(s.FieldErrors))
	for k, v := range s.FieldErrors {
		out.FieldErrors[k] = v
	}
	if s.LastPayment != nil {
		attempt := *s.LastPayment
		out.LastPayment = &attempt
	}
	return out
}
