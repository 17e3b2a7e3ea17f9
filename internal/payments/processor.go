package payments

import (
	"math/rand"
	"time"

	"github.com/mindwell/intake-platform/pkg/logging"
)

// Status is the outcome of a payment attempt.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSuccess  Status = "success"
	StatusDeclined Status = "declined"
)

// Attempt records one simulated charge.
type Attempt struct {
	Amount    int       `json:"amount"`
	Method    string    `json:"method"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// CardDetails carries the fields collected by the payment form. They are
// never stored or transmitted; the simulation only needs their presence.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
	Name   string
}

// Processor simulates a payment provider. No real network call is made:
// callers wait Delay() and then Authorize. Declines happen only at the
// configured rate (default 0, charges always succeed); tests may
// install a deterministic Decide hook.
type Processor struct {
	delay       time.Duration
	declineRate float64
	decide      func() bool
	logger      *logging.Logger
}

// NewProcessor creates a simulated payment processor.
func NewProcessor(delay time.Duration, declineRate float64, logger *logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Processor{
		delay:       delay,
		declineRate: declineRate,
		logger:      logger,
	}
}

// WithDecide installs a deterministic approval hook, used by tests.
// decide returns true to approve.
func (p *Processor) WithDecide(decide func() bool) *Processor {
	p.decide = decide
	return p
}

// Delay reports the simulated processing latency.
func (p *Processor) Delay() time.Duration {
	return p.delay
}

// Authorize resolves a simulated charge. Callers are expected to invoke
// it after Delay() has elapsed.
func (p *Processor) Authorize(amount int, method string, card CardDetails) Attempt {
	attempt := Attempt{
		Amount:    amount,
		Method:    method,
		Status:    StatusSuccess,
		Timestamp: time.Now().UTC(),
	}
	if !p.approve() {
		attempt.Status = StatusDeclined
	}
	p.logger.Info("payment attempt resolved",
		"amount", amount,
		"method", method,
		"status", string(attempt.Status),
	)
	return attempt
}

func (p *Processor) approve() bool {
	if p.decide != nil {
		return p.decide()
	}
	if p.declineRate <= 0 {
		return true
	}
	return rand.Float64() >= p.declineRate
}
