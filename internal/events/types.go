package events

import "time"

// IntakeCompletedV1 is emitted once when a session reaches Completed.
// Consumers (confirmation messaging) receive it fire-and-forget; the core
// never waits for acknowledgment.
type IntakeCompletedV1 struct {
	EventID     string            `json:"event_id"`
	SessionID   string            `json:"session_id"`
	Flow        string            `json:"flow"`
	Summary     string            `json:"summary"`
	Fields      map[string]string `json:"fields,omitempty"`
	CompletedAt time.Time         `json:"completed_at"`
}

// PaymentResolvedV1 records the outcome of a simulated payment attempt
// within a session.
type PaymentResolvedV1 struct {
	EventID    string    `json:"event_id"`
	SessionID  string    `json:"session_id"`
	Amount     int       `json:"amount"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
