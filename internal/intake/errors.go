package intake

import "errors"

var (
	// ErrSessionNotFound is returned by the registry for unknown session ids.
	ErrSessionNotFound = errors.New("intake: session not found")

	// ErrUnknownFlow is returned when opening a flow kind the registry
	// does not define.
	ErrUnknownFlow = errors.New("intake: unknown flow")

	// ErrTerminalSession rejects events against a session that already
	// reached Completed, Failed or Cancelled.
	ErrTerminalSession = errors.New("intake: session is terminal")

	// ErrEventNotAllowed rejects an event the current status does not
	// accept. The session is left unchanged.
	ErrEventNotAllowed = errors.New("intake: event not allowed in current status")

	// ErrRetryExhausted rejects a retry once the configured submit
	// attempt bound is reached.
	ErrRetryExhausted = errors.New("intake: submit attempts exhausted")

	// ErrUnknownEvent rejects event types the wizard does not recognize.
	ErrUnknownEvent = errors.New("intake: unknown event")
)
