package notify

import (
	"context"

	"github.com/mindwell/intake-platform/pkg/logging"
)

// EmailSender defines the interface for delivering practice emails.
// No real delivery backend ships with this service; implementations can
// be swapped in without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// LogSender writes the email to the structured log instead of sending
// it. It is the default sender.
type LogSender struct {
	logger *logging.Logger
}

// NewLogSender creates a sender that logs instead of delivering.
func NewLogSender(logger *logging.Logger) *LogSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *LogSender) Send(_ context.Context, msg EmailMessage) error {
	s.logger.Info("email sender stubbed: would send email",
		"to", msg.To, "subject", msg.Subject)
	return nil
}
