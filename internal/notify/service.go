package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindwell/intake-platform/internal/events"
	"github.com/mindwell/intake-platform/pkg/logging"
)

// Service turns completion events into emails for the practice inbox.
type Service struct {
	email        EmailSender
	inbox        string
	practiceName string
	logger       *logging.Logger
}

// NewService creates a notification service. A nil sender falls back to
// the logging stub.
func NewService(email EmailSender, inbox, practiceName string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if email == nil {
		email = NewLogSender(logger)
	}
	if practiceName == "" {
		practiceName = "MindWell Therapy"
	}
	return &Service{
		email:        email,
		inbox:        inbox,
		practiceName: practiceName,
		logger:       logger,
	}
}

// NotifyIntakeCompleted emails the practice inbox about a completed
// intake. The wizard calls it fire-and-forget.
func (s *Service) NotifyIntakeCompleted(ctx context.Context, evt events.IntakeCompletedV1) error {
	if s.inbox == "" {
		s.logger.Debug("notify: inbox not configured, skipping notification",
			"session_id", evt.SessionID)
		return nil
	}

	subject := fmt.Sprintf("[%s] New %s submission", s.practiceName, evt.Flow)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", evt.Summary)
	fmt.Fprintf(&b, "Session: %s\n", evt.SessionID)
	fmt.Fprintf(&b, "Received: %s\n", evt.CompletedAt.Format("January 2, 2006 at 3:04 PM"))
	for _, field := range []string{"name", "email", "phone", "service", "date", "time", "urgency"} {
		if v := evt.Fields[field]; v != "" {
			fmt.Fprintf(&b, "%s: %s\n", field, v)
		}
	}

	msg := EmailMessage{
		To:      s.inbox,
		ToName:  s.practiceName,
		Subject: subject,
		Body:    b.String(),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("notify: intake notification failed",
			"error", err, "session_id", evt.SessionID)
		return fmt.Errorf("notify: send intake notification: %w", err)
	}
	s.logger.Info("intake notification sent",
		"session_id", evt.SessionID, "flow", evt.Flow)
	return nil
}

// NotifyPaymentResolved records the outcome of a simulated charge.
// Successful charges email the inbox; declines are only logged, since
// the client is still in the flow and may retry.
func (s *Service) NotifyPaymentResolved(ctx context.Context, evt events.PaymentResolvedV1) error {
	if evt.Status != "success" {
		s.logger.Info("payment declined",
			"session_id", evt.SessionID, "amount", evt.Amount, "method", evt.Method)
		return nil
	}
	if s.inbox == "" {
		s.logger.Debug("notify: inbox not configured, skipping notification",
			"session_id", evt.SessionID)
		return nil
	}

	msg := EmailMessage{
		To:      s.inbox,
		ToName:  s.practiceName,
		Subject: fmt.Sprintf("[%s] Payment received", s.practiceName),
		Body: fmt.Sprintf("Payment of $%.2f via %s for session %s\nProcessed: %s\n",
			float64(evt.Amount), evt.Method, evt.SessionID,
			evt.OccurredAt.Format("January 2, 2006 at 3:04 PM")),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("notify: payment notification failed",
			"error", err, "session_id", evt.SessionID)
		return fmt.Errorf("notify: send payment notification: %w", err)
	}
	s.logger.Info("payment notification sent",
		"session_id", evt.SessionID, "amount", evt.Amount)
	return nil
}
