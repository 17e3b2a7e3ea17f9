package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/intake-platform/internal/events"
)

type captureSender struct {
	sent []EmailMessage
	err  error
}

func (c *captureSender) Send(_ context.Context, msg EmailMessage) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

func completedEvent() events.IntakeCompletedV1 {
	return events.IntakeCompletedV1{
		EventID:   "evt-1",
		SessionID: "sess-1",
		Flow:      "booking",
		Summary:   "Couples Therapy on 2026-09-04 at 2:00 PM",
		Fields: map[string]string{
			"name":  "Jordan Reyes",
			"email": "jordan@example.com",
			"date":  "2026-09-04",
			"time":  "2:00 PM",
		},
		CompletedAt: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	}
}

func TestNotifyIntakeCompleted(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, "appointments@mindwelltherapy.com", "MindWell Therapy", nil)

	err := svc.NotifyIntakeCompleted(context.Background(), completedEvent())
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "appointments@mindwelltherapy.com", msg.To)
	assert.Equal(t, "[MindWell Therapy] New booking submission", msg.Subject)
	assert.Contains(t, msg.Body, "Couples Therapy")
	assert.Contains(t, msg.Body, "name: Jordan Reyes")
	assert.Contains(t, msg.Body, "sess-1")
}

func TestNotifySkipsWithoutInbox(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, "", "MindWell Therapy", nil)

	err := svc.NotifyIntakeCompleted(context.Background(), completedEvent())
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
}

func TestNotifyWrapsSendError(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp down")}
	svc := NewService(sender, "inbox@example.com", "", nil)

	err := svc.NotifyIntakeCompleted(context.Background(), completedEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notify:")
}

func TestNotifyPaymentResolvedSuccess(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, "appointments@mindwelltherapy.com", "MindWell Therapy", nil)

	err := svc.NotifyPaymentResolved(context.Background(), events.PaymentResolvedV1{
		EventID:    "evt-2",
		SessionID:  "sess-1",
		Amount:     180,
		Method:     "self-pay",
		Status:     "success",
		OccurredAt: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "[MindWell Therapy] Payment received", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].Body, "$180.00")
	assert.Contains(t, sender.sent[0].Body, "self-pay")
}

func TestNotifyPaymentResolvedDeclineOnlyLogs(t *testing.T) {
	sender := &captureSender{}
	svc := NewService(sender, "appointments@mindwelltherapy.com", "MindWell Therapy", nil)

	err := svc.NotifyPaymentResolved(context.Background(), events.PaymentResolvedV1{
		SessionID: "sess-1",
		Amount:    180,
		Method:    "self-pay",
		Status:    "declined",
	})
	require.NoError(t, err)
	assert.Empty(t, sender.sent, "declines must not email the inbox")
}

func TestLogSenderNeverFails(t *testing.T) {
	svc := NewService(nil, "inbox@example.com", "", nil)
	assert.NoError(t, svc.NotifyIntakeCompleted(context.Background(), completedEvent()))
}
