package intake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOpenUnknownFlow(t *testing.T) {
	reg, _ := testRegistry(t, Options{})

	_, err := reg.Open(FlowKind("newsletter"), nil)
	assert.ErrorIs(t, err, ErrUnknownFlow)
}

func TestRegistryGetAndDismiss(t *testing.T) {
	reg, _ := testRegistry(t, Options{})
	w, err := reg.Open(FlowContact, nil)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	got, err := reg.Get(w.ID())
	require.NoError(t, err)
	assert.Same(t, w, got)

	require.NoError(t, reg.Dismiss(w.ID()))
	assert.Equal(t, 0, reg.Len())
	_, err = reg.Get(w.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, reg.Dismiss(w.ID()), ErrSessionNotFound)
}

func TestDismissCancelsScheduledWork(t *testing.T) {
	reg, notifier := testRegistry(t, Options{SubmitDelay: 20 * time.Millisecond})
	w, _ := reg.Open(FlowContact, nil)
	fillContact(t, w)

	_, err := w.Dispatch(Next{})
	require.NoError(t, err)
	require.Equal(t, StatusSubmitting, w.State().Status)

	require.NoError(t, reg.Dismiss(w.ID()))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, StatusSubmitting, w.State().Status, "dismissed session must not be mutated by stale callbacks")
	select {
	case <-notifier.ch:
		t.Fatal("dismissed session emitted a completion event")
	default:
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	reg, _ := testRegistry(t, Options{})
	a, _ := reg.Open(FlowBooking, map[string]string{"therapist": "sarah-mitchell"})
	b, _ := reg.Open(FlowBooking, map[string]string{"therapist": "james-thompson"})

	require.NotEqual(t, a.ID(), b.ID())

	_, err := a.Dispatch(EditField{Field: "notes", Value: "prefers mornings"})
	require.NoError(t, err)

	assert.Equal(t, "sarah-mitchell", a.State().Values["therapist"])
	assert.Equal(t, "james-thompson", b.State().Values["therapist"])
	assert.Empty(t, b.State().Values["notes"])
}
