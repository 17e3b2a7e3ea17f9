package sched

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleRunsOnce(t *testing.T) {
	tbl := NewTable()
	done := make(chan struct{})

	tbl.Schedule("s1", "reset", 5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task never ran")
	}
	assert.Equal(t, 0, tbl.Pending("s1"))
}

func TestRescheduleSupersedesPending(t *testing.T) {
	tbl := NewTable()
	var first, second atomic.Int32
	done := make(chan struct{})

	tbl.Schedule("s1", "debounce", 50*time.Millisecond, func() { first.Add(1) })
	tbl.Schedule("s1", "debounce", 5*time.Millisecond, func() {
		second.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("replacement task never ran")
	}
	// give the superseded timer time to fire if it was going to
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load(), "superseded task must not run")
	assert.Equal(t, int32(1), second.Load())
}

func TestCancel(t *testing.T) {
	tbl := NewTable()
	var ran atomic.Int32

	tbl.Schedule("s1", "reset", 20*time.Millisecond, func() { ran.Add(1) })
	assert.True(t, tbl.Cancel("s1", "reset"))
	assert.False(t, tbl.Cancel("s1", "reset"))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
}

func TestCancelAllStopsEveryKind(t *testing.T) {
	tbl := NewTable()
	var ran atomic.Int32

	tbl.Schedule("s1", "reset", 20*time.Millisecond, func() { ran.Add(1) })
	tbl.Schedule("s1", "submit", 20*time.Millisecond, func() { ran.Add(1) })
	tbl.Schedule("s2", "reset", 20*time.Millisecond, func() { ran.Add(1) })

	assert.Equal(t, 2, tbl.Pending("s1"))
	tbl.CancelAll("s1")
	assert.Equal(t, 0, tbl.Pending("s1"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), ran.Load(), "only the other owner's task should run")
}

func TestKindsAreIndependent(t *testing.T) {
	tbl := NewTable()
	ranReset := make(chan struct{})
	ranSubmit := make(chan struct{})

	tbl.Schedule("s1", "reset", 5*time.Millisecond, func() { close(ranReset) })
	tbl.Schedule("s1", "submit", 5*time.Millisecond, func() { close(ranSubmit) })

	for _, ch := range []chan struct{}{ranReset, ranSubmit} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("task of an independent kind never ran")
		}
	}
}
