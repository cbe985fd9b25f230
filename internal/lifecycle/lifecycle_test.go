package lifecycle

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitStopsComponentsInReverseOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	m.OnStop("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.OnStop("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- m.Wait() }()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after SIGTERM")
	}

	assert.Equal(t, []string{"second", "first"}, order)
}

func TestWaitJoinsStopErrors(t *testing.T) {
	m := New(time.Second, nil)

	stopErr := errors.New("listener already closed")
	m.OnStop("flaky", func(context.Context) error { return stopErr })
	m.OnStop("fine", func(context.Context) error { return nil })

	done := make(chan error, 1)
	go func() { done <- m.Wait() }()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, stopErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after SIGTERM")
	}
}
