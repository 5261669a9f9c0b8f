package shutdown

import (
	"testing"
	"time"

	"year-progress/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.Nop{})

	var order []string
	m.Register("session", Func(func() { order = append(order, "session") }))
	m.Register("view", Func(func() { order = append(order, "view") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"view", "session"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.Nop{})
	m.SetStepTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	m.Register("stuck", Func(func() { <-release }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown blocked on a stuck component")
	}
}
