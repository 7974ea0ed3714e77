package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitInvokesListenersInOrder(t *testing.T) {
	e := New()

	var calls []string
	e.On("posts.create", func(data any) { calls = append(calls, "first") })
	e.On("posts.create", func(data any) { calls = append(calls, "second") })

	e.Emit("posts.create", nil)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestEmitPassesData(t *testing.T) {
	e := New()

	var got any
	e.On("search.performed", func(data any) { got = data })

	e.Emit("search.performed", "payload")

	assert.Equal(t, "payload", got)
}

func TestEmitUnknownEventIsNoop(t *testing.T) {
	e := New()

	assert.NotPanics(t, func() {
		e.Emit("never.registered", nil)
	})
}
