package dom

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(count *int) EventListener {
	return NewEventListener(func(Event) error {
		*count++
		return nil
	})
}

func TestEventTarget(t *testing.T) {
	t.Parallel()

	t.Run("addEventListener", func(t *testing.T) {
		target := NewEventTarget()
		called := false
		target.AddEventListener("test", NewEventListener(func(e Event) error {
			called = true
			assert.Equal(t, "test", e.Type())
			assert.Equal(t, EventPhaseAtTarget, e.EventPhase())
			assert.Same(t, target, e.Target())
			assert.Same(t, target, e.CurrentTarget())
			return nil
		}), AddEventListenerOptions{})

		evt := NewEvent("test")
		assert.True(t, target.DispatchEvent(evt))
		assert.True(t, called)
		assert.Equal(t, EventPhaseNone, evt.EventPhase())
		assert.Nil(t, evt.CurrentTarget())
	})

	t.Run("removeEventListener", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		listener := counter(&count)

		target.AddEventListener("test", listener, AddEventListenerOptions{})
		target.RemoveEventListener("test", listener, EventListenerOptions{})
		target.DispatchEvent(NewEvent("test"))

		assert.Equal(t, 0, count)
	})

	t.Run("remove other listener", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		fn := func(Event) error { count++; return nil }
		listener := NewEventListener(fn)

		target.AddEventListener("test", listener, AddEventListenerOptions{})
		target.RemoveEventListener("test", NewEventListener(fn), EventListenerOptions{})
		target.DispatchEvent(NewEvent("test"))

		assert.Equal(t, 1, count)
	})

	t.Run("remove with other capture flag", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		listener := counter(&count)

		target.AddEventListener("test", listener, AddEventListenerOptions{EventListenerOptions: EventListenerOptions{Capture: true}})
		target.RemoveEventListener("test", listener, EventListenerOptions{})
		target.DispatchEvent(NewEvent("test"))

		assert.Equal(t, 1, count)
	})

	t.Run("multiple listeners", func(t *testing.T) {
		target := NewEventTarget()
		var order []int
		for i := range 3 {
			target.AddEventListener("test", NewEventListener(func(Event) error {
				order = append(order, i)
				return nil
			}), AddEventListenerOptions{})
		}
		target.DispatchEvent(NewEvent("test"))
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("duplicate listener", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		listener := counter(&count)
		target.AddEventListener("test", listener, AddEventListenerOptions{})
		target.AddEventListener("test", listener, AddEventListenerOptions{})
		target.DispatchEvent(NewEvent("test"))
		assert.Equal(t, 1, count)
	})

	t.Run("once option", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		target.AddEventListener("test", counter(&count), AddEventListenerOptions{Once: true})

		evt := NewEvent("test")
		target.DispatchEvent(evt)
		target.DispatchEvent(evt)

		assert.Equal(t, 1, count)
	})

	t.Run("preventDefault", func(t *testing.T) {
		target := NewEventTarget()
		target.AddEventListener("test", NewEventListener(func(e Event) error {
			e.PreventDefault()
			return nil
		}), AddEventListenerOptions{})

		assert.True(t, target.DispatchEvent(NewEvent("test")))
		evt := NewEvent("test", EventInit{Cancelable: true})
		assert.False(t, target.DispatchEvent(evt))
		assert.True(t, evt.DefaultPrevented())
	})

	t.Run("passive option", func(t *testing.T) {
		target := NewEventTarget()
		target.AddEventListener("test", NewEventListener(func(e Event) error {
			e.PreventDefault()
			return nil
		}), AddEventListenerOptions{Passive: true})

		evt := NewEvent("test", EventInit{Cancelable: true})
		assert.True(t, target.DispatchEvent(evt))
		assert.False(t, evt.DefaultPrevented())
	})

	t.Run("stopImmediatePropagation", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		target.AddEventListener("test", NewEventListener(func(e Event) error {
			count++
			e.StopImmediatePropagation()
			return nil
		}), AddEventListenerOptions{})
		target.AddEventListener("test", counter(&count), AddEventListenerOptions{})

		target.DispatchEvent(NewEvent("test"))
		assert.Equal(t, 1, count)
	})

	t.Run("remove during dispatch", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		second := counter(&count)
		target.AddEventListener("test", NewEventListener(func(Event) error {
			target.RemoveEventListener("test", second, EventListenerOptions{})
			return nil
		}), AddEventListenerOptions{})
		target.AddEventListener("test", second, AddEventListenerOptions{})

		target.DispatchEvent(NewEvent("test"))
		assert.Equal(t, 0, count)
	})

	t.Run("signal", func(t *testing.T) {
		target := NewEventTarget()
		count := 0
		ctx, cancel := context.WithCancel(context.Background())
		target.AddEventListener("test", counter(&count), AddEventListenerOptions{Signal: ctx})

		target.DispatchEvent(NewEvent("test"))
		cancel()
		require.Eventually(t, func() bool { return len(target.listeners("test")) == 0 }, time.Second, time.Millisecond)
		target.DispatchEvent(NewEvent("test"))

		assert.Equal(t, 1, count)

		target.AddEventListener("test", counter(&count), AddEventListenerOptions{Signal: ctx})
		assert.Empty(t, target.listeners("test"))
	})

	t.Run("parent", func(t *testing.T) {
		parent := NewEventTarget()
		child := NewEventTarget()
		child.SetParent(parent)

		var phases []EventPhase
		record := NewEventListener(func(e Event) error {
			phases = append(phases, e.EventPhase())
			return nil
		})
		parent.AddEventListener("test", record, AddEventListenerOptions{EventListenerOptions: EventListenerOptions{Capture: true}})
		parent.AddEventListener("test", record, AddEventListenerOptions{})
		child.AddEventListener("test", record, AddEventListenerOptions{})

		child.DispatchEvent(NewEvent("test", EventInit{Bubbles: true}))
		assert.Equal(t, []EventPhase{EventPhaseCapturing, EventPhaseAtTarget, EventPhaseBubbling}, phases)

		phases = nil
		child.DispatchEvent(NewEvent("test"))
		assert.Equal(t, []EventPhase{EventPhaseCapturing, EventPhaseAtTarget}, phases)
	})

	t.Run("listener error", func(t *testing.T) {
		buf := new(bytes.Buffer)
		doc := NewDocument(WithLogger(slog.New(slog.NewTextHandler(buf, nil))))
		el := doc.CreateElement("div")
		count := 0
		el.AddEventListener("test", NewEventListener(func(Event) error {
			return errors.New("boom")
		}), AddEventListenerOptions{})
		el.AddEventListener("test", counter(&count), AddEventListenerOptions{})

		el.DispatchEvent(NewEvent("test"))
		assert.Equal(t, 1, count)
		assert.Contains(t, buf.String(), "boom")
	})
}

func TestCustomEvent(t *testing.T) {
	t.Parallel()
	target := NewEventTarget()
	var got []any
	target.AddEventListener("foo", NewEventListener(func(e Event) error {
		got = e.(*CustomEvent[[]any]).Detail()
		assert.Equal(t, got, e.(Detailer).RawDetail())
		return nil
	}), AddEventListenerOptions{})

	target.DispatchEvent(NewCustomEvent("foo", []any{"a", 1, true}))
	assert.Equal(t, []any{"a", 1, true}, got)
}
