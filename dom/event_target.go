package dom

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// EventTarget defines the DOM EventTarget interface
// https://dom.spec.whatwg.org/#interface-eventtarget
type EventTarget interface {
	// AddEventListener registers an event handler of a specific event type on the EventTarget
	AddEventListener(typ string, listener EventListener, opts AddEventListenerOptions)
	// RemoveEventListener removes an event listener from the EventTarget
	RemoveEventListener(typ string, listener EventListener, opts EventListenerOptions)
	// DispatchEvent dispatches an event to this EventTarget
	DispatchEvent(event Event) bool

	updateListeners(fn func(m listenerMap))
	listeners(typ string) []*registration
	parentTarget() EventTarget
	logger() *slog.Logger
}

// EventListener handles dispatched events.
// Listeners are matched by ==, so implementations must be comparable;
// use NewEventListener to wrap a function.
type EventListener interface {
	HandleEvent(event Event) error
}

type EventListenerOptions struct {
	Capture bool
}

type AddEventListenerOptions struct {
	EventListenerOptions
	Passive bool
	Once    bool
	// Signal removes the listener once it is done.
	Signal context.Context
}

// NewEventListener creates a new EventListener. Every call returns a
// distinct listener, even for the same function.
func NewEventListener(fn func(Event) error) EventListener {
	return &funcListener{fn: fn, id: newID()}
}

var ids atomic.Uint32

func newID() uint32 { return ids.Add(1) }

type funcListener struct {
	fn func(Event) error
	id uint32
}

func (l *funcListener) HandleEvent(event Event) error { return l.fn(event) }

type registration struct {
	listener EventListener
	opts     AddEventListenerOptions
	removed  atomic.Bool
	stop     func() bool
}

type listenerMap map[string][]*registration

func (m listenerMap) add(typ string, r *registration) bool {
	for _, e := range m[typ] {
		if e.listener == r.listener && e.opts.Capture == r.opts.Capture {
			return false
		}
	}
	m[typ] = append(m[typ], r)
	return true
}

func (m listenerMap) remove(typ string, listener EventListener, capture bool) *registration {
	list := m[typ]
	for i, e := range list {
		if e.listener == listener && e.opts.Capture == capture {
			if len(list) == 1 {
				delete(m, typ)
			} else {
				m[typ] = slices.Delete(list, i, i+1)
			}
			return e
		}
	}
	return nil
}

func addEventListener(t EventTarget, typ string, listener EventListener, opts AddEventListenerOptions) {
	if listener == nil {
		return
	}
	if opts.Signal != nil && opts.Signal.Err() != nil {
		return
	}

	r := &registration{listener: listener, opts: opts}
	if opts.Signal != nil {
		r.stop = context.AfterFunc(opts.Signal, func() {
			removeEventListener(t, typ, listener, opts.EventListenerOptions)
		})
	}

	var added bool
	t.updateListeners(func(m listenerMap) { added = m.add(typ, r) })

	if r.stop != nil {
		if !added {
			r.stop()
		} else if opts.Signal.Err() != nil {
			removeEventListener(t, typ, listener, opts.EventListenerOptions)
		}
	}
}

func removeEventListener(t EventTarget, typ string, listener EventListener, opts EventListenerOptions) {
	if listener == nil {
		return
	}
	var r *registration
	t.updateListeners(func(m listenerMap) { r = m.remove(typ, listener, opts.Capture) })
	if r == nil {
		return
	}
	r.removed.Store(true)
	if r.stop != nil {
		r.stop()
	}
}

// dispatchEvent runs the capture, target and bubble phases over the
// parent chain of t. It returns false if the event was canceled.
func dispatchEvent(t EventTarget, e Event) bool {
	evt := e.base()
	if evt.dispatching {
		return !evt.defaultPrevented
	}
	evt.dispatching = true
	evt.target = t

	path := []EventTarget{t}
	for p := t.parentTarget(); p != nil; p = p.parentTarget() {
		path = append(path, p)
	}

	// Capture phase, from root to target's parent
	evt.eventPhase = EventPhaseCapturing
	for i := len(path) - 1; i > 0 && !evt.propagationStopped; i-- {
		invokeListeners(path[i], e, true)
	}

	// Target phase, capturing listeners first
	if !evt.propagationStopped {
		evt.eventPhase = EventPhaseAtTarget
		invokeListeners(t, e, true)
	}
	if !evt.propagationStopped {
		invokeListeners(t, e, false)
	}

	// Bubble phase
	if evt.bubbles {
		evt.eventPhase = EventPhaseBubbling
		for i := 1; i < len(path) && !evt.propagationStopped; i++ {
			invokeListeners(path[i], e, false)
		}
	}

	evt.eventPhase = EventPhaseNone
	evt.currentTarget = nil
	evt.dispatching = false
	evt.propagationStopped = false
	evt.immediatePropagationStopped = false

	return !evt.defaultPrevented
}

func invokeListeners(t EventTarget, e Event, capture bool) {
	evt := e.base()
	evt.currentTarget = t

	for _, r := range t.listeners(evt.typ) {
		if evt.immediatePropagationStopped {
			break
		}
		if r.opts.Capture != capture || r.removed.Load() {
			continue
		}

		if r.opts.Once {
			removeEventListener(t, evt.typ, r.listener, r.opts.EventListenerOptions)
		}

		evt.inPassiveListener = r.opts.Passive
		if err := r.listener.HandleEvent(e); err != nil {
			t.logger().Error("Uncaught Error", "type", evt.typ, "error", err)
		}
		evt.inPassiveListener = false
	}
}

// Target is a standalone EventTarget not attached to any node.
type Target struct {
	mu        sync.Mutex
	listenerM listenerMap
	parent    EventTarget
}

// NewEventTarget creates a new EventTarget instance
func NewEventTarget() *Target {
	return &Target{listenerM: make(listenerMap)}
}

// SetParent sets the target the events propagate to.
func (t *Target) SetParent(parent EventTarget) { t.parent = parent }

func (t *Target) AddEventListener(typ string, listener EventListener, opts AddEventListenerOptions) {
	addEventListener(t, typ, listener, opts)
}

func (t *Target) RemoveEventListener(typ string, listener EventListener, opts EventListenerOptions) {
	removeEventListener(t, typ, listener, opts)
}

func (t *Target) DispatchEvent(event Event) bool { return dispatchEvent(t, event) }

func (t *Target) updateListeners(fn func(m listenerMap)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.listenerM)
}

func (t *Target) listeners(typ string) []*registration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.listenerM[typ])
}

func (t *Target) parentTarget() EventTarget { return t.parent }

func (t *Target) logger() *slog.Logger { return slog.Default() }
