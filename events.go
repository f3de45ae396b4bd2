package domkit

import "github.com/shiroyk/domkit/dom"

type (
	// Listener receives dispatched events.
	Listener = dom.EventListener
	// Options controls a listener registration.
	Options = dom.AddEventListenerOptions
)

// NewListener returns a Listener calling fn. Each call returns a new
// identity, keep the value to remove it later.
func NewListener(fn func(dom.Event)) Listener {
	return dom.NewEventListener(func(e dom.Event) error {
		fn(e)
		return nil
	})
}

func options(opts []Options) (o Options) {
	if len(opts) > 0 {
		o = opts[0]
	}
	return
}

// Emit dispatches the event to the target and reports whether the
// default action was not prevented.
func Emit(target dom.EventTarget, event dom.Event) bool {
	return target.DispatchEvent(event)
}

// EmitCustom dispatches a non-bubbling CustomEvent carrying the
// params as its detail.
func EmitCustom(target dom.EventTarget, name string, params ...any) bool {
	if params == nil {
		params = []any{}
	}
	return target.DispatchEvent(dom.NewCustomEvent(name, params))
}

// On registers the listener for the event.
func On(target dom.EventTarget, event string, listener Listener, opts ...Options) {
	target.AddEventListener(event, listener, options(opts))
}

// OnEach registers the listener for every event.
func OnEach(target dom.EventTarget, events []string, listener Listener, opts ...Options) {
	o := options(opts)
	for _, event := range events {
		target.AddEventListener(event, listener, o)
	}
}

// Off removes the listener registered for the event with the same
// capture flag. Any other listener is left untouched.
func Off(target dom.EventTarget, event string, listener Listener, opts ...Options) {
	target.RemoveEventListener(event, listener, options(opts).EventListenerOptions)
}

// Once registers the listener to be invoked at most once.
func Once(target dom.EventTarget, event string, listener Listener, opts ...Options) {
	o := options(opts)
	o.Once = true
	target.AddEventListener(event, listener, o)
}
