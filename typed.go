package domkit

import "github.com/shiroyk/domkit/dom"

// EventType is an event name bound to the concrete event type its
// listeners receive.
type EventType[E dom.Event] string

// Predeclared event types.
var (
	Click     = EventType[*dom.MouseEvent]("click")
	DblClick  = EventType[*dom.MouseEvent]("dblclick")
	MouseDown = EventType[*dom.MouseEvent]("mousedown")
	MouseUp   = EventType[*dom.MouseEvent]("mouseup")
	MouseMove = EventType[*dom.MouseEvent]("mousemove")
	MouseOver = EventType[*dom.MouseEvent]("mouseover")
	MouseOut  = EventType[*dom.MouseEvent]("mouseout")
	KeyDown   = EventType[*dom.KeyboardEvent]("keydown")
	KeyUp     = EventType[*dom.KeyboardEvent]("keyup")
	Input     = EventType[*dom.InputEvent]("input")
	Focus     = EventType[*dom.FocusEvent]("focus")
	Blur      = EventType[*dom.FocusEvent]("blur")
	Change    = EventType[*dom.BaseEvent]("change")
	Submit    = EventType[*dom.BaseEvent]("submit")
)

// Custom returns the event type of a CustomEvent carrying a T.
func Custom[T any](name string) EventType[*dom.CustomEvent[T]] {
	return EventType[*dom.CustomEvent[T]](name)
}

// String returns the event name.
func (t EventType[E]) String() string { return string(t) }

// Handler returns a Listener calling fn for events of type E, other
// events dispatched under the same name are ignored.
func Handler[E dom.Event](fn func(E)) Listener {
	return dom.NewEventListener(func(e dom.Event) error {
		if v, ok := e.(E); ok {
			fn(v)
		}
		return nil
	})
}

// Listen registers fn for the event type and returns the Listener to
// pass to Unlisten.
func Listen[E dom.Event](target dom.EventTarget, typ EventType[E], fn func(E), opts ...Options) Listener {
	listener := Handler(fn)
	target.AddEventListener(string(typ), listener, options(opts))
	return listener
}

// Unlisten removes a listener returned by Listen.
func Unlisten[E dom.Event](target dom.EventTarget, typ EventType[E], listener Listener, opts ...Options) {
	target.RemoveEventListener(string(typ), listener, options(opts).EventListenerOptions)
}

// Dispatch emits a CustomEvent of the type carrying detail.
func Dispatch[T any](target dom.EventTarget, typ EventType[*dom.CustomEvent[T]], detail T, init ...dom.EventInit) bool {
	return target.DispatchEvent(dom.NewCustomEvent(string(typ), detail, init...))
}
