package dom

import (
	"time"
)

// Event defines the DOM Event interface
// https://dom.spec.whatwg.org/#event
type Event interface {
	Type() string
	Target() EventTarget
	CurrentTarget() EventTarget
	EventPhase() EventPhase
	TimeStamp() int64
	Bubbles() bool
	Cancelable() bool
	DefaultPrevented() bool

	StopPropagation()
	StopImmediatePropagation()
	PreventDefault()

	base() *BaseEvent
}

// Detailer is implemented by events carrying a detail payload.
type Detailer interface {
	RawDetail() any
}

type EventPhase int

const (
	EventPhaseNone EventPhase = iota
	EventPhaseCapturing
	EventPhaseAtTarget
	EventPhaseBubbling
)

func (p EventPhase) String() string {
	switch p {
	case EventPhaseCapturing:
		return "capturing"
	case EventPhaseAtTarget:
		return "at-target"
	case EventPhaseBubbling:
		return "bubbling"
	default:
		return "none"
	}
}

// EventInit the optional flags of a new event.
type EventInit struct {
	Bubbles    bool
	Cancelable bool
}

// BaseEvent is the plain Event implementation. Other event types embed it.
type BaseEvent struct {
	typ                         string
	target                      EventTarget
	currentTarget               EventTarget
	eventPhase                  EventPhase
	timeStamp                   int64
	bubbles                     bool
	cancelable                  bool
	defaultPrevented            bool
	propagationStopped          bool
	immediatePropagationStopped bool
	inPassiveListener           bool
	dispatching                 bool
}

// NewEvent creates a new Event instance
func NewEvent(typ string, init ...EventInit) *BaseEvent {
	e := &BaseEvent{
		typ:       typ,
		timeStamp: time.Now().UnixNano() / int64(time.Millisecond),
	}
	if len(init) > 0 {
		e.bubbles = init[0].Bubbles
		e.cancelable = init[0].Cancelable
	}
	return e
}

func (e *BaseEvent) Type() string               { return e.typ }
func (e *BaseEvent) Target() EventTarget        { return e.target }
func (e *BaseEvent) CurrentTarget() EventTarget { return e.currentTarget }
func (e *BaseEvent) EventPhase() EventPhase     { return e.eventPhase }
func (e *BaseEvent) TimeStamp() int64           { return e.timeStamp }
func (e *BaseEvent) Bubbles() bool              { return e.bubbles }
func (e *BaseEvent) Cancelable() bool           { return e.cancelable }
func (e *BaseEvent) DefaultPrevented() bool     { return e.defaultPrevented }
func (e *BaseEvent) StopPropagation()           { e.propagationStopped = true }
func (e *BaseEvent) base() *BaseEvent           { return e }

func (e *BaseEvent) StopImmediatePropagation() {
	e.immediatePropagationStopped = true
	e.propagationStopped = true
}

// PreventDefault cancels the event if it is cancelable.
// Calls from a passive listener are ignored.
func (e *BaseEvent) PreventDefault() {
	if e.cancelable && !e.inPassiveListener {
		e.defaultPrevented = true
	}
}

// CustomEvent is an event carrying an application defined detail.
// https://dom.spec.whatwg.org/#interface-customevent
type CustomEvent[T any] struct {
	*BaseEvent
	detail T
}

// NewCustomEvent creates a new CustomEvent with the given detail.
func NewCustomEvent[T any](typ string, detail T, init ...EventInit) *CustomEvent[T] {
	return &CustomEvent[T]{BaseEvent: NewEvent(typ, init...), detail: detail}
}

// Detail returns the payload of the event.
func (e *CustomEvent[T]) Detail() T { return e.detail }

// RawDetail returns the payload as any.
func (e *CustomEvent[T]) RawDetail() any { return e.detail }

// Modifiers the modifier keys state of keyboard and mouse events.
type Modifiers struct {
	AltKey   bool
	CtrlKey  bool
	MetaKey  bool
	ShiftKey bool
}

// KeyboardEventInit the fields of a new KeyboardEvent.
type KeyboardEventInit struct {
	EventInit
	Modifiers
	Key    string
	Code   string
	Repeat bool
}

// KeyboardEvent https://w3c.github.io/uievents/#interface-keyboardevent
type KeyboardEvent struct {
	*BaseEvent
	Modifiers
	Key    string
	Code   string
	Repeat bool
}

// NewKeyboardEvent creates a new KeyboardEvent.
func NewKeyboardEvent(typ string, init KeyboardEventInit) *KeyboardEvent {
	return &KeyboardEvent{
		BaseEvent: NewEvent(typ, init.EventInit),
		Modifiers: init.Modifiers,
		Key:       init.Key,
		Code:      init.Code,
		Repeat:    init.Repeat,
	}
}

// MouseEventInit the fields of a new MouseEvent.
type MouseEventInit struct {
	EventInit
	Modifiers
	Button  int
	Buttons int
	ClientX float64
	ClientY float64
}

// MouseEvent https://w3c.github.io/uievents/#interface-mouseevent
type MouseEvent struct {
	*BaseEvent
	Modifiers
	Button  int
	Buttons int
	ClientX float64
	ClientY float64
}

// NewMouseEvent creates a new MouseEvent.
func NewMouseEvent(typ string, init MouseEventInit) *MouseEvent {
	return &MouseEvent{
		BaseEvent: NewEvent(typ, init.EventInit),
		Modifiers: init.Modifiers,
		Button:    init.Button,
		Buttons:   init.Buttons,
		ClientX:   init.ClientX,
		ClientY:   init.ClientY,
	}
}

// InputEvent https://w3c.github.io/uievents/#interface-inputevent
type InputEvent struct {
	*BaseEvent
	Data      string
	InputType string
}

// NewInputEvent creates a new InputEvent.
func NewInputEvent(typ, data, inputType string, init ...EventInit) *InputEvent {
	return &InputEvent{BaseEvent: NewEvent(typ, init...), Data: data, InputType: inputType}
}

// FocusEvent https://w3c.github.io/uievents/#interface-focusevent
type FocusEvent struct {
	*BaseEvent
	RelatedTarget EventTarget
}

// NewFocusEvent creates a new FocusEvent.
func NewFocusEvent(typ string, related EventTarget, init ...EventInit) *FocusEvent {
	return &FocusEvent{BaseEvent: NewEvent(typ, init...), RelatedTarget: related}
}
