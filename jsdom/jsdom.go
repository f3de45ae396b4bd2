// Package jsdom exposes the domkit helpers to JavaScript running in a
// goja runtime.
//
// Enable installs a global `dom` object:
//
//	const list = dom.h("ul.todo", dom.h("li", "first"))
//	list.on("click", (e) => e.target.toggleClass("done"))
//	list.emitCustom("added", 1, 2)
//	console.log(list.html())
package jsdom

import (
	"errors"
	"reflect"

	"github.com/dop251/goja"
	"github.com/shiroyk/domkit"
	"github.com/shiroyk/domkit/dom"
)

var (
	symNode  = goja.NewSymbol("Symbol.Node")
	symEvent = goja.NewSymbol("Symbol.Event")
)

// binding holds the per-runtime state: the element prototype and one
// Go listener for each JavaScript function passed to on/once.
type binding struct {
	rt        *goja.Runtime
	builder   *domkit.Builder
	proto     *goja.Object
	listeners map[*goja.Object]dom.EventListener
}

// Enable installs the global `dom` object creating nodes in doc.
func Enable(rt *goja.Runtime, doc *dom.Document) error {
	b := &binding{
		rt:        rt,
		builder:   domkit.NewBuilder(doc),
		listeners: make(map[*goja.Object]dom.EventListener),
	}
	b.proto = b.elementPrototype()

	obj := rt.NewObject()
	_ = obj.Set("h", b.h)
	_ = obj.Set("s", b.s)
	_ = obj.Set("t", b.t)
	_ = obj.Set("event", b.event)
	_ = obj.Set("customEvent", b.customEvent)
	return rt.Set("dom", obj)
}

// Throw js exception
func Throw(rt *goja.Runtime, err error) {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		panic(ex)
	}
	panic(rt.NewGoError(err))
}

func (b *binding) h(call goja.FunctionCall) goja.Value {
	el, err := b.builder.H(call.Argument(0).String(), b.children(call.Arguments, 1)...)
	if err != nil {
		Throw(b.rt, err)
	}
	return b.element(el)
}

func (b *binding) s(call goja.FunctionCall) goja.Value {
	el, err := b.builder.S(call.Argument(0).String(), b.children(call.Arguments, 1)...)
	if err != nil {
		Throw(b.rt, err)
	}
	return b.element(el)
}

func (b *binding) t(call goja.FunctionCall) goja.Value {
	return b.node(b.builder.T(call.Argument(0).String()))
}

func (b *binding) event(call goja.FunctionCall) goja.Value {
	return b.eventValue(dom.NewEvent(call.Argument(0).String(), b.eventInit(call.Argument(1))))
}

func (b *binding) customEvent(call goja.FunctionCall) goja.Value {
	return b.eventValue(dom.NewCustomEvent(call.Argument(0).String(), call.Argument(1), b.eventInit(call.Argument(2))))
}

func (b *binding) eventInit(value goja.Value) (init dom.EventInit) {
	if goja.IsUndefined(value) || goja.IsNull(value) {
		return
	}
	obj := value.ToObject(b.rt)
	if v := obj.Get("bubbles"); v != nil {
		init.Bubbles = v.ToBoolean()
	}
	if v := obj.Get("cancelable"); v != nil {
		init.Cancelable = v.ToBoolean()
	}
	return
}

// children converts the arguments from index i to child values:
// wrapped nodes are unwrapped, everything else is exported as is.
func (b *binding) children(args []goja.Value, i int) []any {
	if len(args) <= i {
		return nil
	}
	ret := make([]any, 0, len(args)-i)
	for _, arg := range args[i:] {
		if n := toNode(arg); n != nil {
			ret = append(ret, n)
			continue
		}
		ret = append(ret, arg.Export())
	}
	return ret
}

func toNode(value goja.Value) dom.Node {
	if o, ok := value.(*goja.Object); ok {
		if v := o.GetSymbol(symNode); v != nil {
			if n, ok := v.Export().(dom.Node); ok {
				return n
			}
		}
	}
	return nil
}

// node returns the JavaScript value of n, elements get the element
// prototype, other nodes only carry the symbol and their text.
func (b *binding) node(n dom.Node) goja.Value {
	if n == nil {
		return goja.Null()
	}
	if el, ok := n.(*dom.Element); ok {
		return b.element(domkit.Wrap(el))
	}
	obj := b.rt.NewObject()
	_ = obj.SetSymbol(symNode, n)
	_ = obj.Set("text", n.TextContent)
	return obj
}

func (b *binding) element(el *domkit.Element) goja.Value {
	if el == nil {
		return goja.Null()
	}
	obj := b.rt.NewObject()
	_ = obj.SetSymbol(symNode, el.Element())
	_ = obj.SetPrototype(b.proto)
	return obj
}

func (b *binding) toElement(value goja.Value) *domkit.Element {
	if el, ok := toNode(value).(*dom.Element); ok {
		return domkit.Wrap(el)
	}
	panic(b.rt.NewTypeError(`Value of "this" must be of type Element`))
}

// listener returns the Go listener of the function, creating it on
// first use when create is true.
func (b *binding) listener(value goja.Value, create bool) dom.EventListener {
	fn, ok := goja.AssertFunction(value)
	if !ok {
		panic(b.rt.NewTypeError("listener is not a function"))
	}
	fnObj := value.(*goja.Object)
	if l, ok := b.listeners[fnObj]; ok || !create {
		return l
	}
	l := dom.NewEventListener(func(e dom.Event) error {
		this, _ := e.CurrentTarget().(dom.Node)
		_, err := fn(b.node(this), b.eventValue(e))
		return err
	})
	b.listeners[fnObj] = l
	return l
}

func (b *binding) listenerOptions(value goja.Value) (opts domkit.Options) {
	if goja.IsUndefined(value) || goja.IsNull(value) {
		return
	}
	if value.ExportType().Kind() == reflect.Bool {
		opts.Capture = value.ToBoolean()
		return
	}
	obj := value.ToObject(b.rt)
	if v := obj.Get("capture"); v != nil {
		opts.Capture = v.ToBoolean()
	}
	if v := obj.Get("once"); v != nil {
		opts.Once = v.ToBoolean()
	}
	if v := obj.Get("passive"); v != nil {
		opts.Passive = v.ToBoolean()
	}
	return
}
