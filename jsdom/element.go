package jsdom

import (
	"github.com/dop251/goja"
	"github.com/shiroyk/domkit/dom"
)

func (b *binding) elementPrototype() *goja.Object {
	p := b.rt.NewObject()

	_ = p.Set("addClass", b.addClass)
	_ = p.Set("removeClass", b.removeClass)
	_ = p.Set("toggleClass", b.toggleClass)
	_ = p.Set("hasClass", b.hasClass)
	_ = p.Set("append", b.append)
	_ = p.Set("empty", b.empty)
	_ = p.Set("remove", b.remove)
	_ = p.Set("emit", b.emit)
	_ = p.Set("emitCustom", b.emitCustom)
	_ = p.Set("on", b.on)
	_ = p.Set("onEach", b.onEach)
	_ = p.Set("off", b.off)
	_ = p.Set("once", b.once)
	_ = p.Set("query", b.query)
	_ = p.Set("queryAll", b.queryAll)
	_ = p.Set("attr", b.attr)
	_ = p.Set("text", b.text)
	_ = p.Set("html", b.html)
	_ = p.Set("toString", b.html)

	return p
}

func (b *binding) strings(args []goja.Value) []string {
	ret := make([]string, len(args))
	for i, arg := range args {
		ret[i] = arg.String()
	}
	return ret
}

func (b *binding) addClass(call goja.FunctionCall) goja.Value {
	if err := b.toElement(call.This).AddClass(b.strings(call.Arguments)...); err != nil {
		Throw(b.rt, err)
	}
	return call.This
}

func (b *binding) removeClass(call goja.FunctionCall) goja.Value {
	if err := b.toElement(call.This).RemoveClass(b.strings(call.Arguments)...); err != nil {
		Throw(b.rt, err)
	}
	return call.This
}

func (b *binding) toggleClass(call goja.FunctionCall) goja.Value {
	if err := b.toElement(call.This).ToggleClass(b.strings(call.Arguments)...); err != nil {
		Throw(b.rt, err)
	}
	return call.This
}

func (b *binding) hasClass(call goja.FunctionCall) goja.Value {
	return b.rt.ToValue(b.toElement(call.This).HasClass(call.Argument(0).String()))
}

func (b *binding) append(call goja.FunctionCall) goja.Value {
	if err := b.toElement(call.This).Append(b.children(call.Arguments, 0)...); err != nil {
		Throw(b.rt, err)
	}
	return call.This
}

func (b *binding) empty(call goja.FunctionCall) goja.Value {
	b.toElement(call.This).Empty()
	return call.This
}

func (b *binding) remove(call goja.FunctionCall) goja.Value {
	b.toElement(call.This).Remove()
	return call.This
}

// emit dispatches an event created by dom.event, a string is a
// shorthand for a plain event of that type.
func (b *binding) emit(call goja.FunctionCall) goja.Value {
	el := b.toElement(call.This)
	arg := call.Argument(0)
	if e := toEvent(arg); e != nil {
		return b.rt.ToValue(el.Emit(e))
	}
	if goja.IsUndefined(arg) {
		panic(b.rt.NewTypeError("Failed to execute 'emit': 1 argument required, but only 0 present."))
	}
	return b.rt.ToValue(el.Emit(dom.NewEvent(arg.String())))
}

func (b *binding) emitCustom(call goja.FunctionCall) goja.Value {
	el := b.toElement(call.This)
	var params []any
	if len(call.Arguments) > 1 {
		params = make([]any, 0, len(call.Arguments)-1)
		for _, arg := range call.Arguments[1:] {
			params = append(params, arg)
		}
	}
	return b.rt.ToValue(el.EmitCustom(call.Argument(0).String(), params...))
}

func (b *binding) on(call goja.FunctionCall) goja.Value {
	b.toElement(call.This).On(call.Argument(0).String(),
		b.listener(call.Argument(1), true), b.listenerOptions(call.Argument(2)))
	return call.This
}

func (b *binding) onEach(call goja.FunctionCall) goja.Value {
	var events []string
	if err := b.rt.ExportTo(call.Argument(0), &events); err != nil {
		Throw(b.rt, err)
	}
	b.toElement(call.This).OnEach(events,
		b.listener(call.Argument(1), true), b.listenerOptions(call.Argument(2)))
	return call.This
}

func (b *binding) off(call goja.FunctionCall) goja.Value {
	el := b.toElement(call.This)
	if l := b.listener(call.Argument(1), false); l != nil {
		el.Off(call.Argument(0).String(), l, b.listenerOptions(call.Argument(2)))
	}
	return call.This
}

func (b *binding) once(call goja.FunctionCall) goja.Value {
	b.toElement(call.This).Once(call.Argument(0).String(),
		b.listener(call.Argument(1), true), b.listenerOptions(call.Argument(2)))
	return call.This
}

func (b *binding) query(call goja.FunctionCall) goja.Value {
	el, err := b.toElement(call.This).Query(call.Argument(0).String())
	if err != nil {
		Throw(b.rt, err)
	}
	return b.element(el)
}

func (b *binding) queryAll(call goja.FunctionCall) goja.Value {
	list, err := b.toElement(call.This).QueryAll(call.Argument(0).String())
	if err != nil {
		Throw(b.rt, err)
	}
	ret := make([]any, len(list))
	for i, el := range list {
		ret[i] = b.element(el)
	}
	return b.rt.NewArray(ret...)
}

// attr gets the attribute, or sets it when a value is given.
func (b *binding) attr(call goja.FunctionCall) goja.Value {
	el := b.toElement(call.This).Element()
	name := call.Argument(0).String()
	if len(call.Arguments) > 1 {
		el.SetAttribute(name, call.Argument(1).String())
		return call.This
	}
	if v, ok := el.GetAttribute(name); ok {
		return b.rt.ToValue(v)
	}
	return goja.Null()
}

func (b *binding) text(call goja.FunctionCall) goja.Value {
	return b.rt.ToValue(b.toElement(call.This).Element().TextContent())
}

func (b *binding) html(call goja.FunctionCall) goja.Value {
	return b.rt.ToValue(b.toElement(call.This).HTML())
}
