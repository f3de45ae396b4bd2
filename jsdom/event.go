package jsdom

import (
	"github.com/dop251/goja"
	"github.com/shiroyk/domkit"
	"github.com/shiroyk/domkit/dom"
)

func toEvent(value goja.Value) dom.Event {
	if o, ok := value.(*goja.Object); ok {
		if v := o.GetSymbol(symEvent); v != nil {
			if e, ok := v.Export().(dom.Event); ok {
				return e
			}
		}
	}
	return nil
}

// eventValue returns the JavaScript value of the event. State that
// changes during dispatch is exposed through accessors.
func (b *binding) eventValue(e dom.Event) goja.Value {
	rt := b.rt
	obj := rt.NewObject()
	_ = obj.SetSymbol(symEvent, e)

	getter := func(name string, fn func() any) {
		_ = obj.DefineAccessorProperty(name, rt.ToValue(func(goja.FunctionCall) goja.Value {
			return rt.ToValue(fn())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	}
	target := func(t dom.EventTarget) goja.Value {
		if n, ok := t.(dom.Node); ok {
			return b.node(n)
		}
		return goja.Null()
	}

	_ = obj.Set("type", e.Type())
	_ = obj.Set("bubbles", e.Bubbles())
	_ = obj.Set("cancelable", e.Cancelable())
	_ = obj.Set("timeStamp", e.TimeStamp())
	getter("defaultPrevented", func() any { return e.DefaultPrevented() })
	getter("eventPhase", func() any { return int(e.EventPhase()) })
	getter("target", func() any { return target(e.Target()) })
	getter("currentTarget", func() any { return target(e.CurrentTarget()) })

	_ = obj.Set("preventDefault", func(goja.FunctionCall) goja.Value {
		e.PreventDefault()
		return goja.Undefined()
	})
	_ = obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
		e.StopPropagation()
		return goja.Undefined()
	})
	_ = obj.Set("stopImmediatePropagation", func(goja.FunctionCall) goja.Value {
		e.StopImmediatePropagation()
		return goja.Undefined()
	})

	if d, ok := e.(dom.Detailer); ok {
		_ = obj.Set("detail", b.detailValue(d.RawDetail()))
	}
	switch ev := e.(type) {
	case *dom.KeyboardEvent:
		_ = obj.Set("key", ev.Key)
		_ = obj.Set("code", ev.Code)
		_ = obj.Set("repeat", ev.Repeat)
		setModifiers(obj, ev.Modifiers)
	case *dom.MouseEvent:
		_ = obj.Set("button", ev.Button)
		_ = obj.Set("buttons", ev.Buttons)
		_ = obj.Set("clientX", ev.ClientX)
		_ = obj.Set("clientY", ev.ClientY)
		setModifiers(obj, ev.Modifiers)
	case *dom.InputEvent:
		_ = obj.Set("data", ev.Data)
		_ = obj.Set("inputType", ev.InputType)
	case *dom.FocusEvent:
		_ = obj.Set("relatedTarget", target(ev.RelatedTarget))
	}

	return obj
}

// detailValue keeps script values as they were passed and wraps nodes
// emitted from Go.
func (b *binding) detailValue(v any) goja.Value {
	switch v := v.(type) {
	case goja.Value:
		return v
	case *domkit.Element:
		return b.element(v)
	case dom.Node:
		return b.node(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = b.detailValue(item)
		}
		return b.rt.NewArray(items...)
	default:
		return b.rt.ToValue(v)
	}
}

func setModifiers(obj *goja.Object, m dom.Modifiers) {
	_ = obj.Set("altKey", m.AltKey)
	_ = obj.Set("ctrlKey", m.CtrlKey)
	_ = obj.Set("metaKey", m.MetaKey)
	_ = obj.Set("shiftKey", m.ShiftKey)
}
