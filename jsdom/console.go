package jsdom

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dop251/goja"
	"github.com/shiroyk/domkit/dom"
)

// EnableConsole installs the global `console` object writing to the logger.
func EnableConsole(rt *goja.Runtime, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &console{logger}
	obj := rt.NewObject()
	_ = obj.Set("log", c.log)
	_ = obj.Set("info", c.log)
	_ = obj.Set("debug", c.debug)
	_ = obj.Set("warn", c.warn)
	_ = obj.Set("error", c.error)
	_ = rt.Set("console", obj)
}

type console struct {
	logger *slog.Logger
}

func (c *console) output(level slog.Level, call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	var args []goja.Value
	if len(call.Arguments) > 1 {
		args = call.Arguments[1:]
	}
	c.logger.Log(context.Background(), level, Format(rt, call.Argument(0), args...))
	return goja.Undefined()
}

func (c *console) log(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelInfo, call, rt)
}

func (c *console) debug(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelDebug, call, rt)
}

func (c *console) warn(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelWarn, call, rt)
}

func (c *console) error(call goja.FunctionCall, rt *goja.Runtime) goja.Value {
	return c.output(slog.LevelError, call, rt)
}

// Format formats the arguments like console.log. A string message with
// arguments is a format with the verbs %s %d %i %f %j %o %O, arguments
// left over are appended separated by spaces. Elements print as their
// outer HTML, objects as JSON.
func Format(rt *goja.Runtime, msg goja.Value, args ...goja.Value) string {
	var sb strings.Builder
	if format, ok := msg.Export().(string); ok && len(args) > 0 {
		args = formatVerbs(rt, &sb, format, args)
	} else {
		sb.WriteString(display(rt, msg))
	}
	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(display(rt, arg))
	}
	return sb.String()
}

// formatVerbs writes the format with its verbs replaced and returns the
// unused arguments.
func formatVerbs(rt *goja.Runtime, sb *strings.Builder, format string, args []goja.Value) []goja.Value {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			sb.WriteByte(format[i])
			continue
		}
		verb := format[i+1]
		if verb == '%' {
			sb.WriteByte('%')
			i++
			continue
		}
		if len(args) == 0 || !strings.ContainsRune("sdifjoO", rune(verb)) {
			sb.WriteByte('%')
			continue
		}
		i++
		arg := args[0]
		args = args[1:]
		switch verb {
		case 's':
			sb.WriteString(display(rt, arg))
		case 'd', 'i':
			sb.WriteString(strconv.FormatInt(arg.ToInteger(), 10))
		case 'f':
			sb.WriteString(arg.ToNumber().String())
		default:
			sb.WriteString(stringify(rt, arg))
		}
	}
	return args
}

func display(rt *goja.Runtime, v goja.Value) string {
	switch n := toNode(v).(type) {
	case *dom.Element:
		return n.OuterHTML()
	case dom.Node:
		return n.TextContent()
	}
	if obj, ok := v.(*goja.Object); ok {
		if _, isFunc := goja.AssertFunction(obj); !isFunc {
			return stringify(rt, obj)
		}
	}
	return v.String()
}

func stringify(rt *goja.Runtime, v goja.Value) string {
	if j, ok := rt.Get("JSON").(*goja.Object); ok {
		if fn, ok := goja.AssertFunction(j.Get("stringify")); ok {
			if res, err := fn(j, v); err == nil && !goja.IsUndefined(res) {
				return res.String()
			}
		}
	}
	return v.String()
}
