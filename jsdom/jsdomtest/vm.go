// Package jsdomtest the script test vm
package jsdomtest

import (
	"context"
	"errors"
	"testing"

	"github.com/dop251/goja"
	"github.com/shiroyk/domkit/dom"
	"github.com/shiroyk/domkit/jsdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// New returns a test VM with a global `assert` object.
func New(t *testing.T) *jsdom.VM {
	vm := jsdom.NewVM(dom.NewDocument(), nil)
	runtime := vm.Runtime()

	assertObject := runtime.NewObject()
	_ = assertObject.Set("equal", func(call goja.FunctionCall, vm *goja.Runtime) (ret goja.Value) {
		a, b := call.Argument(0).Export(), call.Argument(1).Export()
		var msg string
		if !goja.IsUndefined(call.Argument(2)) {
			msg = call.Argument(2).String()
		}
		if !assert.Equal(t, b, a, msg) {
			jsdom.Throw(vm, errors.New("not equal"))
		}
		return
	})
	_ = assertObject.Set("true", func(call goja.FunctionCall, vm *goja.Runtime) (ret goja.Value) {
		var msg string
		if !goja.IsUndefined(call.Argument(1)) {
			msg = call.Argument(1).String()
		}
		if !assert.True(t, call.Argument(0).ToBoolean(), msg) {
			jsdom.Throw(vm, errors.New("should be true"))
		}
		return
	})

	_ = runtime.Set("assert", assertObject)

	return vm
}

// Run runs the script in a new test VM and fails the test on error.
func Run(t *testing.T, script string) goja.Value {
	value, err := New(t).RunString(context.Background(), t.Name(), script)
	require.NoError(t, err)
	return value
}
