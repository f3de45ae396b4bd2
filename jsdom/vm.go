package jsdom

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/dop251/goja"
	"github.com/shiroyk/domkit/dom"
)

// VM the js runtime with the console and dom globals.
// An instance of VM can only be used by a single goroutine at a time.
type VM struct {
	runtime *goja.Runtime
	logger  *slog.Logger
}

// NewVM creates a new VM creating nodes in doc and logging to logger.
func NewVM(doc *dom.Document, logger *slog.Logger) *VM {
	if logger == nil {
		logger = slog.Default()
	}
	runtime := goja.New()
	runtime.SetFieldNameMapper(goja.UncapFieldNameMapper())
	EnableConsole(runtime, logger)
	if err := Enable(runtime, doc); err != nil {
		panic(err)
	}
	return &VM{runtime, logger}
}

// RunString runs the script, interrupting it when ctx is done.
func (vm *VM) RunString(ctx context.Context, name, src string) (ret goja.Value, err error) {
	// resets the interrupt flag.
	vm.runtime.ClearInterrupt()
	stop := context.AfterFunc(ctx, func() { vm.runtime.Interrupt(ctx.Err()) })
	defer stop()

	defer func() {
		if r := recover(); r != nil {
			vm.logger.Error(fmt.Sprintf("vm run error %v", r), "stack", string(debug.Stack()))
			err = fmt.Errorf("vm run error %v", r)
		}
	}()

	return vm.runtime.RunScript(name, src)
}

// Runtime the js runtime
func (vm *VM) Runtime() *goja.Runtime { return vm.runtime }
