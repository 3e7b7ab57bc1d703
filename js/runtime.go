// Package js exposes the positioning library to page scripts through the
// goja JavaScript engine (pure Go ES5.1+ implementation).
package js

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dop251/goja"
)

// Runtime wraps a goja runtime with console output, error collection and
// panic recovery around script execution.
type Runtime struct {
	vm      *goja.Runtime
	mu      sync.Mutex
	errors  []error
	onError func(error)
}

// NewRuntime creates a runtime with console installed.
func NewRuntime() *Runtime {
	r := &Runtime{vm: goja.New()}
	r.setupConsole()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// SetOnError sets a callback invoked for every script error.
func (r *Runtime) SetOnError(handler func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = handler
}

// Errors returns the errors collected so far.
func (r *Runtime) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.errors))
	copy(out, r.errors)
	return out
}

// Execute runs JavaScript code and returns the result. Errors and panics
// from the engine are collected rather than propagated, so one bad script
// does not stop the ones after it.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			r.recordError(err)
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil {
		r.recordError(err)
	}
	return result, err
}

// recordError appends the error; callers hold r.mu.
func (r *Runtime) recordError(err error) {
	r.errors = append(r.errors, err)
	if r.onError != nil {
		r.onError(err)
	}
}

// setupConsole installs console.log/warn/error printing to stdout. Console
// output is page-visible behavior, so it stays on fmt rather than a logger.
func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	print := func(level string) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, len(call.Arguments))
			for i, arg := range call.Arguments {
				parts[i] = arg.String()
			}
			fmt.Printf("[console.%s] %s\n", level, strings.Join(parts, " "))
			return goja.Undefined()
		}
	}
	console.Set("log", print("log"))
	console.Set("warn", print("warn"))
	console.Set("error", print("error"))
	r.vm.Set("console", console)
}
