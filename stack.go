//go:build !errnostack

package walleterr

import (
	"bytes"
	"fmt"

	gostack "github.com/eluv-io/stack"
)

// stack is a type that is embedded in an Error struct, and contains information about the call stack that created
// that Error.
type stack struct {
	pcs   []uintptr         // the program counters returned by runtime.Callers()
	trace gostack.CallStack // the call stack - only filled in when needed.
}

// populateStack uses the runtime to populate the Error's stack struct with information about the current stack. It
// should be called from newError, when the Error is being created.
func (e *Error) populateStack() {
	// 2 removes the populateStack() and newError() functions
	e.pcs = gostack.Callers(2)
}

// dropStackFrames removes the top n stack frames.
func (e *Error) dropStackFrames(n int) *Error {
	if len(e.pcs) > n {
		e.pcs = e.pcs[n:]
		e.trace = nil
	}
	return e
}

// printStack formats and prints the stack for this Error to the given buffer. It should be called from the Error's
// toString method.
func (e *Error) printStack(b *bytes.Buffer) {
	trace := e.resolveStack()
	if PrintStacktracePretty {
		filenames := make([]string, len(trace))
		max := 0
		for i, call := range trace {
			filenames[i] = fmt.Sprintf("%+v", call)
			fl := len(filenames[i])
			if max < fl {
				max = fl
			}
		}
		for i, call := range trace {
			fmt.Fprintf(b, "\t%-*s %n()\n", max, filenames[i], call)
		}
		return
	}
	for _, call := range trace {
		fmt.Fprintf(b, "\t%+v\t%[1]n()\n", call)
	}
}

func (e *Error) resolveStack() gostack.CallStack {
	if e.trace == nil && e.pcs != nil {
		e.trace = gostack.TraceFrom(e.pcs).TrimRuntime()
	}
	return e.trace
}

// hasStack returns true if this error has a stack trace, false otherwise.
func (e *Error) hasStack() bool {
	return e.pcs != nil
}

func (e *Error) clearStack() {
	e.pcs = nil
	e.trace = nil
}
