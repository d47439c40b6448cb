package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTrace returns the first stack trace found while walking the Cause
// chain of given error, or nil.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}

func funcName(f errors.Frame) string {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

func matchesFunc(f errors.Frame, prefixes ...string) bool {
	fn := funcName(f)
	for _, prefix := range prefixes {
		if strings.HasPrefix(fn, prefix) {
			return true
		}
	}
	return false
}

// wrappingFuncs are the functions of this package that attach a stack trace.
// They are never the interesting creation point.
var wrappingFuncs = map[string]bool{
	"github.com/iov-one/msigaddr/errors.Wrap":          true,
	"github.com/iov-one/msigaddr/errors.Wrapf":         true,
	"github.com/iov-one/msigaddr/errors.Field":         true,
	"github.com/iov-one/msigaddr/errors.(*Error).New":  true,
	"github.com/iov-one/msigaddr/errors.(*Error).Newf": true,
	"github.com/iov-one/msigaddr/errors.Recover":       true,
}

// trimInternal removes the wrapping frames of this package and the runtime
// from both ends of the stack.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 0 && (wrappingFuncs[funcName(st[0])] || matchesFunc(st[0], "runtime.")) {
		st = st[1:]
	}
	for len(st) > 0 && matchesFunc(st[len(st)-1], "runtime.") {
		st = st[:len(st)-1]
	}
	return st
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// cut file at "github.com/"
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}

// Format works like pkg/errors, with additions.
//   %s is just the error message
//   %+v is the full stack trace
//   %v appends a compressed [filename:line] where the error was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	format(s, verb, e)
}

// Format works the same as the wrappedError formatting.
func (err *fieldError) Format(s fmt.State, verb rune) {
	format(s, verb, err)
}

func format(s fmt.State, verb rune, err error) {
	if verb != 'v' {
		fmt.Fprint(s, err.Error())
		return
	}

	stack := trimInternal(stackTrace(err))
	if s.Flag('+') {
		fmt.Fprintf(s, "%+v\n", stack)
		fmt.Fprint(s, err.Error())
		return
	}
	fmt.Fprint(s, err.Error())
	if len(stack) > 0 {
		writeSimpleFrame(s, stack[0])
	}
}
