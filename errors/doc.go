/*
Package errors implements custom error interfaces for msigaddr.

The idea is to reuse as many errors from this package as possible. Every
failure the codec, the network profiles and the command line can report is
declared here as a root error, so callers can test for a kind of failure with
ErrXyz.Is(err) without looking at the message text.

If you want to register a custom error - use Register(code, description).
For reusing errors - use ErrXyz.New and ErrXyz.Newf.

There is also support for stacktraces. Please ensure you create the custom error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.
(And don't do this as a global `var ErrFoo = errors.ErrInput.New("foo")` or you will get a
useless stacktrace).

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created

Use Field to attach the name of the failing argument, for example
Addresses.1, and FieldErrors to find it again.
*/

package errors
