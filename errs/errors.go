/*
File    : mesa/errs/errors.go
Package : errs
*/

// Package errs defines the three error kinds shared across the lexer,
// parser, and evaluator: LexError, ParseError, and RuntimeError. Each
// carries an optional source span and renders as "[line:col] message";
// a RuntimeError with a zero span renders as the bare message.
package errs

import (
	"fmt"

	"github.com/juju/errors"

	"github.com/mesa-lang/mesa/lexer"
)

// Span is re-exported from lexer so callers that only import errs can
// still build located diagnostics without a second import.
type Span = lexer.Span

// LexError reports a scanning failure: unterminated string, malformed
// number, or a lone '&'/'|'.
type LexError struct {
	Message string
	Span    Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Span.StartLine, e.Span.StartColumn, e.Message)
}

// NewLexError builds a LexError wrapped with github.com/juju/errors so
// callers further up the stack can still unwrap the root cause with
// errors.Cause while the message keeps the "[line:col] text" shape the
// driver prints.
func NewLexError(span Span, format string, args ...interface{}) error {
	return errors.Trace(&LexError{Message: fmt.Sprintf(format, args...), Span: span})
}

// ParseError reports a syntax failure: unexpected token, missing
// punctuation, invalid assignment target, too many parameters/
// arguments, or a missing type after a declarator.
type ParseError struct {
	Message string
	Span    Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Span.StartLine, e.Span.StartColumn, e.Message)
}

// NewParseError builds a ParseError.
func NewParseError(span Span, format string, args ...interface{}) error {
	return errors.Trace(&ParseError{Message: fmt.Sprintf(format, args...), Span: span})
}

// RuntimeError reports a failure discovered while walking the tree:
// undefined variable, re-declaration, type mismatch, wrong arity,
// non-boolean condition, division by zero, a return escaping every
// function, or a call on a non-callable.
type RuntimeError struct {
	Message string
	Span    Span
}

func (e *RuntimeError) Error() string {
	if e.Span == (Span{}) {
		return e.Message
	}
	return fmt.Sprintf("[%d:%d] %s", e.Span.StartLine, e.Span.StartColumn, e.Message)
}

// NewRuntimeError builds a RuntimeError. Pass a zero Span when the
// evaluator has no located node handy (e.g. an error raised deep
// inside a built-in).
func NewRuntimeError(span Span, format string, args ...interface{}) error {
	return errors.Trace(&RuntimeError{Message: fmt.Sprintf(format, args...), Span: span})
}

// Cause unwraps a juju/errors-traced diagnostic back to the concrete
// *LexError / *ParseError / *RuntimeError, so callers that need to
// switch on the error kind don't have to know about the wrapping.
func Cause(err error) error {
	return errors.Cause(err)
}

// Label returns the diagnostic tag for err's underlying kind, after
// unwrapping it with Cause. Callers printing a driver-level diagnostic
// use this to pick "[LEX ERROR]" / "[PARSE ERROR]" / "[RUNTIME ERROR]"
// without needing to know which layer raised it.
func Label(err error) string {
	switch Cause(err).(type) {
	case *LexError:
		return "LEX ERROR"
	case *ParseError:
		return "PARSE ERROR"
	case *RuntimeError:
		return "RUNTIME ERROR"
	default:
		return "ERROR"
	}
}
