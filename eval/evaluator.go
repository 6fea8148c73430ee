/*
File    : mesa/eval/evaluator.go
Package : eval
*/

// Package eval is the tree-walking evaluator: Execute runs a
// statement against a scope, Evaluate computes an expression's value.
// Split across this file and its eval_*.go companions by concern, the
// way the teacher splits eval/evaluator.go from eval/eval_*.go.
package eval

import (
	"io"

	"github.com/mesa-lang/mesa/builtin"
	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/function"
	"github.com/mesa-lang/mesa/objects"
	"github.com/mesa-lang/mesa/parser"
	"github.com/mesa-lang/mesa/scope"
)

// Evaluator walks a parsed program against the global scope, printing
// `write` output to Writer.
type Evaluator struct {
	Global *scope.Scope
	Writer io.Writer
}

// NewEvaluator builds an Evaluator with a fresh global scope
// pre-populated with the native function registry.
func NewEvaluator(writer io.Writer) *Evaluator {
	global := scope.New(nil)
	builtin.Register(global)
	return &Evaluator{Global: global, Writer: writer}
}

// Run executes every top-level statement against the global scope, in
// order. A `return` that escapes every enclosing function is a
// runtime error. The top level is not itself a function call.
func (e *Evaluator) Run(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := e.Execute(stmt, e.Global); err != nil {
			if _, ok := err.(*returnSignal); ok {
				return errs.NewRuntimeError(stmt.Span(), "return statement outside of a function")
			}
			return err
		}
	}
	return nil
}

// CallFunction invokes callee with already-evaluated args, delegating
// to either a user Function or a NativeFunction. callSpan locates the
// call expression for diagnostics.
func (e *Evaluator) CallFunction(callee objects.Value, args []objects.Value, callSpan errs.Span) (objects.Value, error) {
	switch fn := callee.(type) {
	case *function.Function:
		return e.callUserFunction(fn, args, callSpan)
	case *function.NativeFunction:
		if len(args) != fn.Arity {
			return nil, errs.NewRuntimeError(callSpan, "wrong number of arguments to %s: expected %d, got %d", fn.Name, fn.Arity, len(args))
		}
		result, err := fn.Call(args)
		if err != nil {
			return nil, errs.NewRuntimeError(callSpan, "%s", err)
		}
		return result, nil
	default:
		return nil, errs.NewRuntimeError(callSpan, "attempt to call a non-callable value of type %s", callee.Type())
	}
}

// callUserFunction implements the language's call protocol: a fresh
// scope is created whose enclosing pointer is the function's captured
// defining scope, NOT the caller's active scope. That is what keeps
// name resolution lexical rather than dynamic.
func (e *Evaluator) callUserFunction(fn *function.Function, args []objects.Value, callSpan errs.Span) (objects.Value, error) {
	if len(args) != fn.Arity() {
		return nil, errs.NewRuntimeError(callSpan, "wrong number of arguments to %s: expected %d, got %d", fn.Name, fn.Arity(), len(args))
	}
	callScope := scope.New(fn.Defined)
	for i, param := range fn.Params {
		if args[i].Type() != param.DeclaredType {
			return nil, errs.NewRuntimeError(callSpan, "argument %d to %s: expected %s, got %s", i+1, fn.Name, param.DeclaredType, args[i].Type())
		}
		// callScope is fresh, so Declare fails only when the parameter
		// list repeats a name.
		if err := callScope.Declare(param.Name, args[i], param.DeclaredType); err != nil {
			return nil, errs.NewRuntimeError(callSpan, "%s", err)
		}
	}
	err := e.Execute(fn.Body, callScope)
	if err == nil {
		return objects.Unit, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		if rs.Value == nil {
			return objects.Unit, nil
		}
		return rs.Value, nil
	}
	return nil, err
}
