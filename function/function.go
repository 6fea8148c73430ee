/*
File    : mesa/function/function.go
Package : function
*/

// Package function holds the two Callable implementations the
// evaluator dispatches through: user-defined Function values and
// host-implemented NativeFunction values.
package function

import (
	"fmt"

	"github.com/mesa-lang/mesa/objects"
	"github.com/mesa-lang/mesa/parser"
	"github.com/mesa-lang/mesa/scope"
)

// Function is a user-defined callable. It owns its parameter list,
// its body, and a reference to the scope active at the point of its
// declaration: its defining scope, not whatever scope happens to be
// active at the call site. That reference is what makes the language
// lexically rather than dynamically scoped.
type Function struct {
	Name    string
	Params  []parser.Param
	Body    *parser.BlockStatement
	Defined *scope.Scope
}

func (f *Function) Type() objects.Type { return objects.FunctionType }
func (f *Function) String() string     { return fmt.Sprintf("<function %s>", f.Name) }

// Arity returns the number of declared parameters.
func (f *Function) Arity() int { return len(f.Params) }

// NativeFunc is the Go-implemented behavior behind a NativeFunction
// value. It receives already-evaluated arguments and returns a result
// or an error.
type NativeFunc func(args []objects.Value) (objects.Value, error)

// NativeFunction is a built-in callable: `mod`, `pow`, `nums`, and any
// other host-implemented function registered into the global scope
// before user code runs.
type NativeFunction struct {
	Name  string
	Arity int
	Call  NativeFunc
}

func (n *NativeFunction) Type() objects.Type { return objects.NativeType }
func (n *NativeFunction) String() string     { return fmt.Sprintf("<native %s>", n.Name) }
