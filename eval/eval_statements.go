/*
File    : mesa/eval/eval_statements.go
Package : eval
*/

package eval

import (
	"fmt"

	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/function"
	"github.com/mesa-lang/mesa/objects"
	"github.com/mesa-lang/mesa/parser"
	"github.com/mesa-lang/mesa/scope"
)

// Execute runs one statement against sc. A non-nil *returnSignal
// error is the normal mechanism by which `return` propagates upward;
// callers that are not the function-call boundary must let it pass
// through untouched.
func (e *Evaluator) Execute(stmt parser.Stmt, sc *scope.Scope) error {
	switch s := stmt.(type) {
	case *parser.VarDeclStatement:
		return e.executeVarDecl(s, sc)
	case *parser.ExprStatement:
		_, err := e.Evaluate(s.Expr, sc)
		return err
	case *parser.WriteStatement:
		return e.executeWrite(s, sc)
	case *parser.BlockStatement:
		return e.executeBlock(s, scope.New(sc))
	case *parser.IfStatement:
		return e.executeIf(s, sc)
	case *parser.WhileStatement:
		return e.executeWhile(s, sc)
	case *parser.FunctionStatement:
		return e.executeFunctionDecl(s, sc)
	case *parser.ReturnStatement:
		return e.executeReturn(s, sc)
	default:
		return errs.NewRuntimeError(stmt.Span(), "unhandled statement kind %T", stmt)
	}
}

// executeVarDecl evaluates the initializer, then declares the name in
// the current scope with its declared type checked against the
// initializer's runtime type.
func (e *Evaluator) executeVarDecl(s *parser.VarDeclStatement, sc *scope.Scope) error {
	value, err := e.Evaluate(s.Init, sc)
	if err != nil {
		return err
	}
	if err := sc.Declare(s.Name, value, s.DeclaredType); err != nil {
		return errs.NewRuntimeError(s.Sp, "%s", err)
	}
	return nil
}

// executeWrite evaluates its expression and renders it to Writer
// followed by a newline.
func (e *Evaluator) executeWrite(s *parser.WriteStatement, sc *scope.Scope) error {
	value, err := e.Evaluate(s.Expr, sc)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Writer, value.String())
	return nil
}

// executeBlock runs each inner statement against blockScope in order.
// Any error, including a *returnSignal, stops the block and
// propagates immediately; there is nothing further to release since
// blockScope is a plain heap value the caller does not retain.
func (e *Evaluator) executeBlock(block *parser.BlockStatement, blockScope *scope.Scope) error {
	for _, inner := range block.Statements {
		if err := e.Execute(inner, blockScope); err != nil {
			return err
		}
	}
	return nil
}

// executeIf evaluates the condition, then the first matching elif in
// source order, then the else block, running whichever branch's
// block (if any) matched.
func (e *Evaluator) executeIf(s *parser.IfStatement, sc *scope.Scope) error {
	cond, err := e.evalBooleanCondition(s.Cond, sc)
	if err != nil {
		return err
	}
	if cond {
		return e.executeBlock(s.Then, scope.New(sc))
	}
	for _, clause := range s.Elifs {
		cond, err := e.evalBooleanCondition(clause.Cond, sc)
		if err != nil {
			return err
		}
		if cond {
			return e.executeBlock(clause.Block, scope.New(sc))
		}
	}
	if s.Else != nil {
		return e.executeBlock(s.Else, scope.New(sc))
	}
	return nil
}

// executeWhile repeatedly evaluates the condition and runs the body
// while it is true, each iteration getting its own fresh block scope.
func (e *Evaluator) executeWhile(s *parser.WhileStatement, sc *scope.Scope) error {
	for {
		cond, err := e.evalBooleanCondition(s.Cond, sc)
		if err != nil {
			return err
		}
		if !cond {
			return nil
		}
		if err := e.executeBlock(s.Body, scope.New(sc)); err != nil {
			return err
		}
	}
}

// executeFunctionDecl builds a user function value closing over sc
// and binds it under its own name with declared type FUNCTION.
func (e *Evaluator) executeFunctionDecl(s *parser.FunctionStatement, sc *scope.Scope) error {
	fn := &function.Function{
		Name:    s.Name,
		Params:  s.Params,
		Body:    s.Body,
		Defined: sc,
	}
	if err := sc.Declare(s.Name, fn, objects.FunctionType); err != nil {
		return errs.NewRuntimeError(s.Sp, "%s", err)
	}
	return nil
}

// executeReturn evaluates the optional expression and raises a
// *returnSignal carrying it (objects.Unit for a bare `return;`).
func (e *Evaluator) executeReturn(s *parser.ReturnStatement, sc *scope.Scope) error {
	if s.Value == nil {
		return &returnSignal{Value: objects.Unit}
	}
	value, err := e.Evaluate(s.Value, sc)
	if err != nil {
		return err
	}
	return &returnSignal{Value: value}
}

// evalBooleanCondition evaluates expr and requires the result to be a
// Boolean, as every condition position in the grammar does.
func (e *Evaluator) evalBooleanCondition(expr parser.Expr, sc *scope.Scope) (bool, error) {
	value, err := e.Evaluate(expr, sc)
	if err != nil {
		return false, err
	}
	b, ok := value.(*objects.Boolean)
	if !ok {
		return false, errs.NewRuntimeError(expr.Span(), "condition must be boolean, got %s", value.Type())
	}
	return b.Value, nil
}
