/*
File    : mesa/eval/eval_expressions.go
Package : eval
*/

package eval

import (
	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/lexer"
	"github.com/mesa-lang/mesa/objects"
	"github.com/mesa-lang/mesa/parser"
	"github.com/mesa-lang/mesa/scope"
)

// Evaluate computes expr's value against sc.
func (e *Evaluator) Evaluate(expr parser.Expr, sc *scope.Scope) (objects.Value, error) {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		return n.Value, nil
	case *parser.IdentifierExpr:
		return e.evalIdentifier(n, sc)
	case *parser.GroupingExpr:
		return e.Evaluate(n.Inner, sc)
	case *parser.UnaryExpr:
		return e.evalUnary(n, sc)
	case *parser.BinaryExpr:
		return e.evalBinary(n, sc)
	case *parser.LogicalExpr:
		return e.evalLogical(n, sc)
	case *parser.AssignExpr:
		return e.evalAssign(n, sc)
	case *parser.CallExpr:
		return e.evalCall(n, sc)
	default:
		return nil, errs.NewRuntimeError(expr.Span(), "unhandled expression kind %T", expr)
	}
}

func (e *Evaluator) evalIdentifier(n *parser.IdentifierExpr, sc *scope.Scope) (objects.Value, error) {
	value, ok := sc.Lookup(n.Name)
	if !ok {
		return nil, errs.NewRuntimeError(n.Sp, "undefined variable %q", n.Name)
	}
	return value, nil
}

func (e *Evaluator) evalUnary(n *parser.UnaryExpr, sc *scope.Scope) (objects.Value, error) {
	operand, err := e.Evaluate(n.Operand, sc)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.NOT:
		b, ok := operand.(*objects.Boolean)
		if !ok {
			return nil, errs.NewRuntimeError(n.Sp, "'!' requires a boolean operand, got %s", operand.Type())
		}
		return objects.BoolValue(!b.Value), nil
	case lexer.MINUS:
		switch v := operand.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: -v.Value}, nil
		case *objects.Double:
			return &objects.Double{Value: -v.Value}, nil
		default:
			return nil, errs.NewRuntimeError(n.Sp, "unary '-' requires a numeric operand, got %s", operand.Type())
		}
	default:
		return nil, errs.NewRuntimeError(n.Sp, "unhandled unary operator %s", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpr, sc *scope.Scope) (objects.Value, error) {
	left, err := e.Evaluate(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(n.Right, sc)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.PLUS, lexer.MINUS, lexer.MUL, lexer.DIV:
		return evalArithmetic(n, left, right)
	case lexer.GREATER, lexer.GREATER_EQUALS, lexer.LESSER, lexer.LESSER_EQUALS:
		return evalComparison(n, left, right)
	case lexer.EQUALS, lexer.NOT_EQUALS:
		return evalEquality(n, left, right)
	default:
		return nil, errs.NewRuntimeError(n.Sp, "unhandled binary operator %s", n.Op)
	}
}

// evalArithmetic implements +, -, *, / over matching numeric operand
// types. Mixed int/double operands are a type mismatch: the language
// has no implicit numeric coercion (see SPEC_FULL.md's Open Questions
// decision on the division result type).
func evalArithmetic(n *parser.BinaryExpr, left, right objects.Value) (objects.Value, error) {
	if !objects.IsNumeric(left.Type()) || !objects.IsNumeric(right.Type()) {
		return nil, errs.NewRuntimeError(n.Sp, "arithmetic requires numeric operands, got %s and %s", left.Type(), right.Type())
	}
	if left.Type() != right.Type() {
		return nil, errs.NewRuntimeError(n.Sp, "arithmetic requires matching operand types, got %s and %s", left.Type(), right.Type())
	}
	if li, ok := left.(*objects.Integer); ok {
		ri := right.(*objects.Integer)
		switch n.Op {
		case lexer.PLUS:
			return &objects.Integer{Value: li.Value + ri.Value}, nil
		case lexer.MINUS:
			return &objects.Integer{Value: li.Value - ri.Value}, nil
		case lexer.MUL:
			return &objects.Integer{Value: li.Value * ri.Value}, nil
		case lexer.DIV:
			if ri.Value == 0 {
				return nil, errs.NewRuntimeError(n.Sp, "division by zero")
			}
			return &objects.Integer{Value: li.Value / ri.Value}, nil
		}
	}
	ld := left.(*objects.Double)
	rd := right.(*objects.Double)
	switch n.Op {
	case lexer.PLUS:
		return &objects.Double{Value: ld.Value + rd.Value}, nil
	case lexer.MINUS:
		return &objects.Double{Value: ld.Value - rd.Value}, nil
	case lexer.MUL:
		return &objects.Double{Value: ld.Value * rd.Value}, nil
	case lexer.DIV:
		if rd.Value == 0 {
			return nil, errs.NewRuntimeError(n.Sp, "division by zero")
		}
		return &objects.Double{Value: ld.Value / rd.Value}, nil
	}
	return nil, errs.NewRuntimeError(n.Sp, "unhandled arithmetic operator %s", n.Op)
}

// evalComparison implements <, <=, >, >= over matching numeric
// operand types.
func evalComparison(n *parser.BinaryExpr, left, right objects.Value) (objects.Value, error) {
	if !objects.IsNumeric(left.Type()) || !objects.IsNumeric(right.Type()) {
		return nil, errs.NewRuntimeError(n.Sp, "comparison requires numeric operands, got %s and %s", left.Type(), right.Type())
	}
	if left.Type() != right.Type() {
		return nil, errs.NewRuntimeError(n.Sp, "comparison requires matching operand types, got %s and %s", left.Type(), right.Type())
	}
	var lf, rf float64
	if li, ok := left.(*objects.Integer); ok {
		lf, rf = float64(li.Value), float64(right.(*objects.Integer).Value)
	} else {
		lf, rf = left.(*objects.Double).Value, right.(*objects.Double).Value
	}
	switch n.Op {
	case lexer.GREATER:
		return objects.BoolValue(lf > rf), nil
	case lexer.GREATER_EQUALS:
		return objects.BoolValue(lf >= rf), nil
	case lexer.LESSER:
		return objects.BoolValue(lf < rf), nil
	case lexer.LESSER_EQUALS:
		return objects.BoolValue(lf <= rf), nil
	}
	return nil, errs.NewRuntimeError(n.Sp, "unhandled comparison operator %s", n.Op)
}

// evalEquality implements == and !=. Defined on same-type operand
// pairs; a cross-type comparison yields false for == and true for !=
// rather than erroring.
func evalEquality(n *parser.BinaryExpr, left, right objects.Value) (objects.Value, error) {
	equal := left.Type() == right.Type() && valuesEqual(left, right)
	if n.Op == lexer.EQUALS {
		return objects.BoolValue(equal), nil
	}
	return objects.BoolValue(!equal), nil
}

func valuesEqual(left, right objects.Value) bool {
	switch l := left.(type) {
	case *objects.Integer:
		return l.Value == right.(*objects.Integer).Value
	case *objects.Double:
		return l.Value == right.(*objects.Double).Value
	case *objects.String:
		return l.Value == right.(*objects.String).Value
	case *objects.Boolean:
		return l.Value == right.(*objects.Boolean).Value
	default:
		return left == right
	}
}

// evalLogical implements short-circuit && and ||.
func (e *Evaluator) evalLogical(n *parser.LogicalExpr, sc *scope.Scope) (objects.Value, error) {
	left, err := e.Evaluate(n.Left, sc)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*objects.Boolean)
	if !ok {
		return nil, errs.NewRuntimeError(n.Sp, "logical operator requires a boolean left operand, got %s", left.Type())
	}
	if n.Op == lexer.AND && !lb.Value {
		return objects.False, nil
	}
	if n.Op == lexer.OR && lb.Value {
		return objects.True, nil
	}
	right, err := e.Evaluate(n.Right, sc)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*objects.Boolean)
	if !ok {
		return nil, errs.NewRuntimeError(n.Sp, "logical operator requires a boolean right operand, got %s", right.Type())
	}
	return rb, nil
}

func (e *Evaluator) evalAssign(n *parser.AssignExpr, sc *scope.Scope) (objects.Value, error) {
	value, err := e.Evaluate(n.Value, sc)
	if err != nil {
		return nil, err
	}
	if err := sc.Assign(n.Name, value); err != nil {
		return nil, errs.NewRuntimeError(n.Sp, "%s", err)
	}
	return value, nil
}

func (e *Evaluator) evalCall(n *parser.CallExpr, sc *scope.Scope) (objects.Value, error) {
	callee, err := e.Evaluate(n.Callee, sc)
	if err != nil {
		return nil, err
	}
	args := make([]objects.Value, len(n.Args))
	for i, argExpr := range n.Args {
		arg, err := e.Evaluate(argExpr, sc)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return e.CallFunction(callee, args, n.Sp)
}
