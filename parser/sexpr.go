/*
File    : mesa/parser/sexpr.go
Package : parser
*/

package parser

import "fmt"

// Sexpr renders an expression tree as a fully parenthesized
// s-expression, e.g. `(MINUS (MUL 2 5) 6)`. It exists for tests that need to
// assert on parse shape (operator precedence, associativity) without
// reaching into node internals.
func Sexpr(e Expr) string {
	switch n := e.(type) {
	case *LiteralExpr:
		return n.Value.String()
	case *IdentifierExpr:
		return n.Name
	case *GroupingExpr:
		return Sexpr(n.Inner)
	case *UnaryExpr:
		return fmt.Sprintf("(%s %s)", n.Op, Sexpr(n.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", n.Op, Sexpr(n.Left), Sexpr(n.Right))
	case *LogicalExpr:
		return fmt.Sprintf("(%s %s %s)", n.Op, Sexpr(n.Left), Sexpr(n.Right))
	case *AssignExpr:
		return fmt.Sprintf("(= %s %s)", n.Name, Sexpr(n.Value))
	case *CallExpr:
		out := fmt.Sprintf("(call %s", Sexpr(n.Callee))
		for _, a := range n.Args {
			out += " " + Sexpr(a)
		}
		return out + ")"
	default:
		return "?"
	}
}
