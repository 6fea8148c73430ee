/*
File    : mesa/parser/parser_literals.go
Package : parser
*/

package parser

import (
	"strconv"

	"github.com/mesa-lang/mesa/objects"
)

// parseIntLiteral converts a lexer-verified digit run into an
// Integer value. The lexer guarantees lit contains only ASCII digits,
// so the conversion cannot fail.
func parseIntLiteral(lit string) objects.Value {
	n, _ := strconv.ParseInt(lit, 10, 64)
	return &objects.Integer{Value: n}
}

// parseDoubleLiteral converts a lexer-verified "digits.digits" run
// into a Double value.
func parseDoubleLiteral(lit string) objects.Value {
	f, _ := strconv.ParseFloat(lit, 64)
	return &objects.Double{Value: f}
}
