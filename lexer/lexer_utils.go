/*
File    : mesa/lexer/lexer_utils.go
Package : lexer
*/

package lexer

import "regexp"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// identifierPattern is the language's identifier grammar: a letter
// followed by up to 50 more letters or digits. Underscores are not
// legal identifier characters.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{0,50}$`)

// IsAllowedIdentifier reports whether word is a syntactically legal
// identifier, independent of whether it collides with a keyword.
func IsAllowedIdentifier(word string) bool {
	return identifierPattern.MatchString(word)
}
