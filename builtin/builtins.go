/*
File    : mesa/builtin/builtins.go
Package : builtin
*/

// Package builtin registers the language's native functions (mod,
// pow, and the optional nums) into a fresh global scope before any
// user code runs. The registry mirrors the teacher's std.Builtins
// list-of-callbacks shape, trimmed to exactly the functions this
// language's surface grammar calls for: no package/import system,
// since the language has none (see SPEC_FULL.md's Non-goals).
package builtin

import (
	"github.com/mesa-lang/mesa/function"
	"github.com/mesa-lang/mesa/objects"
	"github.com/mesa-lang/mesa/scope"
)

// all is the flat list of native functions registered into every
// fresh global scope.
var all = []*function.NativeFunction{
	{Name: "mod", Arity: 2, Call: builtinMod},
	{Name: "pow", Arity: 2, Call: builtinPow},
	{Name: "nums", Arity: 2, Call: builtinNums},
}

// Register declares every native function into global under its own
// name with declared type NATIVE_FUNCTION.
func Register(global *scope.Scope) {
	for _, nf := range all {
		// Declare cannot fail here: global is freshly built and each
		// name is registered exactly once.
		_ = global.Declare(nf.Name, nf, objects.NativeType)
	}
}

// Lookup returns the native function registered under name, if any.
// Calls resolve through the scope chain like any other value; this is
// a standalone accessor for inspecting the registry itself (tests,
// future tooling), not part of the call path.
func Lookup(name string) (*function.NativeFunction, bool) {
	for _, nf := range all {
		if nf.Name == name {
			return nf, true
		}
	}
	return nil, false
}
