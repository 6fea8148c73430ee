/*
File    : mesa/scope/scope.go
Package : scope
*/

// Package scope implements the environment chain: a mapping from name
// to (declared type, value) plus an optional enclosing scope. Name
// resolution walks from innermost to outermost, first match wins.
package scope

import (
	"fmt"

	"github.com/mesa-lang/mesa/objects"
)

// binding pairs a value with the static type it was declared (or
// resolved) with.
type binding struct {
	value        objects.Value
	declaredType objects.Type
}

// Scope is one node in the environment chain.
type Scope struct {
	vars   map[string]binding
	Parent *Scope
}

// New creates a Scope enclosed by parent. Pass nil for the global
// scope.
func New(parent *Scope) *Scope {
	return &Scope{Parent: parent}
}

// Declare binds name to value in the current scope only. If
// declaredType is non-empty and not objects.AnyType it is checked
// against value's runtime type; otherwise the binding's type is value's own runtime type, or
// objects.AnyType for callables with no declared type. Declare fails
// if name already exists in this scope. Shadowing an outer binding
// from an inner scope is fine; re-declaring within the same scope is
// not.
func (s *Scope) Declare(name string, value objects.Value, declaredType objects.Type) error {
	if s.vars == nil {
		s.vars = make(map[string]binding)
	}
	if _, exists := s.vars[name]; exists {
		return fmt.Errorf("variable %q already declared in this scope", name)
	}
	resolved := declaredType
	if resolved == "" {
		switch value.Type() {
		case objects.FunctionType, objects.NativeType:
			resolved = objects.AnyType
		default:
			resolved = value.Type()
		}
	}
	if declaredType != "" && declaredType != objects.AnyType && declaredType != value.Type() {
		return fmt.Errorf("cannot declare %q as %s: initializer has type %s", name, declaredType, value.Type())
	}
	s.vars[name] = binding{value: value, declaredType: resolved}
	return nil
}

// Assign resolves name through the enclosing chain and replaces its
// value in the owning scope. It fails if the name is unresolved, or
// if value's runtime type does not match the binding's declared type.
func (s *Scope) Assign(name string, value objects.Value) error {
	owner, b, ok := s.resolve(name)
	if !ok {
		return fmt.Errorf("undefined variable %q", name)
	}
	if b.declaredType != objects.AnyType && b.declaredType != value.Type() {
		return fmt.Errorf("cannot assign %s to %q of type %s", value.Type(), name, b.declaredType)
	}
	owner.vars[name] = binding{value: value, declaredType: b.declaredType}
	return nil
}

// Lookup resolves name through the enclosing chain and returns its
// current value.
func (s *Scope) Lookup(name string) (objects.Value, bool) {
	_, b, ok := s.resolve(name)
	if !ok {
		return nil, false
	}
	return b.value, true
}

// resolve walks from this scope outward, returning the scope that
// owns the binding (so Assign can mutate it in place) along with the
// binding itself.
func (s *Scope) resolve(name string) (*Scope, binding, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.vars == nil {
			continue
		}
		if b, ok := cur.vars[name]; ok {
			return cur, b, true
		}
	}
	return nil, binding{}, false
}

// Names returns the names declared directly in this scope, in no
// particular order. Used by the CLI's --dump-env flag to print the
// final global scope.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	return names
}

// DeclaredType returns the static type name was declared (or
// resolved) with, walking the enclosing chain.
func (s *Scope) DeclaredType(name string) (objects.Type, bool) {
	_, b, ok := s.resolve(name)
	return b.declaredType, ok
}
