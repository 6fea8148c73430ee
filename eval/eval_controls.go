/*
File    : mesa/eval/eval_controls.go
Package : eval
*/

package eval

import "github.com/mesa-lang/mesa/objects"

// returnSignal is the non-local control-flow value a return statement
// raises. It unwinds Execute's recursive walk, through blocks and
// if/while bodies, until it reaches the function-call boundary in
// callUserFunction, which catches it and never lets it surface as an
// ordinary error. It must never be confused with a genuine failure:
// every place that propagates a plain error from Execute already
// returns early, so a *returnSignal only ever travels upward through
// the "no error, keep going" path being deliberately short-circuited.
type returnSignal struct {
	Value objects.Value
}

func (r *returnSignal) Error() string { return "return signal" }
