/*
File    : mesa/builtin/math.go
Package : builtin
*/

package builtin

import (
	"fmt"

	"github.com/mesa-lang/mesa/objects"
)

// asInt requires arg to be an Integer, naming which positional
// argument failed when it is not.
func asInt(fnName string, pos int, arg objects.Value) (int64, error) {
	i, ok := arg.(*objects.Integer)
	if !ok {
		return 0, fmt.Errorf("%s: argument %d must be int, got %s", fnName, pos, arg.Type())
	}
	return i.Value, nil
}

// builtinMod implements `mod(int, int) -> int`, the remainder
// operator. The second argument must be non-negative.
func builtinMod(args []objects.Value) (objects.Value, error) {
	a, err := asInt("mod", 1, args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInt("mod", 2, args[1])
	if err != nil {
		return nil, err
	}
	if b < 0 {
		return nil, fmt.Errorf("mod: second argument must be non-negative, got %d", b)
	}
	if b == 0 {
		return nil, fmt.Errorf("mod: division by zero")
	}
	return &objects.Integer{Value: a % b}, nil
}

// builtinPow implements `pow(int, int) -> int`, integer
// exponentiation. A negative exponent is rejected since the result
// type is int.
func builtinPow(args []objects.Value) (objects.Value, error) {
	base, err := asInt("pow", 1, args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asInt("pow", 2, args[1])
	if err != nil {
		return nil, err
	}
	if exp < 0 {
		return nil, fmt.Errorf("pow: exponent must be non-negative, got %d", exp)
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return &objects.Integer{Value: result}, nil
}

// builtinNums implements the optional `nums(int, int) -> list-of-int`
// built-in: a half-open range [first, second).
func builtinNums(args []objects.Value) (objects.Value, error) {
	first, err := asInt("nums", 1, args[0])
	if err != nil {
		return nil, err
	}
	second, err := asInt("nums", 2, args[1])
	if err != nil {
		return nil, err
	}
	elements := make([]objects.Value, 0)
	for i := first; i < second; i++ {
		elements = append(elements, &objects.Integer{Value: i})
	}
	return &objects.List{Elements: elements}, nil
}
