/*
File    : mesa/eval/evaluator_test.go
Package : eval
*/

package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesa-lang/mesa/objects"
	"github.com/mesa-lang/mesa/parser"
)

// run parses and evaluates src against a fresh evaluator, returning
// whatever was written to the program's standard output.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.NewParser(src)
	stmts, err := p.Parse()
	require.NoError(t, err)
	var out bytes.Buffer
	ev := NewEvaluator(&out)
	err = ev.Run(stmts)
	return out.String(), err
}

func TestDeclareAndLookup(t *testing.T) {
	p := parser.NewParser(`int a = 5; write(a);`)
	stmts, err := p.Parse()
	require.NoError(t, err)
	var out bytes.Buffer
	ev := NewEvaluator(&out)
	require.NoError(t, ev.Run(stmts))
	assert.Equal(t, "5\n", out.String())
	v, ok := ev.Global.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "5", v.String())
}

func TestReassignment(t *testing.T) {
	out, err := run(t, `int a = 1; a = 2; write(a);`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestShadowing_InnerBlockDoesNotLeak(t *testing.T) {
	p := parser.NewParser(`int a = 1; { int b = 2; int c = 3; }`)
	stmts, err := p.Parse()
	require.NoError(t, err)
	ev := NewEvaluator(&bytes.Buffer{})
	require.NoError(t, ev.Run(stmts))
	_, aOK := ev.Global.Lookup("a")
	_, bOK := ev.Global.Lookup("b")
	_, cOK := ev.Global.Lookup("c")
	assert.True(t, aOK)
	assert.False(t, bOK)
	assert.False(t, cOK)
}

func TestWhileLoop(t *testing.T) {
	p := parser.NewParser(`int i = 1; while (i < 9) { i = i + 1; }`)
	stmts, err := p.Parse()
	require.NoError(t, err)
	ev := NewEvaluator(&bytes.Buffer{})
	require.NoError(t, ev.Run(stmts))
	v, ok := ev.Global.Lookup("i")
	require.True(t, ok)
	assert.Equal(t, "9", v.String())
}

func TestDeclareTypeMismatch_Fails(t *testing.T) {
	_, err := run(t, `int a = "x";`)
	assert.Error(t, err)
}

func TestAssignTypeMismatch_Fails(t *testing.T) {
	_, err := run(t, `int a = 1; a = 1.5;`)
	assert.Error(t, err)
}

func TestRedeclarationInSameScope_Fails(t *testing.T) {
	_, err := run(t, `int a = 1; int a = 2;`)
	assert.Error(t, err)
}

func TestFunctionCallReturnsValue(t *testing.T) {
	out, err := run(t, `fun add(int a, int b) { return a + b; } write(add(2,3));`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestFunctionLexicalScoping_CapturesDefiningEnvironment(t *testing.T) {
	src := `
	int x = 1;
	fun useX() { return x; }
	{
		int x = 99;
		write(useX());
	}
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestLogicalShortCircuit_AndSkipsRightOnFalse(t *testing.T) {
	src := `
	fun boom() { return 1/0 == 0; }
	write(false && boom());
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestLogicalShortCircuit_OrSkipsRightOnTrue(t *testing.T) {
	src := `
	fun boom() { return 1/0 == 0; }
	write(true || boom());
	`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestTopLevelReturn_IsRuntimeError(t *testing.T) {
	_, err := run(t, `return 1;`)
	assert.Error(t, err)
}

func TestFizzBuzz(t *testing.T) {
	src := `
	int i = 1;
	while (i < 101) {
	    if (mod(i,15) == 0) { write("FizzBuzz"); }
	    elif (mod(i,3) == 0) { write("Fizz"); }
	    elif (mod(i,5) == 0) { write("Buzz"); }
	    else { write(i); }
	    i = i + 1;
	}
	`
	out, err := run(t, src)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 100)
	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "Fizz", lines[2])
	assert.Equal(t, "Buzz", lines[4])
	assert.Equal(t, "FizzBuzz", lines[14])
	assert.Equal(t, "Buzz", lines[99])
}

func TestDivisionByZero_IsRuntimeError(t *testing.T) {
	_, err := run(t, `int a = 1 / 0;`)
	assert.Error(t, err)
}

func TestIntDivision_TruncatesAndStaysInt(t *testing.T) {
	p := parser.NewParser(`int a = 7 / 2;`)
	stmts, err := p.Parse()
	require.NoError(t, err)
	ev := NewEvaluator(&bytes.Buffer{})
	require.NoError(t, ev.Run(stmts))
	v, ok := ev.Global.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "3", v.String())
	typ, ok := ev.Global.DeclaredType("a")
	require.True(t, ok)
	assert.Equal(t, objects.IntType, typ)
}

func TestDoubleDivision_StaysDouble(t *testing.T) {
	p := parser.NewParser(`double a = 7.0 / 2.0;`)
	stmts, err := p.Parse()
	require.NoError(t, err)
	ev := NewEvaluator(&bytes.Buffer{})
	require.NoError(t, ev.Run(stmts))
	v, ok := ev.Global.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "3.5", v.String())
}

func TestMixedIntDoubleDivision_IsRuntimeError(t *testing.T) {
	_, err := run(t, `double a = 7 / 2.0;`)
	assert.Error(t, err)
}

func TestCallOnNonCallable_IsRuntimeError(t *testing.T) {
	_, err := run(t, `int a = 1; a();`)
	assert.Error(t, err)
}

func TestNativeModAndPow(t *testing.T) {
	out, err := run(t, `write(mod(10,3)); write(pow(2,10));`)
	require.NoError(t, err)
	assert.Equal(t, "1\n1024\n", out)
}
