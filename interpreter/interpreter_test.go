/*
File    : glox/interpreter/interpreter_test.go
Package : interpreter
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glox-lang/glox/diagnostics"
	"github.com/glox-lang/glox/parser"
	"github.com/glox-lang/glox/resolver"
	"github.com/glox-lang/glox/scanner"
)

// run scans, parses, resolves, and interprets source, returning everything
// written via print/println and whatever diagnostics were recorded.
func run(t *testing.T, source string) (string, *diagnostics.Sink) {
	t.Helper()
	var out bytes.Buffer
	sink := diagnostics.New(&out, false)

	tokens := scanner.New(source, sink).ScanTokens()
	statements := parser.New(tokens, sink).Parse()
	require.False(t, sink.HadError(), "unexpected parse errors: %v", sink.Messages())

	distances := resolver.New(sink).Resolve(statements)
	require.False(t, sink.HadError(), "unexpected resolve errors: %v", sink.Messages())

	interp := New(sink, &out)
	interp.Run(statements, distances)
	return out.String(), sink
}

// The table below is spec.md §8's "Concrete scenarios" table, verbatim.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "arithmetic precedence",
			source: `print 1 + 2 * 3;`,
			want:   "7\n",
		},
		{
			name:   "string concatenation via overloaded plus",
			source: `var a = "hi"; print a + " " + "there";`,
			want:   "hi there\n",
		},
		{
			name: "closures share captured bindings across calls",
			source: `
				fun mk(){ var i=0; fun inc(){ i = i+1; return i; } return inc; }
				var f=mk();
				print f();
				print f();
				print f();
			`,
			want: "1\n2\n3\n",
		},
		{
			name: "continue skips, break terminates",
			source: `for (var i=0; i<3; i=i+1) { if (i==1) continue; if (i==2) break; print i; }`,
			want:   "0\n",
		},
		{
			name:   "postfix increment returns old value",
			source: `var x = 5; print x++; print x;`,
			want:   "5\n6\n",
		},
		{
			name:   "ternary and or short-circuit fallback",
			source: `print (true ? "a" : "b"); print (nil or "fallback");`,
			want:   "a\nfallback\n",
		},
		{
			name:   "postfix backslash appends newline to a string",
			source: `var s = "hi"; print s\;`,
			want:   "hi\n\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, sink := run(t, c.source)
			assert.False(t, sink.HadRuntimeError())
			assert.Equal(t, c.want, got)
		})
	}
}

func TestUninitializedVariableReadIsRuntimeError(t *testing.T) {
	got, sink := run(t, `var x; print x;`)
	assert.True(t, sink.HadRuntimeError())
	assert.Contains(t, got, "used without initialization")
}

func TestEmptyProgramProducesNoOutputAndNoError(t *testing.T) {
	got, sink := run(t, ``)
	assert.Equal(t, "", got)
	assert.False(t, sink.HadError())
	assert.False(t, sink.HadRuntimeError())
}

func TestUndefinedVariableReadIsRuntimeError(t *testing.T) {
	_, sink := run(t, `print nope;`)
	assert.True(t, sink.HadRuntimeError())
}

func TestArithmeticOnNonNumbersIsRuntimeError(t *testing.T) {
	_, sink := run(t, `print "a" - 1;`)
	assert.True(t, sink.HadRuntimeError())
}

func TestAndShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	got, sink := run(t, `
		fun boom() { print "evaluated"; return true; }
		print false and boom();
	`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "false\n", got)
}

func TestOrShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	got, sink := run(t, `
		fun boom() { print "evaluated"; return true; }
		print true or boom();
	`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "true\n", got)
}

func TestCompoundAssignment(t *testing.T) {
	got, sink := run(t, `
		var x = 10;
		x += 5; print x;
		x -= 3; print x;
		x *= 2; print x;
		x /= 4; print x;
	`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "15\n12\n24\n6\n", got)
}

func TestDirectRecursion(t *testing.T) {
	got, sink := run(t, `
		fun fact(n) {
			if (n <= 1) return 1;
			return n * fact(n - 1);
		}
		print fact(5);
	`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "120\n", got)
}

func TestMutualRecursionAtTopLevel(t *testing.T) {
	got, sink := run(t, `
		fun isEven(n) { if (n == 0) return true; return isOdd(n - 1); }
		fun isOdd(n) { if (n == 0) return false; return isEven(n - 1); }
		print isEven(10);
	`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "true\n", got)
}

func TestCommaOperatorConcatenatesWhenEitherSideIsString(t *testing.T) {
	got, sink := run(t, `print ("x =", 1);`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "x =1\n", got)
}

func TestNativeClockReturnsNumber(t *testing.T) {
	got, sink := run(t, `print clock() >= 0;`)
	assert.False(t, sink.HadRuntimeError())
	assert.Equal(t, "true\n", got)
}

func TestNativePrintlnReturnsItself(t *testing.T) {
	got, sink := run(t, `
		var p = println(1);
		print p == println;
	`)
	assert.False(t, sink.HadRuntimeError())
	assert.True(t, strings.HasSuffix(got, "true\n"))
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, sink := run(t, `var x = 1; x();`)
	assert.True(t, sink.HadRuntimeError())
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	_, sink := run(t, `fun f(a, b) { return a; } f(1);`)
	assert.True(t, sink.HadRuntimeError())
}
