package mini

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func runSource(t *testing.T, source string) string {
	t.Helper()
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	if err := interp.Run(source); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out.String()
}

func runExpectingError(t *testing.T, source string) error {
	t.Helper()
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	err := interp.Run(source)
	if err == nil {
		t.Fatalf("expected error for %q, output was %q", source, out.String())
	}
	return err
}

func TestVariablesAndArithmetic(t *testing.T) {
	out := runSource(t, `x: int = 10
y: float = 2.5
print(x + y)
print(x - 1)
print(x * 2)
print(x / 4)
`)
	want := "12.5\n9\n20\n2.5\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestDivisionIsAlwaysFloat(t *testing.T) {
	out := runSource(t, "print(10 / 2)\n")
	if out != "5.0\n" {
		t.Fatalf("expected 5.0, got %q", out)
	}
}

func TestFloatDisplayKeepsDecimalPoint(t *testing.T) {
	out := runSource(t, "print(84.0 / 2)\nprint(5.0)\nprint(0.5)\n")
	if out != "42.0\n5.0\n0.5\n" {
		t.Fatalf("unexpected float output %q", out)
	}
}

func TestMixedArithmeticMatchesNative(t *testing.T) {
	out := runSource(t, "print(10 + 2.9 * 4 / 3.4 - 1.2 + 1)\n")
	want := formatFloat(10+2.9*4/3.4-1.2+1) + "\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestStringConcatenation(t *testing.T) {
	out := runSource(t, `print("n = " + 5)
print(1 + "x")
print("a" + "b")
`)
	if out != "n = 5\n1x\nab\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIfElse(t *testing.T) {
	out := runSource(t, `a: int = 5
if a > 3:
    print("big")
else:
    print("small")
if a > 10:
    print("huge")
else:
    print("modest")
`)
	if out != "big\nmodest\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIfWithoutElse(t *testing.T) {
	out := runSource(t, `if 0:
    print("never")
print("after")
`)
	if out != "after\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFunctionCall(t *testing.T) {
	out := runSource(t, `def add(a: int, b: int) -> int:
    return a + b

result: int = add(2, 3)
print(result)
`)
	if out != "5\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRecursion(t *testing.T) {
	out := runSource(t, `def fib(n: int) -> int:
    if n < 2:
        return n
    return fib(n - 1) + fib(n - 2)

print(fib(10))
`)
	if out != "55\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCallFrameDoesNotLeak(t *testing.T) {
	out := runSource(t, `x: int = 1

def bump() -> int:
    x = 99
    return x

print(bump())
print(x)
`)
	if out != "99\n1\n" {
		t.Fatalf("expected callee writes to stay in the frame, got %q", out)
	}
}

func TestCalleeSeesCallerBindings(t *testing.T) {
	out := runSource(t, `base: int = 100

def offset(n: int) -> int:
    return base + n

print(offset(1))
`)
	if out != "101\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFunctionWithoutReturnYieldsNone(t *testing.T) {
	out := runSource(t, `def noop() -> int:
    x: int = 1

print(noop())
`)
	if out != "None\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBareReturnYieldsNone(t *testing.T) {
	out := runSource(t, `def f() -> int:
    return

print(f())
`)
	if out != "None\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestReturnUnwindsRestOfBody(t *testing.T) {
	out := runSource(t, `def f(n: int) -> int:
    if n > 0:
        return 1
    print("unreached for positive n")
    return 2

print(f(5))
`)
	if out != "1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestTopLevelReturnStopsEvaluation(t *testing.T) {
	out := runSource(t, `print(1)
return
print(2)
`)
	if out != "1\n" {
		t.Fatalf("expected evaluation to stop at top-level return, got %q", out)
	}
}

func TestLogicalOperators(t *testing.T) {
	out := runSource(t, `print(1 and 2)
print(0 and 2)
print(0 or 2)
print(0 or "")
print(not "")
print(not 5)
`)
	if out != "True\nFalse\nTrue\nFalse\nTrue\nFalse\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	// The right operand would raise if evaluated.
	out := runSource(t, `if 0 and missing:
    print("never")
if 1 or missing:
    print("taken")
`)
	if out != "taken\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEqualityAndIdentity(t *testing.T) {
	out := runSource(t, `print(1 == 1.0)
print(1 is 1.0)
print(1 is 1)
print(1 != 2)
print(None is None)
print(5 is not None)
`)
	if out != "True\nFalse\nTrue\nTrue\nTrue\nTrue\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStringComparison(t *testing.T) {
	out := runSource(t, `print("apple" < "banana")
print("b" <= "a")
`)
	if out != "True\nFalse\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNoneDisplay(t *testing.T) {
	out := runSource(t, "print(None)\n")
	if out != "None\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCommentsAreNoOps(t *testing.T) {
	out := runSource(t, `# header comment
x: int = 1  # trailing note
print(x)
`)
	if out != "1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	if err := interp.Run("x: int = 41\n"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := interp.Run("print(x + 1)\n"); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if out.String() != "42\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	var out bytes.Buffer
	first := NewInterpreter(Config{Output: &out})
	if err := first.Run("x: int = 1\n"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	second := NewInterpreter(Config{Output: &out})
	if err := second.Run("print(x)\n"); err == nil {
		t.Fatalf("expected undefined variable in fresh interpreter")
	}
}

func TestEffectsBeforeErrorAreKept(t *testing.T) {
	var out bytes.Buffer
	interp := NewInterpreter(Config{Output: &out})
	err := interp.Run("x: int = 7\nprint(missing)\n")
	if err == nil {
		t.Fatalf("expected name error")
	}
	globals := interp.Globals()
	if val, ok := globals["x"]; !ok || val.Int() != 7 {
		t.Fatalf("expected x to survive the failed run, got %#v", globals)
	}
}

func TestGlobalsSnapshot(t *testing.T) {
	interp := NewInterpreter(Config{})
	if err := interp.Run("x: int = 1\n"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	snapshot := interp.Globals()
	snapshot["x"] = NewInt(999)
	if interp.Globals()["x"].Int() != 1 {
		t.Fatalf("mutating the snapshot must not affect the interpreter")
	}
}

func TestNameErrors(t *testing.T) {
	cases := []struct {
		name    string
		source  string
		message string
	}{
		{"undefined variable", "print(missing)\n", "undefined variable"},
		{"redeclaration", "x: int = 1\nx: int = 2\n", "already declared"},
		{"assignment to undeclared", "x = 1\n", "undeclared variable"},
		{"undefined function", "nope()\n", "undefined function"},
		{"duplicate function", "def f() -> int:\n    return 1\ndef f() -> int:\n    return 2\n", "already defined"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := runExpectingError(t, tc.source)
			var nameErr *NameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("expected *NameError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Fatalf("expected message containing %q, got %q", tc.message, err.Error())
			}
		})
	}
}

func TestArityError(t *testing.T) {
	err := runExpectingError(t, `def add(a: int, b: int) -> int:
    return a + b

add(1)
`)
	var arityErr *ArityError
	if !errors.As(err, &arityErr) {
		t.Fatalf("expected *ArityError, got %T: %v", err, err)
	}
	if arityErr.Function != "add" || arityErr.Want != 2 || arityErr.Got != 1 {
		t.Fatalf("unexpected arity error: %#v", arityErr)
	}
}

func TestTypeErrors(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"string subtraction", `x: str = "a" - 1` + "\n"},
		{"string multiplication", `x: str = "a" * 2` + "\n"},
		{"string division", `x: str = "a" / 2` + "\n"},
		{"bool comparison", "x: bool = True < False\n"},
		{"none addition", "x: int = None + 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := runExpectingError(t, tc.source)
			var typeErr *TypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("expected *TypeError, got %T: %v", err, err)
			}
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, source := range []string{"print(1 / 0)\n", "print(1.5 / 0.0)\n"} {
		err := runExpectingError(t, source)
		var divErr *DivisionByZeroError
		if !errors.As(err, &divErr) {
			t.Fatalf("expected *DivisionByZeroError for %q, got %T: %v", source, err, err)
		}
	}
}

func TestRuntimeErrorIncludesCodeFrame(t *testing.T) {
	err := runExpectingError(t, "x: int = 1\nprint(missing)\n")
	msg := err.Error()
	for _, want := range []string{"--> line 2, column 7", " 2 | print(missing)", "^"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in code frame, got %q", want, msg)
		}
	}
}

func TestArgumentsEvaluateBeforeArityCheck(t *testing.T) {
	// The bad argument raises before the arity mismatch is noticed.
	err := runExpectingError(t, `def f(a: int, b: int) -> int:
    return a

f(missing)
`)
	var nameErr *NameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected *NameError from argument evaluation, got %T: %v", err, err)
	}
}
