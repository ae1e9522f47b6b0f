package monkey

import "testing"

func TestBuiltinLen(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{`len("")`, 0},
		{`len("four")`, 4},
		{`len("hello world")`, 11},
		{"len([])", 0},
		{"len([1, 2, 3])", 3},
		{`len([1, "two", [3]])`, 3},
	}
	for _, tt := range tests {
		expectInteger(t, tt.input, tt.expected)
	}

	expectError(t, "len(1)", "Unsupported argument to len: INTEGER")
	expectError(t, `len("one", "two")`, "Wrong number of arguments to len. Expected: 1. Got: 2")
	expectError(t, "len()", "Wrong number of arguments to len. Expected: 1. Got: 0")
}

func TestBuiltinHeadLast(t *testing.T) {
	expectInteger(t, "head([1, 2, 3])", 1)
	expectInteger(t, "last([1, 2, 3])", 3)
	expectNull(t, "head([])")
	expectNull(t, "last([])")
	expectError(t, "head(1)", "Unsupported argument to head: INTEGER")
	expectError(t, `last("abc")`, "Unsupported argument to last: STRING")
}

func TestBuiltinTailInit(t *testing.T) {
	result := testEval(t, "tail([1, 2, 3])")
	if got := result.String(); got != "[2,3]" {
		t.Fatalf("unexpected tail result: %q", got)
	}
	result = testEval(t, "init([1, 2, 3])")
	if got := result.String(); got != "[1,2]" {
		t.Fatalf("unexpected init result: %q", got)
	}

	// Single-element arrays shrink to an empty array, not NULL.
	result = testEval(t, "tail([1])")
	if result.Kind() != KindArray || len(result.Array()) != 0 {
		t.Fatalf("expected empty array, got %s", result.String())
	}

	expectNull(t, "tail([])")
	expectNull(t, "init([])")
}

func TestBuiltinTailDoesNotAliasSource(t *testing.T) {
	input := `
let xs = [1, 2, 3];
let rest = push(tail(xs), 99);
xs`
	result := testEval(t, input)
	if got := result.String(); got != "[1,2,3]" {
		t.Fatalf("source array changed: %q", got)
	}
}

func TestBuiltinPushPrepend(t *testing.T) {
	result := testEval(t, "push([1, 2], 3)")
	if got := result.String(); got != "[1,2,3]" {
		t.Fatalf("unexpected push result: %q", got)
	}
	result = testEval(t, "prepend([2, 3], 1)")
	if got := result.String(); got != "[1,2,3]" {
		t.Fatalf("unexpected prepend result: %q", got)
	}

	// push copies: the original binding is untouched.
	input := `
let xs = [1];
let ys = push(xs, 2);
len(xs) + len(ys)`
	expectInteger(t, input, 3)

	expectError(t, "push(1, 2)", "Unsupported argument to push: INTEGER")
	expectError(t, "push([1])", "Wrong number of arguments to push. Expected: 2. Got: 1")
	expectError(t, "prepend([1], 2, 3)", "Wrong number of arguments to prepend. Expected: 2. Got: 3")
}

func TestBuiltinsShadowedByBindings(t *testing.T) {
	// User bindings win over builtins during lookup.
	expectInteger(t, "let len = fn(x) { 42 }; len([1, 2, 3])", 42)
}

func TestBuiltinRendering(t *testing.T) {
	result := testEval(t, "len")
	if result.Kind() != KindBuiltin {
		t.Fatalf("expected builtin, got %s", result.Kind())
	}
	if got := result.String(); got != "builtin function len" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestBuiltinNamesCoversTable(t *testing.T) {
	names := BuiltinNames()
	if len(names) != len(builtins) {
		t.Fatalf("expected %d names, got %d", len(builtins), len(names))
	}
	for _, name := range names {
		if _, ok := lookupBuiltin(name); !ok {
			t.Fatalf("name %q does not resolve", name)
		}
	}
}
