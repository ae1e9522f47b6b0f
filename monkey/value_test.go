package monkey

import "testing"

func TestValueStringForms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"if (false) { 1 }", "NULL"},
		{"true", "true"},
		{"false", "false"},
		{"42", "42"},
		{"-42", "-42"},
		{`"hello"`, "hello"},
		{`[1, "two", [3]]`, "[1,two,[3]]"},
		{"[]", "[]"},
		{"{}", "{ }"},
		{"fn(x, y) { x + y }", "fn (x, y) { (x + y) }"},
		{"fn() { 1 }", "fn () { 1 }"},
		{"5 + true", "ERROR: Unexpected type on operation: INTEGER + BOOLEAN"},
	}
	for _, tt := range tests {
		result := testEval(t, tt.input)
		if got := result.String(); got != tt.expected {
			t.Fatalf("%q: expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestValueStringHashSorted(t *testing.T) {
	// Hash rendering sorts entries so equal hashes render identically.
	result := testEval(t, `{"b": 2, "a": 1, "c": 3}`)
	if got := result.String(); got != "{ a = 1, b = 2, c = 3 }" {
		t.Fatalf("unexpected rendering: %q", got)
	}

	result = testEval(t, `{true: 1, 2: "x"}`)
	if got := result.String(); got != "{ 2 = x, true = 1 }" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestValueSingletons(t *testing.T) {
	if NewBoolean(true) != True || NewBoolean(false) != False {
		t.Fatalf("boolean constructor must return the singletons")
	}
	if testEval(t, "1 == 1") != True {
		t.Fatalf("comparison must yield the True singleton")
	}
	if testEval(t, "if (false) { 1 }") != Null {
		t.Fatalf("missing alternative must yield the Null singleton")
	}
}

func TestValueTruthiness(t *testing.T) {
	tests := []struct {
		value    Value
		expected bool
	}{
		{Null, false},
		{False, false},
		{True, true},
		{NewInteger(0), true},
		{NewInteger(-1), true},
		{NewString(""), true},
		{NewArray(nil), true},
	}
	for _, tt := range tests {
		if tt.value.Truthy() != tt.expected {
			t.Fatalf("%s: expected truthiness %t", tt.value.String(), tt.expected)
		}
	}
}

func TestHashKeyOf(t *testing.T) {
	a, ok := HashKeyOf(NewString("x"))
	if !ok {
		t.Fatalf("string must be hashable")
	}
	b, _ := HashKeyOf(NewString("x"))
	if a != b {
		t.Fatalf("equal strings must share a key")
	}

	c, _ := HashKeyOf(NewInteger(1))
	d, _ := HashKeyOf(True)
	if a == c || c == d {
		t.Fatalf("keys of different kinds must differ")
	}

	if _, ok := HashKeyOf(NewArray(nil)); ok {
		t.Fatalf("arrays must not be hashable")
	}
	if _, ok := HashKeyOf(Null); ok {
		t.Fatalf("NULL must not be hashable")
	}

	// The key round-trips back to its source value.
	if key, _ := HashKeyOf(NewInteger(7)); key.Value() != NewInteger(7) {
		t.Fatalf("integer key did not round-trip")
	}
}

func TestErrorValueAccessors(t *testing.T) {
	err := NewError("bad thing: %d", 7)
	if !err.IsError() {
		t.Fatalf("expected an error value")
	}
	if err.ErrMessage() != "bad thing: 7" {
		t.Fatalf("unexpected message: %q", err.ErrMessage())
	}
	if err.String() != "ERROR: bad thing: 7" {
		t.Fatalf("unexpected rendering: %q", err.String())
	}
}
