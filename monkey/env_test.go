package monkey

import "testing"

func TestEnvDefineAndGet(t *testing.T) {
	env := NewEnv()
	env.Define("x", NewInteger(1))

	got, ok := env.Get("x")
	if !ok || got.Int() != 1 {
		t.Fatalf("binding lost: %v %t", got, ok)
	}
	if _, ok := env.Get("missing"); ok {
		t.Fatalf("unexpected binding for missing name")
	}
}

func TestEnvLookupWalksParentChain(t *testing.T) {
	outer := NewEnv()
	outer.Define("x", NewInteger(1))
	inner := NewEnclosedEnv(outer)

	got, ok := inner.Get("x")
	if !ok || got.Int() != 1 {
		t.Fatalf("outer binding not visible from inner scope")
	}
}

func TestEnvDefineShadowsWithoutMutatingOuter(t *testing.T) {
	outer := NewEnv()
	outer.Define("x", NewInteger(1))
	inner := NewEnclosedEnv(outer)
	inner.Define("x", NewInteger(2))

	if got, _ := inner.Get("x"); got.Int() != 2 {
		t.Fatalf("inner scope should see the shadowing binding")
	}
	if got, _ := outer.Get("x"); got.Int() != 1 {
		t.Fatalf("outer binding mutated by inner define")
	}
}

func TestEnvRedefineInSameScope(t *testing.T) {
	env := NewEnv()
	env.Define("x", NewInteger(1))
	env.Define("x", NewInteger(2))

	if got, _ := env.Get("x"); got.Int() != 2 {
		t.Fatalf("redefinition should replace the binding")
	}
}

func TestEnvBindingsSnapshot(t *testing.T) {
	env := NewEnv()
	env.Define("a", NewInteger(1))
	env.Define("b", NewString("two"))

	snapshot := env.Bindings()
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(snapshot))
	}

	// Mutating the snapshot must not touch the environment.
	snapshot["a"] = NewInteger(99)
	if got, _ := env.Get("a"); got.Int() != 1 {
		t.Fatalf("snapshot aliases the environment")
	}
}

func TestEnvClosureSeesLaterDefinitions(t *testing.T) {
	// A closure holds its environment by reference, so bindings defined
	// after the closure still resolve. This is what makes recursion via
	// let work.
	input := `
let call = fn() { helper() };
let helper = fn() { 42 };
call()`
	expectInteger(t, input, 42)
}
