package monkey

// Env is a chained mapping of names to values, modeling lexical scope.
// A child never owns its parent: several closures created in the same call
// share one outer scope, and the parent link is read-only navigation.
type Env struct {
	parent *Env
	values map[string]Value
}

// NewEnv creates a top-level scope, one per REPL session or script run.
func NewEnv() *Env {
	return &Env{values: make(map[string]Value)}
}

// NewEnclosedEnv creates the child scope for a function invocation.
func NewEnclosedEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Define binds a name in the current scope only. Outer scopes are never
// written through, which gives `let` shadowing semantics rather than
// mutable outer assignment.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Bindings returns a copy of the names bound directly in this scope,
// without following the parent chain.
func (e *Env) Bindings() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
