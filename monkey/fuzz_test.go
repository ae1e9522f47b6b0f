package monkey

import "testing"

func FuzzParseDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("let x = 5;")
	f.Add("let broken (")
	f.Add("fn(x, y) { x + y }(1, 2)")
	f.Add(`{"unclosed: 1`)
	f.Add("[[[[[[")
	f.Add("!!!!!-----5")
	f.Add(`"never terminated`)

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 8192 {
			input = input[:8192]
		}
		_, _ = Parse(input)
	})
}

func FuzzEvalDoesNotPanic(f *testing.F) {
	f.Add("5 + true")
	f.Add("let f = fn(x) { f(x) }; 1")
	f.Add("[1, 2, 3][99]")
	f.Add(`{true: 1, 2: "x"}[false]`)
	f.Add("len(push(tail([1, 2]), 3))")
	f.Add("if (1 / 0) { 1 } else { 2 }")

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 4096 {
			input = input[:4096]
		}
		program, errs := Parse(input)
		if len(errs) > 0 {
			return
		}
		_ = Eval(program, NewEnv())
	})
}
