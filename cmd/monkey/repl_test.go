package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"monkeyscript/monkey"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestEvaluateBindsLetAcrossLines(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("let score = 40;")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "" {
		t.Fatalf("let line should print nothing, got %q", output)
	}

	output, isErr = m.evaluate("score + 2")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "42" {
		t.Fatalf("unexpected output: %q", output)
	}

	score, ok := m.env.Get("score")
	if !ok || score.Kind() != monkey.KindInteger || score.Int() != 40 {
		t.Fatalf("score binding lost: %v %t", score, ok)
	}
}

func TestEvaluateBindsUnderscoreToLastResult(t *testing.T) {
	m := newREPLModel()

	if output, isErr := m.evaluate("6 * 7"); isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}

	output, isErr := m.evaluate("_ + 0")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "42" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestEvaluateParseErrorShowsMonkeyFace(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("let y 10;")
	if !isErr {
		t.Fatalf("expected error output")
	}
	if !strings.Contains(output, "monkey business") {
		t.Fatalf("parse errors should carry the banner, got %q", output)
	}
	if !strings.Contains(output, "Next token expected to be") {
		t.Fatalf("parser message missing: %q", output)
	}
}

func TestEvaluateRuntimeErrorIsFlagged(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("5 + true")
	if !isErr {
		t.Fatalf("expected error output")
	}
	if output != "ERROR: Unexpected type on operation: INTEGER + BOOLEAN" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestHandleCommandResetClearsEnvironment(t *testing.T) {
	m := newREPLModel()
	if output, isErr := m.evaluate("let x = 1;"); isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}

	m, _ = m.handleCommand(":reset")
	if _, ok := m.env.Get("x"); ok {
		t.Fatalf("reset should drop bindings")
	}
}

func TestHandleAutocompleteCompletesSingleMatch(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("prep")

	m = m.handleAutocomplete()
	if got := m.textInput.Value(); got != "prepend" {
		t.Fatalf("unexpected completion: %q", got)
	}
}

func TestHandleAutocompleteListsMultipleMatches(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("let x = l")

	m = m.handleAutocomplete()
	if m.textInput.Value() != "let x = l" {
		t.Fatalf("ambiguous prefix should not rewrite input")
	}
	if len(m.history) != 1 {
		t.Fatalf("expected a completions entry, got %d", len(m.history))
	}
	output := m.history[0].output
	if !strings.Contains(output, "last") || !strings.Contains(output, "len") || !strings.Contains(output, "let") {
		t.Fatalf("unexpected completions: %q", output)
	}
}
