package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"monkeyscript/monkey"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return runREPL()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "only parse the script without executing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("monkey run: script path required")
	}
	scriptPath := remaining[0]
	absScriptPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(absScriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	program, parseErrs := monkey.Parse(string(input))
	if len(parseErrs) > 0 {
		return parseFailure(parseErrs)
	}
	if *checkOnly {
		return nil
	}
	result := monkey.Eval(program, monkey.NewEnv())
	if result.IsError() {
		return fmt.Errorf("execution failed: %s", result.ErrMessage())
	}
	if !result.IsNull() {
		fmt.Println(result.String())
	}
	return nil
}

func parseFailure(errs []error) error {
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, fmt.Sprintf("parse failed with %d error(s):", len(errs)))
	for _, err := range errs {
		lines = append(lines, "  "+err.Error())
	}
	return errors.New(strings.Join(lines, "\n"))
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s [repl | run [flags] <script> | help]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    start an interactive session (default when no command is given)")
	fmt.Fprintln(os.Stderr, "  run [flags] <script>")
	fmt.Fprintln(os.Stderr, "    evaluate a script file and print its final value")
	fmt.Fprintln(os.Stderr, "Flags for run:")
	fmt.Fprintln(os.Stderr, "  -check")
	fmt.Fprintln(os.Stderr, "    only parse the script without executing")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
