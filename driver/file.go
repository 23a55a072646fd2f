/*
File    : sigmaf/driver/file.go
Package : driver
*/

package driver

import (
	"fmt"
	"os"

	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/evaluator"
	"github.com/sigmaf-lang/sigmaf/object"
	"github.com/sigmaf-lang/sigmaf/parser"
)

// RunFile parses and evaluates path once against a fresh environment,
// the "simply parses and evaluates once" executor spec.md §4.7
// describes. It returns the environment (so `-r` can seed a REPL with
// it), the evaluation result, and a Go error for file-read or parse
// failures. A runtime Error value (including recursion-depth
// exhaustion) comes back as the result, not as the Go error.
func RunFile(path string) (*environment.Environment, object.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read file %q: %w", path, err)
	}

	p := parser.New(string(data))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return nil, nil, fmt.Errorf("%d parse error(s) in %s", len(errs), path)
	}

	env := environment.New(nil)
	ev := evaluator.New()
	result := ev.Eval(program, env)
	return env, result, nil
}
