/*
File    : sigmaf/driver/repl.go
Package : driver
*/

package driver

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sigmaf-lang/sigmaf/environment"
	"github.com/sigmaf-lang/sigmaf/evaluator"
	"github.com/sigmaf-lang/sigmaf/object"
	"github.com/sigmaf-lang/sigmaf/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// blockComment matches `/* ... */` lazily: spec.md §6.3 is explicit
// that nesting is not supported.
var blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// REPL is a long-lived interactive session: one root Environment that
// accumulates bindings across lines, mirroring the teacher's
// repl.Repl but replacing its one-line-at-a-time evaluation with
// accumulate-and-reevaluate semantics (spec.md §4.7).
type REPL struct {
	Config *Config

	env    *environment.Environment
	eval   *evaluator.Evaluator
	source strings.Builder
}

// NewREPL builds a REPL seeded with an empty root environment.
func NewREPL(cfg *Config) *REPL {
	return &REPL{
		Config: cfg,
		env:    environment.New(nil),
		eval:   evaluator.New(),
	}
}

// NewREPLWithEnv builds a REPL that starts from an already-populated
// environment, used by `-r` to drop into an interactive session after
// executing a file (spec.md §6.1).
func NewREPLWithEnv(cfg *Config, env *environment.Environment) *REPL {
	return &REPL{Config: cfg, env: env, eval: evaluator.New()}
}

// PrintBanner writes the startup banner, version/author/license line,
// and usage hints.
func (r *REPL) PrintBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Config.Line)
	greenColor.Fprintf(writer, "%s\n", r.Config.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Config.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Config.Version+" | Author: "+r.Config.Author+" | License: "+r.Config.License)
	blueColor.Fprintf(writer, "%s\n", r.Config.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to SigmaF!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter. Unbalanced (/[/{ prompts for more input.")
	cyanColor.Fprintf(writer, "%s\n", "Special commands: exit(), clear(), update(), load(path)")
	blueColor.Fprintf(writer, "%s\n", r.Config.Line)
}

// Start runs the read-accumulate-eval-print loop until exit() or EOF.
func (r *REPL) Start(writer io.Writer, printBanner bool) {
	if printBanner {
		r.PrintBanner(writer)
	}

	rl, err := readline.New(r.Config.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := r.readStatement(rl)
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if line == "" {
			continue
		}

		switch line {
		case "exit()":
			writer.Write([]byte("Good Bye!\n"))
			return
		case "clear()":
			r.env = environment.New(nil)
			r.source.Reset()
			cyanColor.Fprintln(writer, "Environment cleared.")
			continue
		case "update()":
			r.reload(writer, "")
			continue
		}
		if path, ok := parseLoadCommand(line); ok {
			r.reload(writer, path)
			continue
		}

		r.evalLine(writer, line)
	}
}

// readStatement reads lines from rl, stripping comments, until the
// accumulated input has balanced parens/brackets/braces or the user
// terminates it with a line holding only `;`.
func (r *REPL) readStatement(rl *readline.Instance) (string, error) {
	var buf strings.Builder
	depth := 0
	first := true

	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		line = stripComments(line)
		line = strings.TrimSpace(line)
		if line == "" && first {
			return "", nil
		}
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(line)
		depth += bracketDelta(line)
		first = false

		if depth <= 0 && strings.HasSuffix(strings.TrimSpace(line), ";") {
			break
		}
		if line == ";" {
			break
		}
		if depth <= 0 && isSpecialCommand(strings.TrimSpace(buf.String())) {
			break
		}
		if depth > 0 {
			rl.SetPrompt("... ")
			continue
		}
		break
	}
	rl.SetPrompt(r.Config.Prompt)
	return strings.TrimSpace(buf.String()), nil
}

func isSpecialCommand(s string) bool {
	if s == "exit()" || s == "clear()" || s == "update()" {
		return true
	}
	_, ok := parseLoadCommand(s)
	return ok
}

var loadCommand = regexp.MustCompile(`^load\((.+)\)$`)

func parseLoadCommand(s string) (string, bool) {
	m := loadCommand.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	path := strings.TrimSpace(m[1])
	path = strings.Trim(path, `"'`)
	return path, true
}

// stripComments removes a trailing `--` line comment and any `/* ... */`
// block comments (lazily, no nesting) per spec.md §6.3.
func stripComments(line string) string {
	line = blockComment.ReplaceAllString(line, "")
	if idx := strings.Index(line, "--"); idx >= 0 {
		line = line[:idx]
	}
	return line
}

func bracketDelta(line string) int {
	depth := 0
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case '(', '[', '{':
			if !inString {
				depth++
			}
		case ')', ']', '}':
			if !inString {
				depth--
			}
		}
	}
	return depth
}

// evalLine accumulates line onto the session's source, reparses and
// reevaluates the whole accumulation against the live environment
// (spec.md §4.7), and prints the last statement's result.
func (r *REPL) evalLine(writer io.Writer, line string) {
	candidate := r.source.String() + line + "\n"

	p := parser.New(candidate)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := r.eval.Eval(program, r.env)
	if object.IsError(result) {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	r.source.WriteString(line)
	r.source.WriteString("\n")

	if result != nil && result != object.NULL {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}

// reload re-reads path (or the session's own accumulated source when
// path is empty, for update()) into a fresh environment, then merges
// it into the live one, removing colliding names first so the fresh
// definitions win (spec.md §4.7).
func (r *REPL) reload(writer io.Writer, path string) {
	var src string
	if path == "" {
		src = r.source.String()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			redColor.Fprintf(writer, "Could not read file %q: %v\n", path, err)
			return
		}
		src = string(data)
	}

	p := parser.New(src)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	fresh := environment.New(nil)
	freshEval := evaluator.New()
	result := freshEval.Eval(program, fresh)
	if object.IsError(result) {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	for _, name := range fresh.Names() {
		r.env.Delete(name)
	}
	for _, name := range fresh.Names() {
		val, _ := fresh.Get(name)
		r.env.Set(name, val)
	}
	cyanColor.Fprintln(writer, "Reloaded.")
}
