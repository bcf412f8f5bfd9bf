/*
File    : glox/repl/repl.go
Package : repl
*/

// Package repl implements glox's interactive read-eval-print loop, adapted
// from the teacher's repl/repl.go: readline-backed line editing and history,
// colored output, and a banner/prompt sourced from config instead of driver
// constants. Unlike the teacher (whose parser alone produces a value to
// echo), each line here runs the full scanner -> parser -> resolver ->
// interpreter pipeline, since the evaluator depends on resolver output.
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/glox-lang/glox/config"
	"github.com/glox-lang/glox/diagnostics"
	"github.com/glox-lang/glox/interpreter"
	"github.com/glox-lang/glox/parser"
	"github.com/glox-lang/glox/resolver"
	"github.com/glox-lang/glox/scanner"
	"github.com/glox-lang/glox/value"
)

// Repl drives one interactive session. A Repl holds one Interpreter across
// lines so top-level var/function declarations persist between them, the
// way a real session should behave.
type Repl struct {
	cfg    config.Config
	interp *interpreter.Interpreter
	sink   *diagnostics.Sink
}

// New creates a Repl that writes output and diagnostics to w.
func New(cfg config.Config, w io.Writer) *Repl {
	sink := diagnostics.New(w, cfg.ColorEnabled)
	return &Repl{
		cfg:    cfg,
		interp: interpreter.New(sink, w),
		sink:   sink,
	}
}

// PrintBanner writes the configured banner/version line.
func (r *Repl) PrintBanner(w io.Writer) {
	if r.cfg.ColorEnabled {
		color.New(color.FgCyan).Fprintln(w, r.cfg.Banner)
		color.New(color.FgCyan).Fprintf(w, "version %s — type /exit or Ctrl+D to quit\n", r.cfg.Version)
		return
	}
	io.WriteString(w, r.cfg.Banner+"\n")
	io.WriteString(w, "version "+r.cfg.Version+" — type /exit or Ctrl+D to quit\n")
}

// Start runs the loop until /exit, Ctrl+D, or an unrecoverable readline
// error, reading lines from in and writing the banner, prompt, and all
// output to out. Passing a net.Conn as both is what lets `glox serve`
// hand each connection its own session.
func (r *Repl) Start(in io.Reader, out io.Writer) error {
	r.PrintBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.cfg.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case "/exit":
			return nil
		case "/scope":
			r.dumpScope(out)
			continue
		}
		r.evalLine(out, line)
	}
}

// evalLine runs one line as its own program against the persistent
// interpreter state. A static error on this line never poisons later
// lines: the sink is reset before each line so HadError reflects only
// this line's diagnostics.
func (r *Repl) evalLine(out io.Writer, line string) {
	r.sink.Reset()

	sc := scanner.New(line, r.sink)
	tokens := sc.ScanTokens()
	if r.sink.HadError() {
		return
	}

	p := parser.New(tokens, r.sink)
	statements := p.Parse()
	if r.sink.HadError() {
		return
	}

	res := resolver.New(r.sink)
	distances := res.Resolve(statements)
	if r.sink.HadError() {
		return
	}

	v, ok, err := r.interp.RunLine(statements, distances)
	if err != nil {
		return
	}
	if ok {
		r.printValueEcho(out, v)
	}
}

// printValueEcho writes a trailing bare expression's value, yellow when
// color is enabled, matching the teacher's REPL success-output color.
func (r *Repl) printValueEcho(out io.Writer, v value.Value) {
	text := value.Stringify(v)
	if r.cfg.ColorEnabled {
		color.New(color.FgYellow).Fprintln(out, text)
		return
	}
	io.WriteString(out, text+"\n")
}

// dumpScope prints every binding currently defined at global scope, one
// per line as `name = value`, sorted for stable output.
func (r *Repl) dumpScope(out io.Writer) {
	bindings := r.interp.Globals.Bindings()
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		io.WriteString(out, name+" = "+value.Stringify(bindings[name])+"\n")
	}
}
