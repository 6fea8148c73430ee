/*
File    : mesa/repl/repl.go
Package : repl
*/

// Package repl implements the interactive shell: a readline-backed
// loop that parses and evaluates each input line as its own top-level
// program, persisting bindings across lines the way a REPL is expected
// to.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/eval"
	"github.com/mesa-lang/mesa/parser"
)

var (
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

// Repl holds the cosmetic bits printed around the interactive
// session: a banner, version string, and prompt.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New builds a Repl with the given banner, version, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

// Start runs the read-eval-print loop until the user types `.exit` or
// closes the input stream. Lines are read by readline from the
// process's standard input; reader is not used. The banner, `write`
// output and diagnostics go to writer. Every accepted line
// is parsed and evaluated against the same evaluator instance, so
// declarations and functions from earlier lines stay in scope.
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	fmt.Fprintln(writer, r.Banner)
	infoColor.Fprintf(writer, "mesa %s, type .exit to quit\n", r.Version)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator(writer)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)
		r.evalLine(evaluator, writer, line)
	}
}

// evalLine parses and evaluates a single REPL line, recovering from
// any panic the way the file-mode driver does, and printing a red
// diagnostic instead of crashing the session.
func (r *Repl) evalLine(evaluator *eval.Evaluator, writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			errColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	stmts, err := p.Parse()
	if err != nil {
		errColor.Fprintf(writer, "[%s] %v\n", errs.Label(err), err)
		return
	}
	if err := evaluator.Run(stmts); err != nil {
		errColor.Fprintf(writer, "[%s] %v\n", errs.Label(err), err)
	}
}
