/*
File    : mesa/cmd/mesa/main.go
Package : main
*/

// Command mesa is the entry point for the mesa interpreter. It runs in
// three modes: REPL mode with no arguments, file mode given a source
// path, and an additional --dump-env diagnostic mode that prints the
// final global scope after running a file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pborman/getopt/v2"

	"github.com/mesa-lang/mesa/errs"
	"github.com/mesa-lang/mesa/eval"
	"github.com/mesa-lang/mesa/parser"
	"github.com/mesa-lang/mesa/repl"
)

// VERSION is the current mesa release string.
var VERSION = "v1.0.0"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "mesa >>> "

// BANNER is the ASCII banner shown when the REPL starts.
var BANNER = `
 ███▄ ▄███▓▓█████   ██████  ▄▄▄
▓██▒▀█▀ ██▒▓█   ▀ ▒██    ▒ ▒████▄
▓██    ▓██░▒███   ░ ▓██▄   ▒██  ▀█▄
▒██    ▒██ ▒▓█  ▄   ▒   ██▒░██▄▄▄▄██
▒██▒   ░██▒░▒████▒▒██████▒▒ ▓█   ▓██▒
`

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	help := getopt.BoolLong("help", 'h', "display help")
	version := getopt.BoolLong("version", 'V', "display version")
	dumpEnv := getopt.BoolLong("dump-env", 0, "after running a file, print the final global scope")
	getopt.SetParameters("[file]")
	getopt.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	if *version {
		showVersion()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) == 0 {
		repl.New(BANNER, VERSION, PROMPT).Start(os.Stdin, os.Stdout)
		return
	}
	runFile(args[0], *dumpEnv)
}

func showHelp() {
	cyanColor.Println("mesa - a small statically typed scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  mesa                  start interactive REPL mode")
	fmt.Println("  mesa <file>           run a mesa source file")
	fmt.Println("  mesa --dump-env <file> run a file, then print its final global scope")
	fmt.Println("  mesa --help           display this help message")
	fmt.Println("  mesa --version        display version information")
}

func showVersion() {
	cyanColor.Printf("mesa %s\n", VERSION)
}

// runFile reads and runs a mesa source file, recovering from any panic
// in the evaluator the way the REPL does, and optionally dumping the
// final global scope's bindings for inspection.
func runFile(fileName string, dumpEnv bool) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator(os.Stdout)
	if err := executeWithRecovery(evaluator, string(source)); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if dumpEnv {
		dumpGlobalScope(evaluator)
	}
}

// executeWithRecovery parses and runs source, converting any panic
// that escapes the evaluator into an ordinary error instead of
// crashing the process.
func executeWithRecovery(evaluator *eval.Evaluator, source string) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("[RUNTIME ERROR] %v", recovered)
		}
	}()

	p := parser.NewParser(source)
	stmts, perr := p.Parse()
	if perr != nil {
		return fmt.Errorf("[%s] %v", errs.Label(perr), perr)
	}
	if rerr := evaluator.Run(stmts); rerr != nil {
		return fmt.Errorf("[%s] %v", errs.Label(rerr), rerr)
	}
	return nil
}

// dumpGlobalScope prints every binding left in the global scope after a
// run, one per line as `name: type = value`. Intended as a debugging
// aid for inspecting what a script left behind.
func dumpGlobalScope(evaluator *eval.Evaluator) {
	cyanColor.Println("[GLOBAL SCOPE]")
	for _, name := range evaluator.Global.Names() {
		value, _ := evaluator.Global.Lookup(name)
		declaredType, _ := evaluator.Global.DeclaredType(name)
		fmt.Printf("  %s: %s = %s\n", name, declaredType, value.String())
	}
}
