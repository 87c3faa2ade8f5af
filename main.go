/*
File    : cou/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Cou interpreter. It runs a single
Cou source file through the lexer-parser-evaluator pipeline:

	cou <source-file>

Exit codes:
  - 0: the program ran to completion
  - 1: a lex, parse, scope, type, or runtime error was reported
  - 2: the source file could not be read

Diagnostics are written to standard error with the canonical position
suffix ", <line:L,col:C>". Program output (say statements) goes to
standard output.
*/
package main

import (
	"os"

	"github.com/akashmaji946/cou/eval"
	"github.com/akashmaji946/cou/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION represents the current version of the Cou interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// Color definitions for driver output
// These colors provide visual feedback during file execution:
// - redColor: Error messages and critical failures
// - cyanColor: Informational messages (version output)
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// rootCmd is the single cobra command of the interpreter: it takes exactly
// one positional argument, the path of the Cou source file to run.
var rootCmd = &cobra.Command{
	Use:           "cou <source-file>",
	Short:         "Cou - a small statically-typed interpreted language",
	Version:       VERSION,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		runFile(args[0])
	},
}

// init wires the version output through the informational color.
func init() {
	rootCmd.SetVersionTemplate(cyanColor.Sprintf(
		"Cou - An Interpreted Programming Language\nVersion: %s\nLicense: %s\nAuthor : %s\n",
		VERSION, LICENCE, AUTHOR))
}

// main executes the root command. Argument errors (wrong count, unknown
// flags) are reported by cobra and exit with the I/O failure code.
func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

// runFile reads and executes a Cou source file. It handles the complete
// pipeline:
//  1. Read the file from disk
//  2. Parse the source into an AST, reporting the first collected error
//  3. Evaluate the AST, reporting any in-band evaluation error
//
// The first error halts the run; there is no recovery or partial-run
// continuation.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", fileName, err)
		os.Exit(2)
	}

	par := parser.NewParser(string(fileContent))
	program := par.Parse()

	if par.HasErrors() {
		redColor.Fprintf(os.Stderr, "%s\n", par.GetErrors()[0])
		os.Exit(1)
	}

	ev := eval.NewEvaluator(par)
	if result := ev.Interpret(program); result != nil {
		redColor.Fprintf(os.Stderr, "%s\n", result.ToString())
		os.Exit(1)
	}
}
