// Package cmd holds the triangle driver's subcommands.Command
// implementations: check, ast, and repl. Each wires the front-end
// (scanner → parser → checker) to a file or stdin and reports through a
// fresh diag.Bag per run.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/checker"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/parser"
	"github.com/willvillegas/triangle-go/scanner"
	"github.com/willvillegas/triangle-go/stdenv"
	"github.com/willvillegas/triangle-go/tam"
	"github.com/willvillegas/triangle-go/token"
)

// CheckCmd runs the full front-end (scan, parse, contextually check) over a
// source file and reports every diagnostic collected along the way.
type CheckCmd struct {
	dumpAST    bool
	dumpTokens bool
	emit       bool
}

func (*CheckCmd) Name() string     { return "check" }
func (*CheckCmd) Synopsis() string { return "scan, parse and contextually check a Triangle source file" }
func (*CheckCmd) Usage() string {
	return `check [--dumpAST] [--dumpTokens] [--emit] <file>:
  Run the Triangle front-end over <file> and report any diagnostics.
`
}

func (c *CheckCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dumpAST, "dumpAST", false, "print the parsed AST as JSON before checking")
	f.BoolVar(&c.dumpTokens, "dumpTokens", false, "print the scanned token stream before parsing")
	f.BoolVar(&c.emit, "emit", false, "hand the checked program to the TAM stub encoder and print its bytecode")
}

func (c *CheckCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "💥 file not provided\n")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}
	text := string(data)
	bag := diag.NewBag()

	if c.dumpTokens {
		// A throwaway Bag: the Parser below re-scans text with its own
		// Scanner, so any lexical error must be reported from that pass,
		// not duplicated here.
		dumpTokens(text, diag.NewBag())
	}

	prog := parser.Parse(text, bag)

	if c.dumpAST {
		out, err := ast.Dump(prog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to dump AST: %v\n", err)
		} else {
			fmt.Println(out)
		}
	}

	checker.New(bag).Check(prog)

	for _, d := range bag.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if bag.HasErrors() {
		return subcommands.ExitFailure
	}

	if c.emit {
		bc, err := tam.StubEncoder{}.Encode(prog, stdenv.New())
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to encode bytecode: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(bc)
	}

	return subcommands.ExitSuccess
}

// dumpTokens scans text with a throwaway Bag: the Parser below re-scans
// text with its own Scanner, so any lexical error must be reported from
// that pass, not duplicated here.
func dumpTokens(text string, bag diag.Reporter) {
	s := scanner.New(text, bag)
	for {
		tok := s.NextToken()
		fmt.Println(tok)
		if tok.Kind == token.EndOfText {
			return
		}
	}
}
