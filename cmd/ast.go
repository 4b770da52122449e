package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/willvillegas/triangle-go/ast"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/parser"
)

// ASTCmd parses a source file and prints its AST as JSON, without running
// the checker. Parse errors are still reported.
type ASTCmd struct{}

func (*ASTCmd) Name() string     { return "ast" }
func (*ASTCmd) Synopsis() string { return "parse a Triangle source file and dump its AST as JSON" }
func (*ASTCmd) Usage() string {
	return `ast <file>:
  Parse <file> and print its AST as JSON.
`
}

func (*ASTCmd) SetFlags(f *flag.FlagSet) {}

func (*ASTCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	bag := diag.NewBag()
	prog := parser.Parse(string(data), bag)

	out, err := ast.Dump(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to dump AST: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)

	for _, d := range bag.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}
	if bag.HasErrors() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
