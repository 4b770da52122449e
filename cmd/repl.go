package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"github.com/willvillegas/triangle-go/checker"
	"github.com/willvillegas/triangle-go/diag"
	"github.com/willvillegas/triangle-go/parser"
)

// ReplCmd is an interactive session: the user types a program, a blank line
// submits it, and the result (diagnostics, or silence on success) prints
// before the next prompt. A non-blank line when nothing else is pending
// starts a fresh program; after any non-blank line the prompt switches to a
// continuation marker until a blank line submits the buffered text.
type ReplCmd struct{}

func (*ReplCmd) Name() string     { return "repl" }
func (*ReplCmd) Synopsis() string { return "start an interactive check session" }
func (*ReplCmd) Usage() string {
	return `repl:
  Read Triangle programs from stdin, blank line to submit, "exit" to quit.
`
}

func (*ReplCmd) SetFlags(f *flag.FlagSet) {}

func (*ReplCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("triangle> ")
	if err != nil {
		fmt.Println("💥 failed to start the REPL:", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	fmt.Println("Triangle front-end REPL. Blank line submits, \"exit\" quits.")

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if buf.Len() == 0 {
				continue
			}
			buf.Reset()
			rl.SetPrompt("triangle> ")
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}

		trimmed := strings.TrimSpace(line)
		if buf.Len() == 0 && trimmed == "exit" {
			return subcommands.ExitSuccess
		}

		if trimmed == "" {
			if buf.Len() == 0 {
				continue
			}
			runSnippet(buf.String())
			buf.Reset()
			rl.SetPrompt("triangle> ")
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
		rl.SetPrompt("      ... ")
	}
}

func runSnippet(text string) {
	bag := diag.NewBag()
	prog := parser.Parse(text, bag)
	checker.New(bag).Check(prog)
	for _, d := range bag.Diagnostics() {
		fmt.Println(d.Error())
	}
	if !bag.HasErrors() {
		fmt.Println("ok")
	}
}
