package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/willvillegas/triangle-go/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&cmd.CheckCmd{}, "")
	subcommands.Register(&cmd.ASTCmd{}, "")
	subcommands.Register(&cmd.ReplCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
