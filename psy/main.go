package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/perfsynth/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	logger := cmd.NewLogger()
	ctx := logger.WithContext(context.Background())
	os.Exit(int(commander.Execute(ctx)))
}
