package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfsynth"
	"github.com/etnz/perfsynth/renderer"
	"github.com/google/subcommands"
)

type strategiesCmd struct {
	config string
	yaml   bool
}

func (*strategiesCmd) Name() string     { return "strategies" }
func (*strategiesCmd) Synopsis() string { return "list the strategies and their parameters" }
func (*strategiesCmd) Usage() string {
	return `psy strategies [-config <file>] [-yaml]

  Lists the preset strategies, or the ones of a strategy file. With -yaml the
  list is written as a strategy file, ready to be edited and passed to -config.
`
}

func (c *strategiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "YAML file describing the strategies")
	f.BoolVar(&c.yaml, "yaml", false, "Write the strategies as YAML")
}

func (c *strategiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strategies := perfsynth.Presets
	if c.config != "" {
		var err error
		if strategies, err = perfsynth.LoadStrategies(c.config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.yaml {
		if err := perfsynth.EncodeStrategies(stdout, strategies); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.StrategiesMarkdown(strategies))
	return subcommands.ExitSuccess
}
