package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfsynth/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	run runFlags
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a performance report of the strategies" }
func (*reportCmd) Usage() string {
	return `psy report [-horizon <days>] [-start <date>] [-seed <n>] [-s <strategies>|-config <file>] [-raw]

  Synthesizes the daily performance of each strategy and displays a summary,
  the market regimes and the portfolio values along the time axis.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.run.SetFlags(f)
	f.BoolVar(&c.raw, "raw", false, "Print the Markdown source instead of rendering it")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, err := c.run.report(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.ReportMarkdown(report)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
