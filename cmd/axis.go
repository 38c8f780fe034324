package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfsynth"
	"github.com/etnz/perfsynth/date"
	"github.com/google/subcommands"
)

type axisCmd struct {
	n     int
	start string
	query string
}

func (*axisCmd) Name() string     { return "axis" }
func (*axisCmd) Synopsis() string { return "plan the time axis of a sequence" }
func (*axisCmd) Usage() string {
	return `psy axis -n <points> [-start <date>] [-q <jsonpath>]

  Writes, as JSON, the grid points to display along a daily sequence of n points.
`
}

func (c *axisCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 0, "Number of points in the sequence")
	f.StringVar(&c.start, "start", "", "Date of the first point (defaults to today)")
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the output")
}

func (c *axisCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start := date.Today()
	if c.start != "" {
		var err error
		if start, err = date.Parse(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	axis, err := perfsynth.PlanAxis(c.n, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := printJSON(axis, c.query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
