package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/perfsynth"
	"github.com/etnz/perfsynth/date"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// runFlags are the flags describing a generation run, shared by generate and report.
type runFlags struct {
	horizon    int
	capital    string
	currency   string
	start      string
	seed       uint64
	strategies string
	config     string
	// processed
	request perfsynth.Request
}

func (c *runFlags) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.horizon, "horizon", 765, "Number of days to simulate")
	f.StringVar(&c.capital, "capital", "100000", "Initial capital of every strategy")
	f.StringVar(&c.currency, "currency", perfsynth.DefaultCurrency, "Currency of the capital")
	f.StringVar(&c.start, "start", "", "First day of the simulation (defaults to horizon days ago)")
	f.Uint64Var(&c.seed, "seed", 1, "Seed of the random generator")
	f.StringVar(&c.strategies, "s", "", "Comma separated list of preset strategies (defaults to all)")
	f.StringVar(&c.config, "config", "", "YAML file describing the strategies, replaces the presets")
}

func (c *runFlags) init() error {
	capital, err := perfsynth.ParseMoney(c.capital, c.currency)
	if err != nil {
		return fmt.Errorf("parsing capital: %w", err)
	}
	c.currency = capital.Currency()

	start := date.Today().Add(-c.horizon)
	if c.start != "" {
		if start, err = date.Parse(c.start); err != nil {
			return fmt.Errorf("parsing start date: %w", err)
		}
	}

	var strategies map[string]perfsynth.StrategyParams
	switch {
	case c.config != "" && c.strategies != "":
		return fmt.Errorf("-config and -s are mutually exclusive")
	case c.config != "":
		strategies, err = perfsynth.LoadStrategies(c.config)
	default:
		strategies, err = perfsynth.LookupStrategies(splitNames(c.strategies)...)
	}
	if err != nil {
		return err
	}

	c.request = perfsynth.Request{
		Strategies:     strategies,
		Horizon:        c.horizon,
		InitialCapital: capital.Float64(),
		Start:          start,
		Seed:           c.seed,
	}
	return c.request.Validate()
}

// report runs the request and builds its report.
func (c *runFlags) report(ctx context.Context) (*perfsynth.Report, error) {
	log := zerolog.Ctx(ctx)
	log.Info().Int("strategies", len(c.request.Strategies)).Int("horizon", c.request.Horizon).
		Uint64("seed", c.request.Seed).Msg("generating performance series")
	res, err := perfsynth.Generate(ctx, c.request)
	if err != nil {
		return nil, err
	}
	return perfsynth.NewReport(res, c.request, c.currency)
}

func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	run   runFlags
	query string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate strategy performance series as JSON" }
func (*generateCmd) Usage() string {
	return `psy generate [-horizon <days>] [-start <date>] [-seed <n>] [-s <strategies>|-config <file>] [-q <jsonpath>]

  Synthesizes the daily performance of each strategy and writes it, with the
  market regimes, the time axis and the summary statistics, as JSON.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	c.run.SetFlags(f)
	f.StringVar(&c.query, "q", "", "JSONPath query applied to the output, e.g. $.summaries[*].finalValue")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, err := c.run.report(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printJSON(report, c.query); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
