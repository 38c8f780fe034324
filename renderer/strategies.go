package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/perfsynth"
	md "github.com/nao1215/markdown"
)

// StrategiesMarkdown renders strategy parameters as a table, sorted by name.
func StrategiesMarkdown(strategies map[string]perfsynth.StrategyParams) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)

	doc.H1("Strategies")
	table := md.TableSet{
		Header: []string{"Strategy", "Annual Return", "Annual Volatility", "Momentum", "Mean Reversion"},
		Rows:   [][]string{},
	}
	for _, name := range names {
		p := strategies[name]
		table.Rows = append(table.Rows, []string{
			name,
			perfsynth.Percent(100 * p.AnnualReturn).String(),
			perfsynth.Percent(100 * p.AnnualVolatility).String(),
			fmt.Sprintf("%.2f", p.Momentum),
			fmt.Sprintf("%.2f", p.MeanReversion),
		})
	}
	doc.Table(table)
	return doc.String()
}
