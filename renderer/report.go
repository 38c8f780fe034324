package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/perfsynth"
	"github.com/etnz/perfsynth/date"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a generation report: run parameters, per strategy
// statistics, market regimes and the portfolio values sampled on the axis grid.
func ReportMarkdown(r *perfsynth.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	names := make([]string, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		names = append(names, s.Strategy)
	}

	doc.H1(fmt.Sprintf("Performance of %s", strings.Join(names, ", ")))
	doc.PlainText(fmt.Sprintf("Simulated %d days from %s to %s, seed %d, initial capital %s.",
		r.Horizon, r.Start, r.Start.Add(r.Horizon), r.Seed, r.InitialCapital))

	doc.H2("Summary")
	summary := md.TableSet{
		Header: []string{"Strategy", "Final Value", "Gain", "Return", "Annualized", "Volatility", "Max Drawdown", "Sharpe"},
		Rows:   [][]string{},
	}
	for _, s := range r.Summaries {
		summary.Rows = append(summary.Rows, []string{
			s.Strategy,
			r.Value(s.FinalValue).String(),
			r.Value(s.FinalValue).Sub(r.Value(s.InitialValue)).Round(2).SignedString(),
			s.TotalReturn.SignedString(),
			s.AnnualizedReturn.SignedString(),
			s.AnnualizedVolatility.String(),
			s.MaxDrawdown.String(),
			fmt.Sprintf("%.2f", s.Sharpe),
		})
	}
	doc.Table(summary)

	doc.H2("Market Regimes")
	exposure := r.Regimes.Exposure()
	doc.BulletList(
		fmt.Sprintf("bull: %s", perfsynth.Percent(100*exposure[perfsynth.Bull])),
		fmt.Sprintf("sideways: %s", perfsynth.Percent(100*exposure[perfsynth.Sideways])),
		fmt.Sprintf("bear: %s", perfsynth.Percent(100*exposure[perfsynth.Bear])),
	)
	regimes := md.TableSet{
		Header: []string{"Regime", "From", "To", "Days", "Multiplier"},
		Rows:   [][]string{},
	}
	for _, g := range r.Regimes {
		span := regimeSpan(r, g)
		regimes.Rows = append(regimes.Rows, []string{
			g.Kind.String(),
			span.From.String(),
			span.To.String(),
			fmt.Sprint(g.Len()),
			fmt.Sprintf("%.3f", g.Multiplier),
		})
	}
	doc.Table(regimes)

	doc.H2(fmt.Sprintf("Portfolio Value (%s)", r.Axis.PeriodType))
	values := md.TableSet{
		Header: append([]string{r.Axis.AxisTitle}, names...),
		Rows:   [][]string{},
	}
	for _, p := range r.Axis.GridPoints {
		row := []string{p.Label}
		for _, name := range names {
			s := r.Series[name]
			if p.Index >= len(s) {
				row = append(row, "")
				continue
			}
			row = append(row, r.Value(s[p.Index].PortfolioValue).String())
		}
		values.Rows = append(values.Rows, row)
	}
	doc.Table(values)

	return doc.String()
}

// regimeSpan returns the dates of the valuations moved by the returns of
// regime g: return t is applied to the point dated Start+t+1.
func regimeSpan(r *perfsynth.Report, g perfsynth.MarketRegime) date.Range {
	return date.Range{From: r.Start.Add(g.Start + 1), To: r.Start.Add(g.End)}
}
