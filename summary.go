package perfsynth

import (
	"math"
	"sort"

	"github.com/etnz/perfsynth/date"
)

// Summary holds the headline statistics of a series.
type Summary struct {
	Strategy             string     `json:"strategy"`
	Period               date.Range `json:"period"`
	InitialValue         float64    `json:"initialValue"`
	FinalValue           float64    `json:"finalValue"`
	TotalReturn          Percent    `json:"totalReturn"`
	AnnualizedReturn     Percent    `json:"annualizedReturn"`
	AnnualizedVolatility Percent    `json:"annualizedVolatility"`
	MaxDrawdown          Percent    `json:"maxDrawdown"` // zero or negative
	Sharpe               float64    `json:"sharpe"`      // annualized return over volatility, no risk free rate
}

// Summarize computes the statistics of s.
func Summarize(strategy string, s Series) Summary {
	sum := Summary{Strategy: strategy, Period: s.Range()}
	if len(s) == 0 {
		return sum
	}
	first, last := s[0].PortfolioValue, s[len(s)-1].PortfolioValue
	sum.InitialValue, sum.FinalValue = first, last
	sum.TotalReturn = s[len(s)-1].CumulativeReturnPct

	periods := len(s) - 1
	if periods == 0 {
		return sum
	}
	annualized := math.Pow(last/first, TradingDays/float64(periods)) - 1
	volatility := stddev(s.Returns()) * math.Sqrt(TradingDays)
	sum.AnnualizedReturn = Percent(100 * annualized)
	sum.AnnualizedVolatility = Percent(100 * volatility)
	sum.MaxDrawdown = Percent(100 * maxDrawdown(s.Values()))
	if volatility > 0 {
		sum.Sharpe = annualized / volatility
	}
	return sum
}

// SummarizeAll summarizes every series of the result, sorted by strategy name.
func (res *Result) SummarizeAll() []Summary {
	summaries := make([]Summary, 0, len(res.Series))
	for name, s := range res.Series {
		summaries = append(summaries, Summarize(name, s))
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Strategy < summaries[j].Strategy })
	return summaries
}

// stddev is the sample standard deviation.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// maxDrawdown returns the worst relative decline from a running peak, as a
// non-positive fraction.
func maxDrawdown(values []float64) float64 {
	var worst, peak float64
	for _, v := range values {
		peak = math.Max(peak, v)
		if peak > 0 {
			worst = math.Min(worst, v/peak-1)
		}
	}
	return worst
}
