package perfsynth

import (
	"fmt"
	"math"

	"github.com/etnz/perfsynth/date"
)

// PerformancePoint is the valuation of a strategy on a given day.
type PerformancePoint struct {
	Date                date.Date
	CumulativeReturnPct Percent // since the first point of the series
	PortfolioValue      float64
}

// MarshalJSON encodes the point as {"date":..., "returns":..., "portfolioValue":...}.
func (p PerformancePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("returns", float64(p.CumulativeReturnPct))
	w.Append("portfolioValue", p.PortfolioValue)
	return w.MarshalJSON()
}

// Series is the chronological valuation of a strategy, one point per period.
// The first point is the unmodified starting capital.
type Series []PerformancePoint

// Compound turns daily returns into a valuation series of len(returns)+1 points
// starting on start with initialCapital.
func Compound(initialCapital float64, start date.Date, returns []float64) (Series, error) {
	if err := validateCapital(initialCapital); err != nil {
		return nil, err
	}
	s := make(Series, len(returns)+1)
	s[0] = PerformancePoint{Date: start, PortfolioValue: initialCapital}
	value := initialCapital
	for t := 1; t <= len(returns); t++ {
		value *= 1 + returns[t-1]
		s[t] = PerformancePoint{
			Date:                start.Add(t),
			CumulativeReturnPct: Percent((value - initialCapital) / initialCapital * 100),
			PortfolioValue:      value,
		}
	}
	return s, nil
}

func validateCapital(capital float64) error {
	if math.IsNaN(capital) || math.IsInf(capital, 0) || capital <= 0 {
		return fmt.Errorf("initial capital is %v: %w", capital, ErrInvalidParameter)
	}
	return nil
}

// Range returns the dates spanned by the series.
func (s Series) Range() date.Range {
	if len(s) == 0 {
		return date.Range{}
	}
	return date.Range{From: s[0].Date, To: s[len(s)-1].Date}
}

// Returns recovers the daily returns the series was compounded from.
func (s Series) Returns() []float64 {
	if len(s) < 2 {
		return nil
	}
	returns := make([]float64, len(s)-1)
	for t := 1; t < len(s); t++ {
		returns[t-1] = s[t].PortfolioValue/s[t-1].PortfolioValue - 1
	}
	return returns
}

// Values returns the portfolio values.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.PortfolioValue
	}
	return values
}
