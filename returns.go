package perfsynth

import (
	"fmt"
	"math"
)

const (
	// TradingDays is the number of periods in a year.
	TradingDays = 252

	// MaxDailyReturn bounds the absolute value of a synthesized daily return.
	MaxDailyReturn = 0.12

	autocorrelation = 0.05
	eventRate       = 0.02
	eventAmplitude  = 0.08
)

// StrategyParams describe the return profile of a strategy.
// AnnualReturn and AnnualVolatility are fractions (0.148 is 14.8%/yr).
type StrategyParams struct {
	AnnualReturn     float64 `json:"annualReturn" yaml:"annual_return"`
	AnnualVolatility float64 `json:"annualVolatility" yaml:"annual_volatility"`
	Momentum         float64 `json:"momentum" yaml:"momentum"`
	MeanReversion    float64 `json:"meanReversion" yaml:"mean_reversion"`
}

// Validate checks that all parameters are finite and that the volatility is not negative.
func (p StrategyParams) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"annual return", p.AnnualReturn},
		{"annual volatility", p.AnnualVolatility},
		{"momentum", p.Momentum},
		{"mean reversion", p.MeanReversion},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s is %v: %w", v.name, v.value, ErrInvalidParameter)
		}
	}
	if p.AnnualVolatility < 0 {
		return fmt.Errorf("annual volatility is negative (%v): %w", p.AnnualVolatility, ErrInvalidParameter)
	}
	return nil
}

// returnModel holds the state carried from one period to the next while
// synthesizing the returns of a single strategy.
type returnModel struct {
	dailyReturn     float64
	dailyVolatility float64
	momentum        float64
	meanReversion   float64

	trend          float64
	previousReturn float64
}

func newReturnModel(p StrategyParams) *returnModel {
	return &returnModel{
		dailyReturn:     p.AnnualReturn / TradingDays,
		dailyVolatility: p.AnnualVolatility / math.Sqrt(TradingDays),
		momentum:        p.Momentum,
		meanReversion:   p.MeanReversion,
	}
}

// next draws the return of the next period.
//
// The multiplier scales the volatility shock only, so a bear regime flips the
// sign of the shock rather than adding a negative drift.
func (m *returnModel) next(src Source, multiplier float64) float64 {
	r1, r2 := 1-src.Float64(), 1-src.Float64()
	shock := math.Sqrt(-2*math.Log(r1)) * math.Cos(2*math.Pi*r2)

	m.trend = m.trend*(1-m.meanReversion) + m.dailyReturn*m.meanReversion

	var event float64
	if src.Float64() < eventRate {
		event = (src.Float64() - 0.5) * eventAmplitude
	}

	raw := m.trend +
		m.dailyVolatility*shock*multiplier +
		m.momentum*m.previousReturn +
		autocorrelation*m.previousReturn +
		event

	r := clamp(raw, -MaxDailyReturn, MaxDailyReturn)
	m.previousReturn = r
	return r
}

// SynthesizeReturns draws one daily return per period covered by regimes.
func SynthesizeReturns(src Source, p StrategyParams, regimes Regimes) []float64 {
	m := newReturnModel(p)
	returns := make([]float64, regimes.Horizon())
	for t := range returns {
		returns[t] = m.next(src, regimes.MultiplierAt(t))
	}
	return returns
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }
