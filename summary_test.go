package perfsynth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := Compound(100, testStart, []float64{0.1, -0.1, 121.0/99 - 1})
	require.NoError(t, err)
	// values 100, 110, 99, 121
	require.InDelta(t, 121, s[3].PortfolioValue, 1e-9)

	sum := Summarize("test", s)
	assert.Equal(t, "test", sum.Strategy)
	assert.Equal(t, 100.0, sum.InitialValue)
	assert.InDelta(t, 121, sum.FinalValue, 1e-9)
	assert.True(t, sum.TotalReturn.Equal(21), "total return %v", sum.TotalReturn)
	assert.True(t, sum.MaxDrawdown.Equal(-10), "max drawdown %v", sum.MaxDrawdown)
	assert.InDelta(t, 100*(math.Pow(1.21, 252.0/3)-1), float64(sum.AnnualizedReturn), 1e-6)
	assert.Greater(t, float64(sum.AnnualizedVolatility), 0.0)
	assert.InDelta(t, float64(sum.AnnualizedReturn/sum.AnnualizedVolatility), sum.Sharpe, 1e-9)
	assert.Equal(t, testStart, sum.Period.From)
	assert.Equal(t, testStart.Add(3), sum.Period.To)
}

func TestSummarize_Flat(t *testing.T) {
	s, err := Compound(100, testStart, make([]float64, 10))
	require.NoError(t, err)
	sum := Summarize("flat", s)
	assert.Zero(t, sum.TotalReturn)
	assert.Zero(t, sum.AnnualizedVolatility)
	assert.Zero(t, sum.MaxDrawdown)
	assert.Zero(t, sum.Sharpe)
}

func TestSummarize_SinglePoint(t *testing.T) {
	s, err := Compound(100, testStart, nil)
	require.NoError(t, err)
	sum := Summarize("one", s)
	assert.Equal(t, 100.0, sum.FinalValue)
	assert.Zero(t, sum.AnnualizedReturn)
	assert.Equal(t, Summary{Strategy: "none"}, Summarize("none", nil))
}

func TestMaxDrawdown(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"rising", []float64{1, 2, 3}, 0},
		{"single dip", []float64{10, 5, 20}, -0.5},
		{"worst is later", []float64{10, 9, 20, 12, 30}, -0.4},
		{"empty", nil, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, maxDrawdown(tc.values), 1e-12)
		})
	}
}

func TestResult_SummarizeAll(t *testing.T) {
	res := &Result{Series: map[string]Series{"b": nil, "a": nil, "c": nil}}
	var names []string
	for _, s := range res.SummarizeAll() {
		names = append(names, s.Strategy)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}
