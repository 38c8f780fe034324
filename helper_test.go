package perfsynth

import "github.com/etnz/perfsynth/date"

// constSource always returns the same value.
type constSource float64

func (s constSource) Float64() float64 { return float64(s) }

// seqSource cycles through a fixed list of values.
type seqSource struct {
	values []float64
	i      int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

var testStart = date.MustParse("2025-01-01")

// flatRegimes is a single regime with multiplier m over horizon periods.
func flatRegimes(horizon int, m float64) Regimes {
	return Regimes{{Start: 0, End: horizon, Multiplier: m, Kind: Bull}}
}

// testRequest is a valid request on a couple of presets.
func testRequest(horizon int, seed uint64) Request {
	return Request{
		Strategies: map[string]StrategyParams{
			"HRP":         Presets["HRP"],
			"Risk Parity": Presets["Risk Parity"],
		},
		Horizon:        horizon,
		InitialCapital: 100000,
		Start:          testStart,
		Seed:           seed,
	}
}
