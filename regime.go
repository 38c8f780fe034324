package perfsynth

import (
	"fmt"
	"sort"
)

// RegimeKind names a market condition.
type RegimeKind int

const (
	Bull RegimeKind = iota
	Sideways
	Bear
)

var regimeNames = [...]string{Bull: "bull", Sideways: "sideways", Bear: "bear"}

func (k RegimeKind) valid() bool { return k >= 0 && int(k) < len(regimeNames) }

func (k RegimeKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("RegimeKind(%d)", int(k))
	}
	return regimeNames[k]
}

func (k RegimeKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("regime kind %d: %w", int(k), ErrInvalidParameter)
	}
	return []byte(regimeNames[k]), nil
}

// regimeDraw describes how a regime kind is drawn: its cumulative probability
// threshold, duration range and multiplier range (all ranges half-open).
type regimeDraw struct {
	kind                     RegimeKind
	threshold                float64
	minDuration, maxDuration int
	minMult, maxMult         float64
}

var regimeDraws = []regimeDraw{
	{Bull, 0.6, 20, 80, 1.0, 1.3},
	{Sideways, 0.85, 10, 40, 0.8, 1.2},
	{Bear, 1, 5, 25, -1.3, -0.5},
}

// MarketRegime is a half-open interval [Start, End) of periods sharing the same
// return multiplier.
type MarketRegime struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Multiplier float64    `json:"multiplier"`
	Kind       RegimeKind `json:"kind"`
}

// Len returns the number of periods in the regime.
func (r MarketRegime) Len() int { return r.End - r.Start }

// Contains reports whether period t belongs to the regime.
func (r MarketRegime) Contains(t int) bool { return r.Start <= t && t < r.End }

// Regimes is an ordered partition of [0, horizon) into market regimes.
type Regimes []MarketRegime

// SampleRegimes draws a sequence of regimes covering exactly [0, horizon).
//
// It fails with ErrCorruptRandomSource if src yields a value that makes a
// regime empty, which can only happen if src does not honour the [0,1) contract.
func SampleRegimes(src Source, horizon int) (Regimes, error) {
	if horizon <= 0 {
		return nil, fmt.Errorf("sampling regimes over %d periods: %w", horizon, ErrInvalidHorizon)
	}
	var regimes Regimes
	for cursor := 0; cursor < horizon; {
		u := src.Float64()
		draw := regimeDraws[len(regimeDraws)-1]
		for _, d := range regimeDraws {
			if u < d.threshold {
				draw = d
				break
			}
		}
		duration := uniformInt(src, draw.minDuration, draw.maxDuration)
		if duration <= 0 {
			return nil, fmt.Errorf("%s regime at period %d has duration %d: %w", draw.kind, cursor, duration, ErrCorruptRandomSource)
		}
		multiplier := uniform(src, draw.minMult, draw.maxMult)

		end := min(cursor+duration, horizon)
		regimes = append(regimes, MarketRegime{Start: cursor, End: end, Multiplier: multiplier, Kind: draw.kind})
		cursor = end
	}
	return regimes, nil
}

// Horizon returns the number of periods covered.
func (rs Regimes) Horizon() int {
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1].End
}

// At returns the regime containing period t.
func (rs Regimes) At(t int) (MarketRegime, bool) {
	i := sort.Search(len(rs), func(i int) bool { return rs[i].End > t })
	if i < len(rs) && rs[i].Contains(t) {
		return rs[i], true
	}
	return MarketRegime{}, false
}

// MultiplierAt returns the multiplier of the regime containing period t, or 1
// when no regime contains it.
func (rs Regimes) MultiplierAt(t int) float64 {
	if r, ok := rs.At(t); ok {
		return r.Multiplier
	}
	return 1
}

// Exposure returns the share of periods spent in each regime kind.
func (rs Regimes) Exposure() map[RegimeKind]float64 {
	total := rs.Horizon()
	exposure := make(map[RegimeKind]float64, len(regimeDraws))
	if total == 0 {
		return exposure
	}
	for _, r := range rs {
		exposure[r.Kind] += float64(r.Len()) / float64(total)
	}
	return exposure
}
