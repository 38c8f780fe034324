package perfsynth

import (
	"fmt"

	"github.com/etnz/perfsynth/date"
)

// Report gathers everything produced by a generation run, ready to be rendered.
type Report struct {
	Start          date.Date
	Horizon        int
	Seed           uint64
	InitialCapital Money
	Regimes        Regimes
	Series         map[string]Series
	Summaries      []Summary // sorted by strategy name
	Axis           TimeAxisConfig
}

// NewReport runs the request and plans the axis of the resulting series.
// Values are displayed in currency cur.
func NewReport(res *Result, r Request, cur string) (*Report, error) {
	axis, err := res.Axis(r.Start)
	if err != nil {
		return nil, fmt.Errorf("planning report axis: %w", err)
	}
	return &Report{
		Start:          r.Start,
		Horizon:        r.Horizon,
		Seed:           r.Seed,
		InitialCapital: M(r.InitialCapital, cur),
		Regimes:        res.Regimes,
		Series:         res.Series,
		Summaries:      res.SummarizeAll(),
		Axis:           axis,
	}, nil
}

// Value returns v in the report currency.
func (r *Report) Value(v float64) Money { return M(v, r.InitialCapital.Currency()) }

// MarshalJSON encodes the report with a stable key order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("start", r.Start)
	w.Append("horizon", r.Horizon)
	w.Append("seed", r.Seed)
	w.Append("initialCapital", r.InitialCapital.Float64())
	w.Optional("currency", r.InitialCapital.Currency())
	w.Append("strategies", r.Series)
	w.Append("axis", r.Axis)
	w.Append("regimes", r.Regimes)
	w.Append("exposure", r.Regimes.Exposure())
	w.Append("summaries", r.Summaries)
	return w.MarshalJSON()
}
