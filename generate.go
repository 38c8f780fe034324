package perfsynth

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/etnz/perfsynth/date"
	"github.com/rs/zerolog"
)

// Request describes a generation run.
type Request struct {
	Strategies     map[string]StrategyParams
	Horizon        int     // number of periods to simulate
	InitialCapital float64 // value of every strategy on Start
	Start          date.Date
	Seed           uint64
}

// Validate checks the request before any random number is drawn.
func (r Request) Validate() error {
	if r.Horizon <= 0 {
		return fmt.Errorf("horizon %d: %w", r.Horizon, ErrInvalidHorizon)
	}
	if len(r.Strategies) == 0 {
		return ErrNoStrategies
	}
	if err := validateCapital(r.InitialCapital); err != nil {
		return err
	}
	for _, name := range r.Names() {
		if err := r.Strategies[name].Validate(); err != nil {
			return fmt.Errorf("strategy %q: %w", name, err)
		}
	}
	return nil
}

// Names returns the strategy names in lexical order.
func (r Request) Names() []string {
	names := make([]string, 0, len(r.Strategies))
	for name := range r.Strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is the outcome of a generation run.
type Result struct {
	Regimes Regimes
	Series  map[string]Series
}

// Generate synthesizes one Series per strategy of the request.
//
// A single regime partition, drawn from the request seed, is shared by all
// strategies. Each strategy then draws its returns from its own source, derived
// from the seed and its name, in its own goroutine. The result only depends on
// the request.
func Generate(ctx context.Context, r Request) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	log := zerolog.Ctx(ctx)

	regimes, err := SampleRegimes(NewSource(r.Seed), r.Horizon)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("horizon", r.Horizon).Int("regimes", len(regimes)).Msg("sampled market regimes")

	names := r.Names()
	series := make([]Series, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := strategySource(r.Seed, name)
			series[i], errs[i] = generateStrategy(src, r, r.Strategies[name], regimes)
			log.Debug().Str("strategy", name).Msg("generated series")
		}()
	}
	wg.Wait()

	res := &Result{Regimes: regimes, Series: make(map[string]Series, len(names))}
	for i, name := range names {
		if errs[i] != nil {
			return nil, fmt.Errorf("strategy %q: %w", name, errs[i])
		}
		res.Series[name] = series[i]
	}
	return res, nil
}

// GenerateWithSource is the sequential form of Generate: regimes then every
// strategy, in lexical order, draw from src.
func GenerateWithSource(src Source, r Request) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	regimes, err := SampleRegimes(src, r.Horizon)
	if err != nil {
		return nil, err
	}
	res := &Result{Regimes: regimes, Series: make(map[string]Series, len(r.Strategies))}
	for _, name := range r.Names() {
		s, err := generateStrategy(src, r, r.Strategies[name], regimes)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", name, err)
		}
		res.Series[name] = s
	}
	return res, nil
}

func generateStrategy(src Source, r Request, p StrategyParams, regimes Regimes) (Series, error) {
	returns := SynthesizeReturns(src, p, regimes)
	for t, v := range returns {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("return at period %d is NaN: %w", t, ErrCorruptRandomSource)
		}
	}
	return Compound(r.InitialCapital, r.Start, returns)
}

// Axis plans the time axis of the run series.
func (res *Result) Axis(start date.Date) (TimeAxisConfig, error) {
	return PlanAxis(res.Regimes.Horizon()+1, start)
}
