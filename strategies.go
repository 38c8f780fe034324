package perfsynth

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Presets are the reference strategies the dashboards are fed with.
var Presets = map[string]StrategyParams{
	"HRP":              {AnnualReturn: 0.162, AnnualVolatility: 0.14, Momentum: 0.10, MeanReversion: 0.05},
	"Risk Parity":      {AnnualReturn: 0.128, AnnualVolatility: 0.11, Momentum: 0.05, MeanReversion: 0.08},
	"Mean-Variance":    {AnnualReturn: 0.148, AnnualVolatility: 0.17, Momentum: 0.12, MeanReversion: 0.04},
	"Equal Weight":     {AnnualReturn: 0.115, AnnualVolatility: 0.16, Momentum: 0.08, MeanReversion: 0.05},
	"Minimum Variance": {AnnualReturn: 0.094, AnnualVolatility: 0.09, Momentum: 0.03, MeanReversion: 0.10},
	"Maximum Sharpe":   {AnnualReturn: 0.171, AnnualVolatility: 0.19, Momentum: 0.15, MeanReversion: 0.03},
	"Market Cap":       {AnnualReturn: 0.105, AnnualVolatility: 0.18, Momentum: 0.10, MeanReversion: 0.02},
}

// PresetNames returns the preset names in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupStrategies returns the presets called names, or all of them when names is empty.
func LookupStrategies(names ...string) (map[string]StrategyParams, error) {
	if len(names) == 0 {
		names = PresetNames()
	}
	strategies := make(map[string]StrategyParams, len(names))
	for _, name := range names {
		p, ok := Presets[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
		}
		strategies[name] = p
	}
	return strategies, nil
}

// strategyFile is the YAML layout of a strategy file.
type strategyFile struct {
	Strategies map[string]StrategyParams `yaml:"strategies"`
}

// DecodeStrategies reads strategies from a YAML document.
func DecodeStrategies(r io.Reader) (map[string]StrategyParams, error) {
	var f strategyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, ErrNoStrategies
		}
		return nil, fmt.Errorf("decoding strategies: %w", err)
	}
	if len(f.Strategies) == 0 {
		return nil, ErrNoStrategies
	}
	for name, p := range f.Strategies {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("strategy %q: %w", name, err)
		}
	}
	return f.Strategies, nil
}

// LoadStrategies reads a YAML strategy file.
func LoadStrategies(path string) (map[string]StrategyParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	strategies, err := DecodeStrategies(f)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return strategies, nil
}

// EncodeStrategies writes strategies in the format read by DecodeStrategies.
func EncodeStrategies(w io.Writer, strategies map[string]StrategyParams) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(strategyFile{Strategies: strategies}); err != nil {
		return fmt.Errorf("encoding strategies: %w", err)
	}
	return enc.Close()
}
