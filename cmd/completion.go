package cmd

import (
	"fmt"

	"github.com/etnz/perfsynth"
	"github.com/etnz/perfsynth/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the psy command line for shell completion.
func Completion() *complete.Command {
	run := map[string]complete.Predictor{
		"horizon":  predict.Something,
		"capital":  predict.Something,
		"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
		"start":    predict.Something,
		"seed":     predict.Something,
		"s":        predict.Set(perfsynth.PresetNames()),
		"config":   predict.Files("*.yaml"),
	}
	with := func(flags map[string]complete.Predictor, extra map[string]complete.Predictor) map[string]complete.Predictor {
		all := make(map[string]complete.Predictor, len(flags)+len(extra))
		for k, v := range flags {
			all[k] = v
		}
		for k, v := range extra {
			all[k] = v
		}
		return all
	}

	topics, err := docs.GetAllTopics()
	if err != nil {
		// docs are embedded at build time
		panic(fmt.Sprintf("listing documentation topics: %v", err))
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"generate": {Flags: with(run, map[string]complete.Predictor{"q": predict.Something})},
			"report":   {Flags: with(run, map[string]complete.Predictor{"raw": predict.Nothing})},
			"axis": {Flags: map[string]complete.Predictor{
				"n":     predict.Something,
				"start": predict.Something,
				"q":     predict.Something,
			}},
			"strategies": {Flags: map[string]complete.Predictor{
				"config": predict.Files("*.yaml"),
				"yaml":   predict.Nothing,
			}},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(append(topics, "readme", "*")),
			},
			"help":  {},
			"flags": {},
		},
		Flags: map[string]complete.Predictor{
			"v":        predict.Nothing,
			"log-json": predict.Nothing,
		},
	}
}
