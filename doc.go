// Package perfsynth synthesizes daily performance series of investment
// strategies and plans the time axis they are displayed on.
//
// The main functionalities are:
//   - Regime sampling: the simulated horizon is split into contiguous bull,
//     sideways and bear intervals, each scaling the volatility shock of the
//     returns drawn inside it.
//   - Return synthesis: daily returns combine a mean-reverting trend, a regime
//     scaled normal shock, momentum, autocorrelation and rare event shocks,
//     bounded to ±12% a day.
//   - Compounding: returns are compounded into a portfolio value and a
//     cumulative return, one point per calendar day.
//   - Axis planning: any sequence length gets a sparse set of labelled grid
//     points whose granularity (days, weeks, months, quarters, years) follows
//     the span of the sequence.
//
// Every random draw goes through an injected [Source]; the same request and
// seed always produce the same series. This package serves as the foundational
// logic for the `psy` command-line tool.
package perfsynth
