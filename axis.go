package perfsynth

import (
	"fmt"

	"github.com/etnz/perfsynth/date"
)

// Axis planning constants. A tier applies to sequences up to and including its
// bound.
const (
	// TargetGridPoints is the number of labelled ticks an axis aims for.
	TargetGridPoints = 15

	DaysTierMax        = 31
	WeeksTierMax       = 120
	ShortMonthsTierMax = 365
	LongMonthsTierMax  = 1095
	QuartersTierMax    = 2555
)

// minimal distance between two grid points, per tier.
const (
	weeksMinStep       = 7
	shortMonthsMinStep = 15
	longMonthsMinStep  = 30
	quartersMinStep    = 90
	yearsMinStep       = 365
)

const defaultAxisTitle = "Date"

// GridPoint is a labelled tick on a time axis.
type GridPoint struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// TimeAxisConfig is the plan of a time axis for a sequence of TotalPeriods points.
type TimeAxisConfig struct {
	TotalPeriods int         `json:"totalPeriods"`
	PeriodType   string      `json:"periodType"`
	StartDate    date.Date   `json:"startDate"`
	AxisTitle    string      `json:"axisTitle"`
	GridPoints   []GridPoint `json:"gridPoints"`
}

// axisTier returns the label granularity and the distance between two grid
// points for a sequence of n points.
func axisTier(n int) (date.Period, int) {
	target := n / TargetGridPoints
	switch {
	case n <= DaysTierMax:
		return date.Daily, max(1, n/min(TargetGridPoints, n))
	case n <= WeeksTierMax:
		return date.Weekly, max(weeksMinStep, target)
	case n <= ShortMonthsTierMax:
		return date.Monthly, max(shortMonthsMinStep, target)
	case n <= LongMonthsTierMax:
		return date.Monthly, max(longMonthsMinStep, target)
	case n <= QuartersTierMax:
		return date.Quarterly, max(quartersMinStep, target)
	default:
		return date.Yearly, max(yearsMinStep, target)
	}
}

// PlanAxis returns the grid points to display along a sequence of n daily
// points starting on start.
//
// Grid points are evenly spaced from index 0; the last index n-1 is always
// part of the plan, exactly once.
func PlanAxis(n int, start date.Date) (TimeAxisConfig, error) {
	if n <= 0 {
		return TimeAxisConfig{}, fmt.Errorf("planning axis of %d points: %w", n, ErrInvalidSequenceLength)
	}
	period, step := axisTier(n)

	points := make([]GridPoint, 0, n/step+2)
	for i := 0; i < n; i += step {
		points = append(points, GridPoint{Index: i, Label: start.Add(i).Label(period)})
	}
	if last := n - 1; points[len(points)-1].Index != last {
		points = append(points, GridPoint{Index: last, Label: start.Add(last).Label(period)})
	}

	return TimeAxisConfig{
		TotalPeriods: n,
		PeriodType:   period.Unit(),
		StartDate:    start,
		AxisTitle:    defaultAxisTitle,
		GridPoints:   points,
	}, nil
}
