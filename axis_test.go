package perfsynth

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/etnz/perfsynth/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexes(points []GridPoint) []int {
	idx := make([]int, len(points))
	for i, p := range points {
		idx[i] = p.Index
	}
	return idx
}

func TestPlanAxis_ShortSequence(t *testing.T) {
	axis, err := PlanAxis(10, date.New(2025, 3, 1))
	require.NoError(t, err)

	assert.Equal(t, "days", axis.PeriodType)
	assert.Equal(t, 10, axis.TotalPeriods)
	assert.Equal(t, "Date", axis.AxisTitle)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, indexes(axis.GridPoints))
	assert.Equal(t, "1/3", axis.GridPoints[0].Label)
	assert.Equal(t, "10/3", axis.GridPoints[9].Label)
}

func TestPlanAxis_MonthsAppendsLast(t *testing.T) {
	axis, err := PlanAxis(200, date.New(2025, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, "months", axis.PeriodType)
	want := []int{0, 15, 30, 45, 60, 75, 90, 105, 120, 135, 150, 165, 180, 195, 199}
	assert.Equal(t, want, indexes(axis.GridPoints))
	assert.Equal(t, "Jan 25", axis.GridPoints[0].Label)
	assert.Equal(t, "Jul 25", axis.GridPoints[len(want)-1].Label) // 2025-07-19
}

func TestPlanAxis_SinglePoint(t *testing.T) {
	axis, err := PlanAxis(1, date.New(2025, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []GridPoint{{Index: 0, Label: "1/1"}}, axis.GridPoints)
}

func TestPlanAxis_Tiers(t *testing.T) {
	testCases := []struct {
		n          int
		periodType string
		step       int
	}{
		{2, "days", 1},
		{15, "days", 1},
		{16, "days", 1},
		{30, "days", 2},
		{31, "days", 2},
		{32, "weeks", 7},
		{120, "weeks", 8},
		{121, "months", 15},
		{365, "months", 24},
		{366, "months", 30},
		{1095, "months", 73},
		{1096, "quarters", 90},
		{2555, "quarters", 170},
		{2556, "years", 365},
		{10000, "years", 666},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			axis, err := PlanAxis(tc.n, date.New(2020, 1, 1))
			require.NoError(t, err)
			assert.Equal(t, tc.periodType, axis.PeriodType)
			assert.Equal(t, tc.step, axis.GridPoints[1].Index, "step")
		})
	}
}

func TestPlanAxis_Labels(t *testing.T) {
	start := date.New(2020, 2, 10)
	testCases := []struct {
		n     int
		first string
	}{
		{50, "10/2"},
		{300, "Feb 20"},
		{2000, "Q1 20"},
		{4000, "2020"},
	}
	for _, tc := range testCases {
		axis, err := PlanAxis(tc.n, start)
		require.NoError(t, err)
		assert.Equal(t, tc.first, axis.GridPoints[0].Label, "first label for %d points", tc.n)
		last := axis.GridPoints[len(axis.GridPoints)-1]
		assert.Equal(t, start.Add(tc.n-1).Label(mustParsePeriod(t, axis.PeriodType)), last.Label)
	}
}

func mustParsePeriod(t *testing.T, s string) date.Period {
	t.Helper()
	p, err := date.ParsePeriod(s)
	require.NoError(t, err)
	return p
}

func TestPlanAxis_LastPointOnce(t *testing.T) {
	start := date.New(2019, 6, 30)
	for n := 1; n <= 4000; n++ {
		axis, err := PlanAxis(n, start)
		require.NoError(t, err)
		points := axis.GridPoints
		require.NotEmpty(t, points)
		if points[0].Index != 0 {
			t.Fatalf("n=%d: first index is %d", n, points[0].Index)
		}
		if last := points[len(points)-1].Index; last != n-1 {
			t.Fatalf("n=%d: last index is %d", n, last)
		}
		for i := 1; i < len(points); i++ {
			if points[i].Index <= points[i-1].Index {
				t.Fatalf("n=%d: indexes not strictly increasing at %d: %v", n, i, indexes(points))
			}
		}
		if len(points) > 2*TargetGridPoints+1 {
			t.Fatalf("n=%d: %d grid points", n, len(points))
		}
	}
}

func TestPlanAxis_Invalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := PlanAxis(n, date.New(2025, 1, 1))
		assert.ErrorIs(t, err, ErrInvalidSequenceLength)
	}
}

func TestTimeAxisConfig_JSON(t *testing.T) {
	axis, err := PlanAxis(3, date.New(2025, 1, 30))
	require.NoError(t, err)
	got, err := json.Marshal(axis)
	require.NoError(t, err)
	want := `{"totalPeriods":3,"periodType":"days","startDate":"2025-01-30","axisTitle":"Date",` +
		`"gridPoints":[{"index":0,"label":"30/1"},{"index":1,"label":"31/1"},{"index":2,"label":"1/2"}]}`
	assert.Equal(t, want, string(got))
}
