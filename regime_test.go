package perfsynth

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRegimes_Coverage(t *testing.T) {
	for _, horizon := range []int{1, 5, 19, 100, 765, 3000} {
		for seed := uint64(1); seed <= 20; seed++ {
			t.Run(fmt.Sprintf("horizon=%d/seed=%d", horizon, seed), func(t *testing.T) {
				regimes, err := SampleRegimes(NewSource(seed), horizon)
				require.NoError(t, err)
				require.NotEmpty(t, regimes)

				cursor := 0
				total := 0
				for i, r := range regimes {
					assert.Equal(t, cursor, r.Start, "regime %d is not contiguous", i)
					assert.Greater(t, r.End, r.Start, "regime %d is empty", i)
					cursor = r.End
					total += r.Len()
				}
				assert.Equal(t, horizon, cursor)
				assert.Equal(t, horizon, total)
				assert.Equal(t, horizon, regimes.Horizon())
			})
		}
	}
}

func TestSampleRegimes_Ranges(t *testing.T) {
	regimes, err := SampleRegimes(NewSource(42), 20000)
	require.NoError(t, err)

	kinds := map[RegimeKind]int{}
	for i, r := range regimes {
		kinds[r.Kind]++
		var draw regimeDraw
		for _, d := range regimeDraws {
			if d.kind == r.Kind {
				draw = d
			}
		}
		assert.GreaterOrEqual(t, r.Multiplier, draw.minMult, "regime %d", i)
		assert.Less(t, r.Multiplier, draw.maxMult, "regime %d", i)
		if i < len(regimes)-1 { // the last one is truncated at the horizon
			assert.GreaterOrEqual(t, r.Len(), draw.minDuration, "regime %d", i)
			assert.Less(t, r.Len(), draw.maxDuration, "regime %d", i)
		}
	}
	// over that many regimes every kind shows up.
	assert.Len(t, kinds, 3)
}

func TestSampleRegimes_ConstantSource(t *testing.T) {
	// 0.7 is a sideways draw: duration 10+int(0.7*30)=31, multiplier 0.8+0.7*0.4.
	regimes, err := SampleRegimes(constSource(0.7), 100)
	require.NoError(t, err)
	require.Len(t, regimes, 4)

	wantBounds := [][2]int{{0, 31}, {31, 62}, {62, 93}, {93, 100}}
	for i, r := range regimes {
		assert.Equal(t, Sideways, r.Kind)
		assert.Equal(t, wantBounds[i][0], r.Start)
		assert.Equal(t, wantBounds[i][1], r.End)
		assert.InDelta(t, 1.08, r.Multiplier, 1e-12)
	}
}

func TestSampleRegimes_Errors(t *testing.T) {
	_, err := SampleRegimes(NewSource(1), 0)
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	_, err = SampleRegimes(NewSource(1), -3)
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	// a negative draw yields a negative bull duration.
	_, err = SampleRegimes(constSource(-5), 10)
	assert.ErrorIs(t, err, ErrCorruptRandomSource)
}

func TestRegimes_MultiplierAt(t *testing.T) {
	regimes := Regimes{
		{Start: 0, End: 3, Multiplier: 1.1, Kind: Bull},
		{Start: 3, End: 5, Multiplier: -0.7, Kind: Bear},
		{Start: 5, End: 9, Multiplier: 0.9, Kind: Sideways},
	}
	testCases := []struct {
		t    int
		want float64
	}{
		{0, 1.1}, {2, 1.1}, {3, -0.7}, {4, -0.7}, {5, 0.9}, {8, 0.9},
		{-1, 1}, {9, 1}, {100, 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, regimes.MultiplierAt(tc.t), "MultiplierAt(%d)", tc.t)
	}
	assert.Equal(t, 1.0, Regimes(nil).MultiplierAt(0))
}

func TestRegimes_Exposure(t *testing.T) {
	regimes := Regimes{
		{Start: 0, End: 6, Kind: Bull},
		{Start: 6, End: 8, Kind: Bear},
		{Start: 8, End: 10, Kind: Bull},
	}
	exposure := regimes.Exposure()
	assert.InDelta(t, 0.8, exposure[Bull], 1e-12)
	assert.InDelta(t, 0.2, exposure[Bear], 1e-12)
	assert.Zero(t, exposure[Sideways])
	assert.Empty(t, Regimes(nil).Exposure())
}

func TestRegimeKind_Text(t *testing.T) {
	b, err := json.Marshal(MarketRegime{Start: 0, End: 3, Multiplier: 1.1, Kind: Bear})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":0,"end":3,"multiplier":1.1,"kind":"bear"}`, string(b))

	unknown := RegimeKind(7)
	assert.Equal(t, "RegimeKind(7)", unknown.String())
	_, err = json.Marshal(MarketRegime{Kind: unknown})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
