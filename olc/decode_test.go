package olc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const degreeDelta = 1e-9

func TestDecode(t *testing.T) {
	tests := []struct {
		code string
		want CodeArea
	}{
		{"7FG49QCJ+2V", CodeArea{20.37, 2.782125, 20.370125, 2.78225, 10}},
		{"7fg49qcj+2v", CodeArea{20.37, 2.782125, 20.370125, 2.78225, 10}},
		{"7FG49QCJ+2VG", CodeArea{20.37005, 2.7821875, 20.370075, 2.78221875, 11}},
		{"7FG40000+", CodeArea{20, 2, 21, 3, 4}},
		{"7F000000+", CodeArea{10, 0, 30, 20, 2}},
		{"CFX30000+", CodeArea{89, 1, 90, 2, 4}},
		{"22222222+22", CodeArea{-90, -180, -89.999875, -179.999875, 10}},
		{"8FVC9G8F+6X", CodeArea{47.3655, 8.524875, 47.365625, 8.525, 10}},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			got, err := Decode(tc.code)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.LatitudeLo, got.LatitudeLo, degreeDelta)
			assert.InDelta(t, tc.want.LongitudeLo, got.LongitudeLo, degreeDelta)
			assert.InDelta(t, tc.want.LatitudeHi, got.LatitudeHi, degreeDelta)
			assert.InDelta(t, tc.want.LongitudeHi, got.LongitudeHi, degreeDelta)
			assert.Equal(t, tc.want.CodeLength, got.CodeLength)
		})
	}
}

func TestDecodeKnownVectorNearQuotedPoint(t *testing.T) {
	area, err := Decode("7FG49QCJ+2V")
	require.NoError(t, err)

	assert.InDelta(t, 20.375, area.LatitudeLo, 0.01)
	assert.InDelta(t, 2.775, area.LongitudeLo, 0.01)
	assert.Equal(t, 10, area.CodeLength)
}

func TestDecodeRejectsNonFullCodes(t *testing.T) {
	for _, code := range []string{
		"",
		"9G8F+6X",
		"+2V",
		"7FG49QCJ+2",
		"7FG49QCJ2V",
		"X2345678+",
		"2X345678+",
		"7FG40000+2V",
	} {
		_, err := Decode(code)
		require.ErrorIs(t, err, ErrMalformedCode, code)
	}
}

func TestDecodeIgnoresDigitsPastFifteen(t *testing.T) {
	want, err := Decode("7FG49QCJ+2VGCCCC")
	require.NoError(t, err)
	got, err := Decode("7FG49QCJ+2VGCCCCCXX")
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, maxCodeLength, got.CodeLength)
}

func TestRoundTrip(t *testing.T) {
	lengths := []int{2, 4, 6, 8, 10, 11, 12, 13, 14, 15}
	for _, p := range samplePoints() {
		for _, codeLen := range lengths {
			code, err := Encode(p.lat, p.lng, codeLen)
			require.NoError(t, err)
			require.True(t, IsFull(code), code)

			area, err := Decode(code)
			require.NoError(t, err, code)
			assert.Equal(t, codeLen, area.CodeLength, code)
			assert.LessOrEqual(t, area.LatitudeLo, area.LatitudeHi, code)
			assert.LessOrEqual(t, area.LongitudeLo, area.LongitudeHi, code)
			assert.True(t, containsWithin(area, p.lat, p.lng, degreeDelta),
				"%s %+v does not contain (%v, %v)", code, area, p.lat, p.lng)

			recoded, err := Encode(area.LatitudeCenter(), area.LongitudeCenter(), codeLen)
			require.NoError(t, err)
			assert.Equal(t, code, recoded)
		}
	}
}

type point struct{ lat, lng float64 }

// samplePoints returns a deterministic spread of points across the globe,
// including a few that fall exactly on cell edges.
func samplePoints() []point {
	points := []point{
		{20.375, 2.775},
		{20.3700625, 2.7821875},
		{47.365562, 8.524813},
		{-41.2730625, 174.7859375},
		{0, 0},
		{-90, -180},
		{89.9999, 179.9999},
		{-0.000001, -0.000001},
	}
	for lat := -89.5; lat < 90; lat += 7.3 {
		for lng := -179.3; lng < 180; lng += 11.7 {
			points = append(points, point{lat + 0.0123456, lng - 0.0098765})
		}
	}
	return points
}

func containsWithin(a CodeArea, lat, lng, delta float64) bool {
	return lat >= a.LatitudeLo-delta && lat <= a.LatitudeHi+delta &&
		lng >= a.LongitudeLo-delta && lng <= a.LongitudeHi+delta
}
