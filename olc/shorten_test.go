package olc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShorten(t *testing.T) {
	// Center of 8FVC9G8F+6X.
	const lat, lng = 47.3655625, 8.5249375

	tests := []struct {
		name string
		code string
		lat  float64
		lng  float64
		want string
	}{
		{"within a degree", "8FVC9G8F+6X", 47.5, 8.5, "9G8F+6X"},
		{"within a degree other side", "8FVC9G8F+6X", 47.4, 8.6, "9G8F+6X"},
		{"lowercase input", "8fvc9g8f+6x", 47.5, 8.5, "9G8F+6X"},
		{"within a twentieth", "8FVC9G8F+6X", lat + 0.01, lng, "8F+6X"},
		{"at the center", "8FVC9G8F+6X", lat, lng, "+6X"},
		{"grid digits kept", "8FVC9G8F+6XQ", lat, lng, "+6XQ"},
		{"too far away", "8FVC9G8F+6X", 47.0000625, 8.0000625, "8FVC9G8F+6X"},
		{"other hemisphere", "8FVC9G8F+6X", -47.3655625, -8.5249375, "8FVC9G8F+6X"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Shorten(tc.code, tc.lat, tc.lng)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, IsValid(got), got)
		})
	}
}

func TestShortenErrors(t *testing.T) {
	_, err := Shorten("9G8F+6X", 47.5, 8.5)
	require.ErrorIs(t, err, ErrMalformedCode)

	_, err = Shorten("not a code", 47.5, 8.5)
	require.ErrorIs(t, err, ErrMalformedCode)

	_, err = Shorten("8FVC0000+", 47.5, 8.5)
	require.ErrorIs(t, err, ErrPaddedCode)
}

func TestRecoverNearest(t *testing.T) {
	tests := []struct {
		name  string
		short string
		lat   float64
		lng   float64
		want  string
	}{
		{"same degree cell", "9G8F+6X", 47.4, 8.6, "8FVC9G8F+6X"},
		{"lowercase short code", "9g8f+6x", 47.4, 8.6, "8FVC9G8F+6X"},
		{"nearest cell is north", "9G8F+6X", 47.9, 8.6, "8FWC9G8F+6X"},
		{"eight digits missing", "+6X", 47.3655, 8.5249, "8FVC9G8F+6X"},
		{"padded short code", "CF00+", 47.4, 8.6, "8FVCCF00+"},
		{"full code unchanged", "8FVC9G8F+6X", 0, 0, "8FVC9G8F+6X"},
		{"full lowercase code unchanged", "8fvc9g8f+6x", 0, 0, "8fvc9g8f+6x"},
		{"north pole not crossed", "2222+22", 89.9, 0, "CFX22222+22"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RecoverNearest(tc.short, tc.lat, tc.lng)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecoverNearestErrors(t *testing.T) {
	for _, code := range []string{"", "9G8F+6", "8FVC9G8F+6", "X2345678+", "9G8F6X"} {
		_, err := RecoverNearest(code, 47.4, 8.6)
		require.ErrorIs(t, err, ErrInvalidShortCode, code)
	}
}

func TestShortenRecoverInverse(t *testing.T) {
	offsets := []point{{0, 0}, {0.00003, -0.00004}, {0.001, 0.0007}, {-0.012, 0.01}, {0.2, -0.25}}
	for _, p := range samplePoints() {
		if p.lat < -80 || p.lat > 80 {
			continue
		}
		for _, codeLen := range []int{10, 11, 12} {
			code, err := Encode(p.lat, p.lng, codeLen)
			require.NoError(t, err)
			area, err := Decode(code)
			require.NoError(t, err)

			for _, o := range offsets {
				refLat := area.LatitudeCenter() + o.lat
				refLng := area.LongitudeCenter() + o.lng

				short, err := Shorten(code, refLat, refLng)
				require.NoError(t, err, code)
				got, err := RecoverNearest(short, refLat, refLng)
				require.NoError(t, err, short)
				assert.Equal(t, code, got, "shortened to %s near (%v, %v)", short, refLat, refLng)
			}
		}
	}
}
