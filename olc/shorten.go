package olc

import (
	"fmt"
	"math"
	"strings"
)

// Shorten removes as many leading digits from a full code as the reference
// point allows: 8 when the reference is within 0.3 of a 0.0025 degree cell of
// the code's center, 6 for a 0.05 degree cell and 4 for a 1 degree cell. A
// reference farther away than that leaves the code unchanged.
func Shorten(code string, lat, lng float64) (string, error) {
	if !IsFull(code) {
		return "", fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}
	if strings.IndexByte(code, Padding) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrPaddedCode, code)
	}
	code = strings.ToUpper(code)
	area, err := Decode(code)
	if err != nil {
		return "", err
	}
	if area.CodeLength < minTrimmableCodeLen {
		return "", fmt.Errorf("%w: %q has %d digits", ErrCodeTooShort, code, area.CodeLength)
	}

	lat = clipLatitude(lat)
	lng = normalizeLongitude(lng)
	distance := math.Max(math.Abs(area.LatitudeCenter()-lat), math.Abs(area.LongitudeCenter()-lng))
	for i := len(pairResolutions) - 2; i >= 1; i-- {
		if distance < pairResolutions[i]*0.3 {
			return code[(i+1)*2:], nil
		}
	}
	return code, nil
}

// RecoverNearest returns the full code closest to the reference point whose
// trailing digits match the short code. Full codes are returned unchanged.
func RecoverNearest(shortCode string, refLat, refLng float64) (string, error) {
	if !IsShort(shortCode) {
		if IsFull(shortCode) {
			return shortCode, nil
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidShortCode, shortCode)
	}

	refLat = clipLatitude(refLat)
	refLng = normalizeLongitude(refLng)
	shortCode = strings.ToUpper(shortCode)

	paddingLength := separatorPosition - strings.IndexByte(shortCode, Separator)
	resolution := math.Pow(float64(encodingBase), float64(2-paddingLength/2))
	halfResolution := resolution / 2

	// The missing digits are taken from the cell of that size holding the
	// reference point.
	prefix, err := Encode(
		math.Floor(refLat/resolution)*resolution,
		math.Floor(refLng/resolution)*resolution,
		pairCodeLength,
	)
	if err != nil {
		return "", err
	}
	area, err := Decode(prefix[:paddingLength] + shortCode)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidShortCode, shortCode)
	}

	// The match may sit in the neighbouring cell if the reference lies near
	// an edge; move one cell toward the reference when it is over half a cell away.
	lat, lng := area.LatitudeCenter(), area.LongitudeCenter()
	if d := lat - refLat; d > halfResolution && lat-resolution >= -latMax {
		lat -= resolution
	} else if d < -halfResolution && lat+resolution <= latMax {
		lat += resolution
	}
	if d := lng - refLng; d > halfResolution {
		lng -= resolution
	} else if d < -halfResolution {
		lng += resolution
	}

	area = area.WithCenter(lat, lng)
	return Encode(area.LatitudeCenter(), area.LongitudeCenter(), area.CodeLength)
}
