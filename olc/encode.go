package olc

import (
	"fmt"
	"math"
	"strings"
)

// Encode returns the code of the given length for the cell containing the point.
// Latitude is clipped to [-90, 90] and longitude wrapped into [-180, 180).
//
// Lengths below 8 must be even. Lengths above 15 are treated as 15, the finest
// precision the grid digits resolve. Codes shorter than 8 digits are padded
// up to the separator, e.g. Encode(20.375, 2.775, 4) returns "7FG40000+".
func Encode(lat, lng float64, codeLen int) (string, error) {
	if codeLen < 2 || (codeLen < separatorPosition && codeLen%2 == 1) {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, codeLen)
	}
	if codeLen > maxCodeLength {
		codeLen = maxCodeLength
	}

	lat = clipLatitude(lat)
	lng = normalizeLongitude(lng)
	// A latitude of exactly 90 belongs to the last cell below the pole.
	if lat == latMax {
		lat -= latitudePrecision(codeLen)
	}

	latVal, lngVal := toUnits(lat, lng)
	code := encodePairs(latVal, lngVal, min(codeLen, pairCodeLength))
	if codeLen > pairCodeLength {
		code += encodeGrid(latVal, lngVal, codeLen-pairCodeLength)
	}
	return code, nil
}

// toUnits converts a clipped point into integer offsets from (-90, -180) in
// the finest cell units, so digit extraction is free of float drift.
func toUnits(lat, lng float64) (int64, int64) {
	latVal := scaleFloor(lat, finalLatPrecision) + latMax*finalLatPrecision
	lngVal := scaleFloor(lng, finalLngPrecision) + lngMax*finalLngPrecision
	return clampUnits(latVal, 2*latMax*finalLatPrecision), clampUnits(lngVal, 2*lngMax*finalLngPrecision)
}

// scaleFloor returns floor(deg * precision). The product is first rounded to
// a thousandth of a unit so values like 2.775 land on their exact unit.
func scaleFloor(deg float64, precision int64) int64 {
	return int64(math.Floor(math.Round(deg*float64(precision)*1e3) / 1e3))
}

func clampUnits(v, limit int64) int64 {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

// encodePairs emits latitude and longitude digits alternately, one pair per
// resolution step, then pads and inserts the separator.
func encodePairs(latVal, lngVal int64, n int) string {
	var digits strings.Builder
	latPlace := int64(pairResolutions[0] * finalLatPrecision)
	lngPlace := int64(pairResolutions[0] * finalLngPrecision)
	for i := 0; i < n; i += 2 {
		d := latVal / latPlace
		latVal -= d * latPlace
		digits.WriteByte(codeAlphabet[d])

		d = lngVal / lngPlace
		lngVal -= d * lngPlace
		digits.WriteByte(codeAlphabet[d])

		latPlace /= int64(encodingBase)
		lngPlace /= int64(encodingBase)
	}

	code := digits.String()
	if len(code) < separatorPosition {
		return code + strings.Repeat(string(Padding), separatorPosition-len(code)) + string(Separator)
	}
	return code[:separatorPosition] + string(Separator) + code[separatorPosition:]
}

// encodeGrid refines the last pair cell with n digits, each picking one cell
// of a 5-row by 4-column subdivision.
func encodeGrid(latVal, lngVal int64, n int) string {
	latVal %= gridLatUnits
	lngVal %= gridLngUnits
	rowHeight := int64(gridLatUnits / gridRows)
	colWidth := int64(gridLngUnits / gridColumns)

	var code strings.Builder
	for i := 0; i < n; i++ {
		row := latVal / rowHeight
		col := lngVal / colWidth
		latVal -= row * rowHeight
		lngVal -= col * colWidth
		rowHeight /= gridRows
		colWidth /= gridColumns
		code.WriteByte(codeAlphabet[row*gridColumns+col])
	}
	return code.String()
}
