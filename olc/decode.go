package olc

import (
	"fmt"
	"strings"
)

// Decode returns the area named by a full code. Digits after the 15th are
// ignored.
func Decode(code string) (CodeArea, error) {
	if !IsFull(code) {
		return CodeArea{}, fmt.Errorf("%w: %q", ErrMalformedCode, code)
	}
	digits := stripCode(code)
	if len(digits) > maxCodeLength {
		digits = digits[:maxCodeLength]
	}

	pairs := digits[:min(len(digits), pairCodeLength)]
	latVal, latSize := decodePairSequence(pairs, 0, finalLatPrecision)
	lngVal, lngSize := decodePairSequence(pairs, 1, finalLngPrecision)

	// Grid digits only offset the low corner of the pair cell and shrink it.
	if len(digits) > pairCodeLength {
		var latOffset, lngOffset int64
		latOffset, lngOffset, latSize, lngSize = decodeGrid(digits[pairCodeLength:])
		latVal += latOffset
		lngVal += lngOffset
	}

	return CodeArea{
		LatitudeLo:  float64(latVal)/finalLatPrecision - latMax,
		LongitudeLo: float64(lngVal)/finalLngPrecision - lngMax,
		LatitudeHi:  float64(latVal+latSize)/finalLatPrecision - latMax,
		LongitudeHi: float64(lngVal+lngSize)/finalLngPrecision - lngMax,
		CodeLength:  len(digits),
	}, nil
}

// stripCode drops the separator and padding and uppercases what is left.
func stripCode(code string) string {
	code = strings.ReplaceAll(code, string(Separator), "")
	code = strings.ReplaceAll(code, string(Padding), "")
	return strings.ToUpper(code)
}

// decodePairSequence sums every other digit starting at offset, scaled by the
// resolution of its step. It returns the low edge and the size of the cell,
// both in units of the given precision.
func decodePairSequence(digits string, offset int, precision int64) (int64, int64) {
	var value int64
	place := int64(pairResolutions[0]) * precision * int64(encodingBase)
	for i := offset; i < len(digits); i += 2 {
		place /= int64(encodingBase)
		value += int64(alphabetIndex(digits[i])) * place
	}
	return value, place
}

// decodeGrid returns the offsets of the grid digits inside their pair cell
// and the size of the final grid cell, in units.
func decodeGrid(digits string) (latVal, lngVal, rowHeight, colWidth int64) {
	rowHeight = gridLatUnits
	colWidth = gridLngUnits
	for i := 0; i < len(digits); i++ {
		idx := int64(alphabetIndex(digits[i]))
		rowHeight /= gridRows
		colWidth /= gridColumns
		latVal += idx / gridColumns * rowHeight
		lngVal += idx % gridColumns * colWidth
	}
	return latVal, lngVal, rowHeight, colWidth
}
