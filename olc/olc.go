// Package olc encodes latitude/longitude pairs as Open Location Codes ("plus codes")
// and decodes them back into the bounding box of the cell they name.
package olc

import (
	"math"
	"strings"
)

const (
	// Separator splits the leading pair digits from the rest of the code.
	Separator = '+'
	// Padding fills a code up to the separator when fewer pair digits were requested.
	Padding = '0'

	separatorPosition = 8
	codeAlphabet      = "23456789CFGHJMPQRVWX"
	encodingBase      = len(codeAlphabet)

	latMax = 90
	lngMax = 180

	pairCodeLength      = 10
	gridCodeLength      = 5
	maxCodeLength       = pairCodeLength + gridCodeLength
	minTrimmableCodeLen = 6

	gridColumns     = 4
	gridRows        = 5
	gridSizeDegrees = 0.000125

	// Coordinates are worked in integer units of the finest cell: 8000 units per degree
	// at the last pair step, refined by five rows (latitude) or four columns (longitude)
	// per grid digit.
	pairPrecision     = 8000
	finalLatPrecision = pairPrecision * 3125 // gridRows^gridCodeLength
	finalLngPrecision = pairPrecision * 1024 // gridColumns^gridCodeLength
	gridLatUnits      = finalLatPrecision / pairPrecision
	gridLngUnits      = finalLngPrecision / pairPrecision
)

var pairResolutions = [...]float64{20.0, 1.0, 0.05, 0.0025, 0.000125}

// Alphabet returns the 20 symbols a code digit may take, in digit order.
func Alphabet() string {
	return codeAlphabet
}

// alphabetIndex returns the digit value of c, or -1 if c is not a code digit.
// Lowercase letters are accepted.
func alphabetIndex(c byte) int {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return strings.IndexByte(codeAlphabet, c)
}

func clipLatitude(lat float64) float64 {
	if math.IsNaN(lat) {
		return 0
	}
	return math.Min(latMax, math.Max(-latMax, lat))
}

func normalizeLongitude(lng float64) float64 {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return 0
	}
	if lng >= -lngMax && lng < lngMax {
		return lng
	}
	lng = math.Mod(lng+lngMax, 2*lngMax)
	if lng < 0 {
		lng += 2 * lngMax
	}
	return lng - lngMax
}

// latitudePrecision is the height in degrees of a cell of the given code length.
func latitudePrecision(codeLen int) float64 {
	if codeLen <= pairCodeLength {
		return math.Pow(float64(encodingBase), math.Floor(float64(codeLen)/-2+2))
	}
	return math.Pow(float64(encodingBase), -3) / math.Pow(gridRows, float64(codeLen-pairCodeLength))
}
