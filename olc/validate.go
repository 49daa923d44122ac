package olc

import "strings"

// IsValid reports whether code is a syntactically valid short or full code.
func IsValid(code string) bool {
	if len(code) < 2 {
		return false
	}
	sep := strings.IndexByte(code, Separator)
	if sep < 0 || sep != strings.LastIndexByte(code, Separator) {
		return false
	}
	if sep > separatorPosition || sep%2 == 1 {
		return false
	}
	if !validPadding(code) {
		return false
	}
	// A single digit after the separator is never produced.
	if len(code)-sep-1 == 1 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c == Separator || c == Padding {
			continue
		}
		if alphabetIndex(c) < 0 {
			return false
		}
	}
	// A code with all eight leading digits must start inside the globe.
	if sep == separatorPosition && !leadingDigitsInRange(code) {
		return false
	}
	return true
}

// leadingDigitsInRange checks that the first latitude and longitude digits
// stay below 180 and 360 degrees from the origin.
func leadingDigitsInRange(code string) bool {
	if alphabetIndex(code[0])*encodingBase >= latMax*2 {
		return false
	}
	if len(code) > 1 && alphabetIndex(code[1])*encodingBase >= lngMax*2 {
		return false
	}
	return true
}

// validPadding checks the padding run, if any: it must not lead the code, it
// must be a single run of even length no longer than 6, and it must be
// followed directly by the separator as the last character.
func validPadding(code string) bool {
	start := strings.IndexByte(code, Padding)
	if start < 0 {
		return true
	}
	if start == 0 {
		return false
	}
	end := start
	for end < len(code) && code[end] == Padding {
		end++
	}
	if strings.IndexByte(code[end:], Padding) >= 0 {
		return false
	}
	n := end - start
	if n%2 == 1 || n > separatorPosition-2 {
		return false
	}
	return end == len(code)-1 && code[end] == Separator
}

// IsShort reports whether code is a valid code with fewer than 8 digits
// before the separator. Short codes need a reference location to be decoded.
func IsShort(code string) bool {
	if !IsValid(code) {
		return false
	}
	return strings.IndexByte(code, Separator) < separatorPosition
}

// IsFull reports whether code is a valid code that names a single cell on
// its own.
func IsFull(code string) bool {
	if !IsValid(code) || IsShort(code) {
		return false
	}
	return leadingDigitsInRange(code)
}
