package olc

import "math"

// CodeArea is the closed bounding box named by a full code.
type CodeArea struct {
	LatitudeLo  float64 `json:"latitude_lo"`
	LongitudeLo float64 `json:"longitude_lo"`
	LatitudeHi  float64 `json:"latitude_hi"`
	LongitudeHi float64 `json:"longitude_hi"`
	// CodeLength counts significant digits only, not the separator or padding.
	CodeLength int `json:"code_length"`
}

// LatitudeCenter returns the middle of the latitude range, never above 90.
func (a CodeArea) LatitudeCenter() float64 {
	return math.Min(a.LatitudeLo+(a.LatitudeHi-a.LatitudeLo)/2, latMax)
}

// LongitudeCenter returns the middle of the longitude range, never above 180.
func (a CodeArea) LongitudeCenter() float64 {
	return math.Min(a.LongitudeLo+(a.LongitudeHi-a.LongitudeLo)/2, lngMax)
}

// Contains reports whether the point lies inside the box, edges included.
func (a CodeArea) Contains(lat, lng float64) bool {
	return lat >= a.LatitudeLo && lat <= a.LatitudeHi &&
		lng >= a.LongitudeLo && lng <= a.LongitudeHi
}

// WithCenter returns a copy of the area of the same size, moved so its
// center sits at the given point.
func (a CodeArea) WithCenter(lat, lng float64) CodeArea {
	dLat := lat - (a.LatitudeLo+a.LatitudeHi)/2
	dLng := lng - (a.LongitudeLo+a.LongitudeHi)/2
	a.LatitudeLo += dLat
	a.LatitudeHi += dLat
	a.LongitudeLo += dLng
	a.LongitudeHi += dLng
	return a
}
