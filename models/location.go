package models

import "pluscode/olc"

type CodeResult struct {
	Code string `json:"code"`
}

// Area is the decoded form of a full code.
type Area struct {
	Code            string  `json:"code"`
	LatitudeLo      float64 `json:"latitude_lo"`
	LongitudeLo     float64 `json:"longitude_lo"`
	LatitudeHi      float64 `json:"latitude_hi"`
	LongitudeHi     float64 `json:"longitude_hi"`
	LatitudeCenter  float64 `json:"latitude_center"`
	LongitudeCenter float64 `json:"longitude_center"`
	CodeLength      int     `json:"code_length"`
	Geohash         string  `json:"geohash"`
}

// NewArea flattens a decoded area; the geohash is filled in by the caller.
func NewArea(code string, a olc.CodeArea) Area {
	return Area{
		Code:            code,
		LatitudeLo:      a.LatitudeLo,
		LongitudeLo:     a.LongitudeLo,
		LatitudeHi:      a.LatitudeHi,
		LongitudeHi:     a.LongitudeHi,
		LatitudeCenter:  a.LatitudeCenter(),
		LongitudeCenter: a.LongitudeCenter(),
		CodeLength:      a.CodeLength,
	}
}

type Validity struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
	Short bool   `json:"short"`
	Full  bool   `json:"full"`
}

type Alphabet struct {
	Alphabet string `json:"alphabet"`
}
