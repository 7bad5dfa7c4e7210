package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// Point is a coordinate in the order the application works with: latitude first.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pair returns the point as [lat, lng], the shape clients receive.
func (p Point) Pair() [2]float64 {
	return [2]float64{p.Lat, p.Lng}
}

// postgres point text form: "(lng,lat)". Only plain decimal numbers, with an
// optional exponent, are accepted: NaN, Inf and hex floats are malformed.
const number = `\s*([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)\s*`

var pointPattern = regexp.MustCompile(`^\(` + number + `,` + number + `\)$`)

// Parse reads the persisted "(longitude,latitude)" form. ok is false when raw
// does not hold two numbers in that shape.
func Parse(raw string) (p Point, ok bool) {
	m := pointPattern.FindStringSubmatch(raw)
	if m == nil {
		return Point{}, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
	if err != nil {
		return Point{}, false
	}

	return Point{Lat: lat, Lng: lng}, true
}

// Decode is the lenient variant of Parse used on read paths: a nil, empty or
// malformed value becomes the zero point.
func Decode(raw *string) Point {
	if raw == nil {
		return Point{}
	}
	p, _ := Parse(*raw)
	return p
}

// Encode produces the persisted form. Longitude goes first.
func Encode(lat, lng float64) string {
	return "(" + formatFloat(lng) + "," + formatFloat(lat) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
