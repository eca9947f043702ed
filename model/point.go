package model

//
// Point - geographical point in WGS84
//

import "github.com/jatiwn/geocore-tutorial-1/optional"

// Point is a geographical point in WGS84. Either coordinate may be
// absent, in which case the point serializes to an empty object.
type Point struct {
	// Latitude is the latitude in decimal degrees.
	Latitude optional.Value[float64] `json:"latitude"`

	// Longitude is the longitude in decimal degrees.
	Longitude optional.Value[float64] `json:"longitude"`
}

// IsEmpty returns whether both coordinates are absent.
func (p Point) IsEmpty() bool {
	return p.Latitude.IsNone() && p.Longitude.IsNone()
}

// WireMap returns the wire representation of this point: a two-key
// object when both coordinates are present, otherwise an empty
// object, never a partial one.
func (p Point) WireMap() map[string]any {
	if p.Latitude.IsNone() || p.Longitude.IsNone() {
		return map[string]any{}
	}
	return map[string]any{
		"latitude":  p.Latitude.Unwrap(),
		"longitude": p.Longitude.Unwrap(),
	}
}
