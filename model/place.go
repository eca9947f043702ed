package model

//
// Place
//

import (
	"encoding/json"

	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// Place is a point of interest managed by the Geocore service.
type Place struct {
	Taggable

	// ShortName is the abbreviated display name.
	ShortName optional.Value[string]

	// ShortDescription is the abbreviated description.
	ShortDescription optional.Value[string]

	// Point is the geographical location of the place.
	Point Point

	// DistanceLimit bounds proximity searches around this place.
	DistanceLimit optional.Value[float64]
}

// placeWire is the JSON layout of the [Place]-specific fields.
type placeWire struct {
	ShortName        optional.Value[string]  `json:"shortName"`
	ShortDescription optional.Value[string]  `json:"shortDescription"`
	Point            Point                   `json:"point"`
	DistanceLimit    optional.Value[float64] `json:"distanceLimit"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Place) UnmarshalJSON(data []byte) error {
	var wire placeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	p.ShortName = wire.ShortName
	p.ShortDescription = wire.ShortDescription
	p.Point = wire.Point
	p.DistanceLimit = wire.DistanceLimit
	return json.Unmarshal(data, &p.Taggable)
}

// WireMap returns the wire representation of this place. The point is
// emitted only when at least one coordinate is present, in which case
// it is either a full two-key object or an empty object.
func (p *Place) WireMap() map[string]any {
	m := p.Taggable.WireMap()
	if !p.ShortName.IsNone() {
		m["shortName"] = p.ShortName.Unwrap()
	}
	if !p.ShortDescription.IsNone() {
		m["shortDescription"] = p.ShortDescription.Unwrap()
	}
	if !p.Point.IsEmpty() {
		m["point"] = p.Point.WireMap()
	}
	if !p.DistanceLimit.IsNone() {
		m["distanceLimit"] = p.DistanceLimit.Unwrap()
	}
	return m
}
