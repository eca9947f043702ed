package model

//
// Object - core fields shared by every entity
//

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// Entity is implemented by every server-managed object. Operations
// that require a persisted entity (delete, binary upload) call
// ServerID and fail locally when the ID is absent.
type Entity interface {
	// ServerID returns the server-assigned numeric ID and whether it
	// is present. An entity without a server ID has never been
	// persisted by the server.
	ServerID() (int64, bool)
}

// Object contains the core fields shared by every Geocore entity.
// Concrete entities embed this struct rather than inheriting from it.
type Object struct {
	// SID is the server-assigned numeric ID, present once persisted.
	SID optional.Value[int64]

	// ID is the textual key, either client- or server-assigned.
	ID optional.Value[string]

	// Name is the display name.
	Name optional.Value[string]

	// Description is the long-form description.
	Description optional.Value[string]

	// CreateTime is the server-side creation timestamp.
	CreateTime optional.Value[time.Time]

	// UpdateTime is the server-side last-update timestamp.
	UpdateTime optional.Value[time.Time]

	// Upvotes is the number of upvotes.
	Upvotes optional.Value[int64]

	// Downvotes is the number of downvotes.
	Downvotes optional.Value[int64]

	// CustomData maps custom-data keys to possibly-absent values.
	CustomData map[string]*string

	// JSONData is an opaque JSON blob attached to the object.
	JSONData json.RawMessage
}

// objectWire is the JSON layout of [Object].
type objectWire struct {
	SID         optional.Value[int64]  `json:"sid"`
	ID          optional.Value[string] `json:"id"`
	Name        optional.Value[string] `json:"name"`
	Description optional.Value[string] `json:"description"`
	CreateTime  optional.Value[string] `json:"createTime"`
	UpdateTime  optional.Value[string] `json:"updateTime"`
	Upvotes     optional.Value[int64]  `json:"upvotes"`
	Downvotes   optional.Value[int64]  `json:"downvotes"`
	CustomData  map[string]*string     `json:"customData"`
	JSONData    json.RawMessage        `json:"jsonData"`
}

var jsonNull = []byte(`null`)

// UnmarshalJSON implements json.Unmarshaler. Absent fields decode to
// empty values rather than producing an error.
func (o *Object) UnmarshalJSON(data []byte) error {
	var wire objectWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	o.SID = wire.SID
	o.ID = wire.ID
	o.Name = wire.Name
	o.Description = wire.Description
	o.CreateTime = ParseTime(wire.CreateTime)
	o.UpdateTime = ParseTime(wire.UpdateTime)
	o.Upvotes = wire.Upvotes
	o.Downvotes = wire.Downvotes
	o.CustomData = wire.CustomData
	o.JSONData = nil
	if len(wire.JSONData) > 0 && !bytes.Equal(wire.JSONData, jsonNull) {
		raw := wire.JSONData
		// the blob travels as a raw string field on the write side, so
		// unquote it when it comes back that way
		if raw[0] == '"' {
			var unquoted string
			if err := json.Unmarshal(raw, &unquoted); err == nil {
				raw = json.RawMessage(unquoted)
			}
		}
		o.JSONData = raw
	}
	return nil
}

// ServerID implements [Entity].
func (o *Object) ServerID() (int64, bool) {
	if o.SID.IsNone() {
		return 0, false
	}
	return o.SID.Unwrap(), true
}

// WireMap returns the wire representation used when submitting this
// object to the server. Only non-absent fields are emitted; entries of
// CustomData whose value is absent are dropped; the opaque JSON blob
// is emitted as a raw string field.
func (o *Object) WireMap() map[string]any {
	m := make(map[string]any)
	if !o.SID.IsNone() {
		m["sid"] = o.SID.Unwrap()
	}
	if !o.ID.IsNone() {
		m["id"] = o.ID.Unwrap()
	}
	if !o.Name.IsNone() {
		m["name"] = o.Name.Unwrap()
	}
	if !o.Description.IsNone() {
		m["description"] = o.Description.Unwrap()
	}
	if o.CustomData != nil {
		custom := make(map[string]string)
		for key, value := range o.CustomData {
			if value != nil {
				custom[key] = *value
			}
		}
		m["customData"] = custom
	}
	if len(o.JSONData) > 0 {
		m["jsonData"] = string(o.JSONData)
	}
	return m
}
