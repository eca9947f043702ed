package model

//
// Tag and Taggable
//

import (
	"encoding/json"
	"strings"

	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// TagType is the type of a [Tag].
type TagType string

const (
	// SystemTag identifies a tag defined by the backend.
	SystemTag = TagType("SYSTEM_TAG")

	// UserTag identifies a tag defined by a user.
	UserTag = TagType("USER_TAG")
)

// Tag is a label attached to a [Taggable] entity.
type Tag struct {
	Object

	// Type is the tag type, when known.
	Type optional.Value[TagType]
}

// tagWire is the JSON layout of the [Tag]-specific fields.
type tagWire struct {
	Type optional.Value[string] `json:"type"`
}

// UnmarshalJSON implements json.Unmarshaler. An unknown tag type
// decodes to an empty value.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var wire tagWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	t.Type = optional.None[TagType]()
	if !wire.Type.IsNone() {
		switch typ := TagType(wire.Type.Unwrap()); typ {
		case SystemTag, UserTag:
			t.Type = optional.Some(typ)
		}
	}
	return json.Unmarshal(data, &t.Object)
}

// WireMap returns the wire representation of this tag.
func (t *Tag) WireMap() map[string]any {
	m := t.Object.WireMap()
	if !t.Type.IsNone() {
		m["type"] = string(t.Type.Unwrap())
	}
	return m
}

// TagIDPrefix distinguishes tag IDs from tag names in the tokens
// passed to [Taggable.Tag].
const TagIDPrefix = "TAG"

// Taggable is an entity that can carry free-form tags, resolved either
// by ID or by name at save time.
type Taggable struct {
	Object

	// Tags contains the tags attached to this entity, populated when
	// the entity is fetched from the server.
	Tags []Tag

	// tagIDs and tagNames hold pending write-side tag state
	// accumulated by [Taggable.Tag] and submitted on the next save.
	tagIDs   []string
	tagNames []string
}

// taggableWire is the JSON layout of the [Taggable]-specific fields.
type taggableWire struct {
	Tags []Tag `json:"tags"`
}

// UnmarshalJSON implements json.Unmarshaler. Tags fetched from the
// server replace any pending write-side tag state.
func (t *Taggable) UnmarshalJSON(data []byte) error {
	var wire taggableWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	t.Tags = wire.Tags
	t.tagIDs = nil
	t.tagNames = nil
	return json.Unmarshal(data, &t.Object)
}

// Tag schedules tags to be attached on the next save. Tokens prefixed
// with [TagIDPrefix] are treated as tag IDs, every other token as a
// tag name.
func (t *Taggable) Tag(idsOrNames ...string) {
	for _, token := range idsOrNames {
		if strings.HasPrefix(token, TagIDPrefix) {
			t.tagIDs = append(t.tagIDs, token)
			continue
		}
		t.tagNames = append(t.tagNames, token)
	}
}

// TagParameters returns the pending tag state as request parameters,
// with IDs and names joined by commas, or nil when there is no
// pending tag state.
func (t *Taggable) TagParameters() map[string]any {
	if t.tagIDs == nil && t.tagNames == nil {
		return nil
	}
	params := make(map[string]any)
	if t.tagIDs != nil {
		params["tag_ids"] = strings.Join(t.tagIDs, ",")
	}
	if t.tagNames != nil {
		params["tag_names"] = strings.Join(t.tagNames, ",")
	}
	return params
}
