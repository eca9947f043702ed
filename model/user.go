package model

//
// User
//

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// User is a server-managed user account.
type User struct {
	Taggable

	// Password is the write-only password, never returned by the server.
	Password optional.Value[string]

	// Email is the account email address.
	Email optional.Value[string]

	// LastLocationTime is when the last known location was recorded.
	LastLocationTime optional.Value[time.Time]

	// LastLocation is the last known location.
	LastLocation Point

	// groupIDs holds pending group memberships submitted on
	// registration.
	groupIDs []string
}

// userWire is the JSON layout of the [User]-specific fields.
type userWire struct {
	Email            optional.Value[string] `json:"email"`
	LastLocationTime optional.Value[string] `json:"lastLocationTime"`
	LastLocation     Point                  `json:"lastLocation"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *User) UnmarshalJSON(data []byte) error {
	var wire userWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	u.Password = optional.None[string]()
	u.Email = wire.Email
	u.LastLocationTime = ParseTime(wire.LastLocationTime)
	u.LastLocation = wire.LastLocation
	return json.Unmarshal(data, &u.Taggable)
}

// AddGroupIDs schedules group memberships to be submitted when this
// user is registered.
func (u *User) AddGroupIDs(groupIDs ...string) {
	u.groupIDs = append(u.groupIDs, groupIDs...)
}

// RegisterParameters returns the parameters submitted alongside a
// registration request, merging pending group memberships with pending
// tag state, or nil when there is nothing pending.
func (u *User) RegisterParameters() map[string]any {
	params := make(map[string]any)
	if u.groupIDs != nil {
		params["group_ids"] = strings.Join(u.groupIDs, ",")
	}
	for key, value := range u.TagParameters() {
		params[key] = value
	}
	if len(params) <= 0 {
		return nil
	}
	return params
}

// WireMap returns the wire representation of this user.
func (u *User) WireMap() map[string]any {
	m := u.Taggable.WireMap()
	if !u.Password.IsNone() {
		m["password"] = u.Password.Unwrap()
	}
	if !u.Email.IsNone() {
		m["email"] = u.Email.Unwrap()
	}
	return m
}
