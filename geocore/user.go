package geocore

//
// user.go - user registration, saving, and the default identity.
//

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jatiwn/geocore-tutorial-1/httpx"
	"github.com/jatiwn/geocore-tutorial-1/model"
	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// defaultName returns the device-derived default user name.
func (c *Client) defaultName() string {
	return c.deviceID
}

// DefaultUserID returns the deterministically derived default user ID:
// USE<projectID[3:]>-<deviceID> when the project ID starts with "PRO",
// otherwise the raw device identifier.
func (c *Client) DefaultUserID() string {
	if strings.HasPrefix(c.projectID, "PRO") {
		return "USE" + c.projectID[3:] + "-" + c.defaultName()
	}
	return c.defaultName()
}

// defaultPassword returns the rune-reversed default user ID.
//
// This is a deliberately weak, compatibility-only credential scheme:
// the deployed backend expects exactly this derivation for existing
// default users, so it is preserved verbatim and must not be used for
// anything beyond anonymous/demo access.
func (c *Client) defaultPassword() string {
	runes := []rune(c.DefaultUserID())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// DefaultUser returns the default-user entity suitable for
// registration with [Client.RegisterUser].
func (c *Client) DefaultUser() *model.User {
	user := &model.User{}
	user.ID = optional.Some(c.DefaultUserID())
	user.Name = optional.Some(c.defaultName())
	user.Email = optional.Some(c.defaultName() + "@geocore.jp")
	user.Password = optional.Some(c.defaultPassword())
	return user
}

// RegisterUser registers a new user. Pending group memberships and
// tags travel as URL query parameters while the user entity itself is
// the JSON request body.
func (c *Client) RegisterUser(ctx context.Context, user *model.User) (*model.User, error) {
	registered, err := httpx.Call[model.User](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodPost,
		Path:   "/register",
		Query:  user.RegisterParameters(),
		Body:   user.WireMap(),
	})
	if err != nil {
		return nil, err
	}
	return &registered, nil
}

// SaveUser creates or updates the given user. Users with a server ID
// save to /users/{sid}, unsaved users to /users.
func (c *Client) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	return save[model.User](ctx, c, "users", &user.Taggable, user.WireMap())
}

// savePath returns the save path for the given taggable entity.
func savePath(service string, taggable *model.Taggable) string {
	if sid, ok := taggable.ServerID(); ok {
		return fmt.Sprintf("/%s/%d", service, sid)
	}
	return "/" + service
}

// save submits the given entity body to the entity's save path. When
// there is pending tag state, the tag parameters are forced onto the
// URL query string and the body goes to the JSON request body;
// otherwise the body itself is the POST payload.
func save[Output any](ctx context.Context, c *Client, service string,
	taggable *model.Taggable, body map[string]any) (*Output, error) {
	req := &httpx.Request{
		Method: http.MethodPost,
		Path:   savePath(service, taggable),
	}
	if params := taggable.TagParameters(); params != nil {
		req.Query = params
		req.Body = body
	} else {
		req.Query = body
	}
	saved, err := httpx.Call[Output](ctx, c.httpxConfig(), req)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
