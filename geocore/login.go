package geocore

//
// login.go - POST /auth and the default-user fallback.
//

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jatiwn/geocore-tutorial-1/httpx"
	"github.com/jatiwn/geocore-tutorial-1/model"
)

// errCodeUserNotFound is the server code meaning the user does not
// exist, which triggers the default-user registration fallback.
const errCodeUserNotFound = "Auth.0001"

// Login authenticates the given user against the configured project
// and, on success, stores and returns the access token. A failure is
// propagated untouched: there is no retry.
func (c *Client) Login(ctx context.Context, userID, password string) (string, error) {
	rawresult, err := httpx.Call[json.RawMessage](ctx, c.httpxConfig(), &httpx.Request{
		Method: http.MethodPost,
		Path:   "/auth",
		Query: map[string]any{
			"id":         userID,
			"password":   password,
			"project_id": c.projectID,
		},
	})
	if err != nil {
		return "", err
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rawresult, &payload); err != nil {
		return "", model.NewError(model.InvalidServerResponse)
	}
	if payload.Token == "" {
		return "", model.NewError(model.InvalidState)
	}
	c.token = payload.Token
	c.logger.Debugf("geocore: logged in as %s", userID)
	return c.token, nil
}

// LoginWithDefaultUser logs in with the deterministically derived
// default identity. When the login fails specifically because the
// user does not exist (server code "Auth.0001"), the default identity
// is registered and the login retried exactly once; any other failure
// propagates unchanged.
func (c *Client) LoginWithDefaultUser(ctx context.Context) (string, error) {
	token, err := c.Login(ctx, c.DefaultUserID(), c.defaultPassword())
	if err == nil {
		return token, nil
	}
	var apiErr *model.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != model.ServerError || apiErr.Code() != errCodeUserNotFound {
		return "", err
	}
	c.logger.Debugf("geocore: default user not registered yet, registering")
	if _, err := c.RegisterUser(ctx, c.DefaultUser()); err != nil {
		return "", err
	}
	return c.Login(ctx, c.DefaultUserID(), c.defaultPassword())
}
