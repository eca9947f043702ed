// Package geocore implements the client for the Geocore HTTP API. The
// [*Client] holds the session configuration and the access token and
// is the sole entry point for issuing requests.
//
// Construct a client explicitly and pass it down to the code that
// needs it; there is no process-wide shared instance. All methods are
// blocking and context-aware; wrap any call with [result.Start] to
// obtain a future resolving exactly once.
package geocore

import (
	"github.com/google/uuid"
	"github.com/jatiwn/geocore-tutorial-1/httpx"
	"github.com/jatiwn/geocore-tutorial-1/model"
)

// Config contains the client configuration.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// BaseURL is the MANDATORY base URL of the Geocore service.
	BaseURL string

	// ProjectID is the MANDATORY tenant identifier scoping all calls.
	ProjectID string

	// DeviceID is the OPTIONAL stable device identifier used to derive
	// the default-user identity. When empty, a random identifier is
	// generated once per client, which makes the default user unstable
	// across processes; hosts that rely on the default user should
	// provide a stable identifier.
	DeviceID string

	// HTTPClient is the OPTIONAL [model.HTTPClient] to use. We default
	// to http.DefaultClient.
	HTTPClient model.HTTPClient

	// Logger is the OPTIONAL [model.Logger] to use. We default to
	// [model.DiscardLogger].
	Logger model.Logger

	// UserAgent is the OPTIONAL User-Agent header value.
	UserAgent string
}

// Client is a Geocore API client. The zero value is invalid; construct
// using [NewClient].
//
// The token is written by [Client.Login] and read by every subsequent
// request. The expected usage pattern is configure-then-login during
// application startup followed by read-only access; concurrent logins
// racing each other are not guarded against.
type Client struct {
	// baseURL is the base URL of the Geocore service.
	baseURL string

	// projectID is the tenant identifier.
	projectID string

	// deviceID is the stable device identifier.
	deviceID string

	// httpClient is the HTTP transport.
	httpClient model.HTTPClient

	// logger is the logger.
	logger model.Logger

	// userAgent is the User-Agent header value.
	userAgent string

	// token is the access token, set only by a successful login.
	token string
}

// NewClient constructs a [*Client] with the given config.
func NewClient(config *Config) *Client {
	deviceID := config.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	return &Client{
		baseURL:    config.BaseURL,
		projectID:  config.ProjectID,
		deviceID:   deviceID,
		httpClient: model.ValidHTTPClientOrDefault(config.HTTPClient),
		logger:     model.ValidLoggerOrDefault(config.Logger),
		userAgent:  config.UserAgent,
	}
}

// Configure updates the base URL and the project ID and returns the
// client itself for chaining. Configuring is idempotent and expected
// to happen during application startup.
func (c *Client) Configure(baseURL, projectID string) *Client {
	c.baseURL = baseURL
	c.projectID = projectID
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ProjectID returns the configured project ID.
func (c *Client) ProjectID() string {
	return c.projectID
}

// Token returns the current access token, which is empty until a
// login succeeds.
func (c *Client) Token() string {
	return c.token
}

// Logout forgets the current access token.
func (c *Client) Logout() {
	c.token = ""
}

// httpxConfig returns the [*httpx.Config] for the current session.
func (c *Client) httpxConfig() *httpx.Config {
	return &httpx.Config{
		BaseURL:   c.baseURL,
		Client:    c.httpClient,
		Logger:    c.logger,
		Token:     c.token,
		UserAgent: c.userAgent,
	}
}

// requireServerID returns the entity's server-assigned ID or an
// [model.InvalidParameter] error, without performing any network call.
func requireServerID(entity model.Entity, message string) (int64, error) {
	sid, ok := entity.ServerID()
	if !ok {
		return 0, model.NewInvalidParameterError(message)
	}
	return sid, nil
}
