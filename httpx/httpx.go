// Package httpx implements the Geocore request/response pipeline: it
// builds authenticated HTTP requests (including multipart uploads),
// executes them, and normalizes the server's envelope into either a
// typed value or a typed [*model.Error].
package httpx

import (
	"github.com/jatiwn/geocore-tutorial-1/model"
)

// TokenHeaderName is the fixed header carrying the access token.
const TokenHeaderName = "Geocore-Access-Token"

// DefaultMaxBodySize is the maximum response body size we read.
const DefaultMaxBodySize = 1 << 24

// Config contains configuration shared by [Call] and [CallList].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// BaseURL is the MANDATORY base URL of the Geocore service.
	BaseURL string

	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// Token is the OPTIONAL access token. When present it is attached
	// to every request under [TokenHeaderName]; requests issued before
	// any login omit the header.
	Token string

	// UserAgent is the OPTIONAL User-Agent header value to use.
	UserAgent string
}
