// Package testingx contains testing extensions, most notably an
// in-process fake Geocore backend implementing the register and login
// workflows and a minimal object/place store.
package testingx

import (
	"net/http"
	"net/http/httptest"
)

// MustNewHTTPServer creates a new [*httptest.Server] using the given
// handler. This function panics on failure.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}
