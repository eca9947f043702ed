package model

//
// HTTP transport
//

import "net/http"

// HTTPClient is the interface of a generic HTTP client. The stdlib's
// http.Client implements this interface. Consumers of this package may
// provide a custom HTTPClient with additional functionality.
type HTTPClient interface {
	// Do should work like http.Client.Do.
	Do(req *http.Request) (*http.Response, error)
}

// ValidHTTPClientOrDefault is a factory that either returns the client
// provided as argument, if not nil, or http.DefaultClient.
func ValidHTTPClientOrDefault(client HTTPClient) HTTPClient {
	if client != nil {
		return client
	}
	return http.DefaultClient
}
