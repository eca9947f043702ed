package httpx

//
// request.go - building outbound requests.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"

	"github.com/jatiwn/geocore-tutorial-1/model"
)

// FileSpec describes the file content of a multipart upload.
type FileSpec struct {
	// FieldName is the form field name.
	FieldName string

	// FileName is the file name submitted to the server.
	FileName string

	// MIMEType is the content type of the file.
	MIMEType string

	// Contents contains the raw file bytes.
	Contents []byte
}

// Request describes a single outbound API request.
//
// Parameter placement is deterministic: for GET, HEAD, and DELETE the
// Query parameters are encoded on the URL query string; for POST and
// PUT they become the JSON request body, unless an explicit Body or
// File is present, in which case the parameters are forced onto the
// URL query string and the body carries the JSON or multipart payload.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is the path relative to the base URL.
	Path string

	// Query contains the request parameters.
	Query map[string]any

	// Body contains the explicit JSON body, when present.
	Body map[string]any

	// File contains the multipart file spec, when present.
	File *FileSpec
}

// validate fails fast when the multipart file spec is partially
// specified, before any network call takes place.
func (r *Request) validate() error {
	if r.File == nil {
		return nil
	}
	if r.File.Contents == nil || r.File.FieldName == "" || r.File.FileName == "" || r.File.MIMEType == "" {
		return model.NewInvalidParameterError(
			"multipart upload requires field name, file name, mime type, and file contents")
	}
	return nil
}

// queryOnURL returns whether the Query parameters go onto the URL
// query string rather than into the request body.
func (r *Request) queryOnURL() bool {
	if r.Body != nil || r.File != nil {
		return true
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return true
	default:
		return false
	}
}

// joinURLPath appends resourcePath to urlPath.
func joinURLPath(urlPath, resourcePath string) string {
	if resourcePath == "" {
		if urlPath == "" {
			return "/"
		}
		return urlPath
	}
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	return urlPath + strings.TrimPrefix(resourcePath, "/")
}

// generateBoundary generates a random multipart boundary token.
func generateBoundary() string {
	return fmt.Sprintf("Boundary+%08X%08X", rand.Uint32(), rand.Uint32())
}

// multipartBody serializes the single-part form body for the given
// file spec using the given boundary token.
func multipartBody(boundary string, file *FileSpec) []byte {
	var body bytes.Buffer
	body.WriteString("--" + boundary + "\r\n")
	body.WriteString(fmt.Sprintf(
		"Content-Disposition: form-data; name=%q; filename=%q\r\n",
		file.FieldName, file.FileName))
	body.WriteString(fmt.Sprintf("Content-Type: %s\r\n\r\n", file.MIMEType))
	body.Write(file.Contents)
	body.WriteString("\r\n")
	body.WriteString("--" + boundary + "--\r\n")
	return body.Bytes()
}

// Build constructs the outbound HTTP request described by this
// [*Request] using the given config. Validation failures are local
// errors of kind [model.InvalidParameter].
func (r *Request) Build(ctx context.Context, config *Config) (*http.Request, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	URL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, model.NewInvalidParameterError(err.Error())
	}
	URL.Path = joinURLPath(URL.Path, r.Path)

	// place the parameters onto the URL query string when required,
	// preserving any query already present in the path
	if r.Query != nil && r.queryOnURL() {
		encoded := EncodeQuery(r.Query)
		if URL.RawQuery != "" {
			URL.RawQuery += "&" + encoded
		} else {
			URL.RawQuery = encoded
		}
	}

	// determine the request body and its content type
	var (
		body        []byte
		contentType string
	)
	switch {
	case r.File != nil:
		boundary := generateBoundary()
		body = multipartBody(boundary, r.File)
		contentType = "multipart/form-data; boundary=" + boundary

	case r.Body != nil:
		body, err = json.Marshal(r.Body)
		if err != nil {
			return nil, model.NewInvalidParameterError(err.Error())
		}
		contentType = "application/json"

	case r.Query != nil && !r.queryOnURL():
		body, err = json.Marshal(r.Query)
		if err != nil {
			return nil, model.NewInvalidParameterError(err.Error())
		}
		contentType = "application/json"
	}

	var reqBody *bytes.Reader
	if body != nil {
		config.Logger.Debugf("httpx: %s %s: request body: %s", r.Method, URL.String(), string(body))
		reqBody = bytes.NewReader(body)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, r.Method, URL.String(), reqBody)
	if err != nil {
		return nil, model.NewInvalidParameterError(err.Error())
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if config.Token != "" {
		request.Header.Set(TokenHeaderName, config.Token)
	}
	if config.UserAgent != "" {
		request.Header.Set("User-Agent", config.UserAgent)
	}
	return request, nil
}
