package httpx

//
// call.go - dispatching requests and interpreting responses.
//

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jatiwn/geocore-tutorial-1/model"
	"github.com/jatiwn/geocore-tutorial-1/optional"
)

// envelope is the top-level JSON wrapper returned by every API call.
type envelope struct {
	// Status is "success" on success paths. A 200 response whose
	// status field is missing is an invalid server response.
	Status optional.Value[string] `json:"status"`

	// Result is the payload, present on success paths.
	Result json.RawMessage `json:"result"`

	// Code is the application-level error code.
	Code string `json:"code"`

	// Message is the application-level error message.
	Message string `json:"message"`
}

// zeroValue is a convenience function to return an empty value.
func zeroValue[T any]() T {
	var value T
	return value
}

// do builds the given request, dispatches it, and interprets the HTTP
// outcome, returning the unwrapped result payload or a typed error:
//
// - a transport-level failure maps to [model.InvalidServerResponse]
// carrying the transport error;
//
// - HTTP 200 with an envelope whose status is "success" unwraps the
// result payload;
//
// - HTTP 200 with any other or missing status maps to
// [model.ServerError] or [model.InvalidServerResponse] respectively;
//
// - HTTP 403 maps to [model.UnauthorizedAccess] without parsing the
// body;
//
// - any other status maps to [model.InvalidServerResponse] with the
// status code in the error detail.
func do(ctx context.Context, config *Config, req *Request) (json.RawMessage, error) {
	request, err := req.Build(ctx, config)
	if err != nil {
		return nil, err
	}

	response, err := config.Client.Do(request)
	if err != nil {
		return nil, model.NewTransportError(err)
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
		rawrespbody, err := io.ReadAll(io.LimitReader(response.Body, DefaultMaxBodySize))
		if err != nil {
			return nil, model.NewTransportError(err)
		}
		config.Logger.Debugf("httpx: %s %s: response body: %s", req.Method, req.Path, string(rawrespbody))
		var env envelope
		if err := json.Unmarshal(rawrespbody, &env); err != nil {
			return nil, model.NewError(model.InvalidServerResponse)
		}
		if env.Status.IsNone() {
			return nil, model.NewError(model.InvalidServerResponse)
		}
		if env.Status.Unwrap() != "success" {
			return nil, model.NewServerError(env.Code, env.Message)
		}
		return env.Result, nil

	case http.StatusForbidden:
		return nil, model.NewError(model.UnauthorizedAccess)

	default:
		return nil, model.NewStatusCodeError(response.StatusCode)
	}
}

// Call invokes the API described by req and decodes the result
// payload into a value of type Output.
//
// This function either returns an error or a valid Output.
func Call[Output any](ctx context.Context, config *Config, req *Request) (Output, error) {
	rawresult, err := do(ctx, config, req)
	if err != nil {
		return zeroValue[Output](), err
	}
	var output Output
	// an absent result field behaves like an explicit null
	if len(bytes.TrimSpace(rawresult)) <= 0 {
		return output, nil
	}
	if err := json.Unmarshal(rawresult, &output); err != nil {
		return zeroValue[Output](), model.NewError(model.InvalidServerResponse)
	}
	return output, nil
}

// CallList invokes the API described by req and decodes the result
// payload into a list of Output values. A result payload that is not
// a JSON array yields an empty list rather than an error, and each
// element decodes independently: a malformed element becomes the zero
// Output instead of failing the whole list.
func CallList[Output any](ctx context.Context, config *Config, req *Request) ([]Output, error) {
	rawresult, err := do(ctx, config, req)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(rawresult); len(trimmed) <= 0 || trimmed[0] != '[' {
		return []Output{}, nil
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(rawresult, &elements); err != nil {
		return nil, model.NewError(model.InvalidServerResponse)
	}
	outputs := make([]Output, 0, len(elements))
	for _, element := range elements {
		var output Output
		_ = json.Unmarshal(element, &output)
		outputs = append(outputs, output)
	}
	return outputs, nil
}
