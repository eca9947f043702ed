package model

//
// Typed error taxonomy
//

import "fmt"

// ErrorDomain is the domain of every [*Error] returned by the SDK.
const ErrorDomain = "jp.geocore.error"

// ErrorKind classifies an [*Error].
type ErrorKind int

const (
	// InvalidState indicates an unexpected internal state. Possibly a bug.
	InvalidState = ErrorKind(iota)

	// InvalidServerResponse indicates an unexpected server response,
	// including transport-level failures and unknown status codes.
	InvalidServerResponse

	// ServerError indicates that the server returned an application-level
	// error; the error detail carries the server's code and message.
	ServerError

	// TokenUndefined indicates that no token is available, likely because
	// the client is uninitialized or the user is not logged in.
	TokenUndefined

	// UnauthorizedAccess indicates that access to the requested resource
	// is forbidden, likely because the user is not logged in.
	UnauthorizedAccess

	// InvalidParameter indicates that a parameter passed to an API
	// operation is invalid; no network call has been performed.
	InvalidParameter
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case InvalidState:
		return "invalid state"
	case InvalidServerResponse:
		return "invalid server response"
	case ServerError:
		return "server error"
	case TokenUndefined:
		return "token undefined"
	case UnauthorizedAccess:
		return "unauthorized access"
	case InvalidParameter:
		return "invalid parameter"
	default:
		return "unknown error"
	}
}

// Error is the typed error returned by every SDK operation. Callers
// should branch on the Kind and, for [ServerError], on Code to decide
// on compensating action. Use errors.As to extract an [*Error] from
// the error chain.
type Error struct {
	// Kind classifies this error.
	Kind ErrorKind

	// Detail contains optional error details, such as the server's
	// "code" and "message" fields or the HTTP "statusCode".
	Detail map[string]string

	// Err is the optional underlying error, set for transport-level
	// failures so that the original error remains unwrappable.
	Err error
}

// NewError constructs an [*Error] with the given kind and no detail.
func NewError(kind ErrorKind) *Error {
	return &Error{Kind: kind, Detail: map[string]string{}}
}

// NewServerError constructs a [ServerError] instance carrying the
// application-level code and message returned by the server.
func NewServerError(code, message string) *Error {
	return &Error{
		Kind: ServerError,
		Detail: map[string]string{
			"code":    code,
			"message": message,
		},
	}
}

// NewInvalidParameterError constructs an [InvalidParameter] instance
// carrying the given message.
func NewInvalidParameterError(message string) *Error {
	return &Error{
		Kind:   InvalidParameter,
		Detail: map[string]string{"message": message},
	}
}

// NewTransportError constructs an [InvalidServerResponse] instance
// wrapping the given transport-level error.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:   InvalidServerResponse,
		Detail: map[string]string{"error": err.Error()},
		Err:    err,
	}
}

// NewStatusCodeError constructs an [InvalidServerResponse] instance
// for an HTTP status code that is neither 200 nor 403.
func NewStatusCodeError(statusCode int) *Error {
	return &Error{
		Kind:   InvalidServerResponse,
		Detail: map[string]string{"statusCode": fmt.Sprintf("%d", statusCode)},
	}
}

// Error implements error.
func (e *Error) Error() string {
	if code := e.Code(); code != "" {
		return fmt.Sprintf("%s: %s: %s: %s", ErrorDomain, e.Kind, code, e.Detail["message"])
	}
	return fmt.Sprintf("%s: %s", ErrorDomain, e.Kind)
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the application-level error code returned by the
// server, or an empty string when there is no such code.
func (e *Error) Code() string {
	return e.Detail["code"]
}
