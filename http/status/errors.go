package status

import "github.com/pkg/errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf returns the status code carried by an HTTPError, or InternalServerError for any
// other error.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

var (
	ErrMalformedRequestLine    = NewError(BadRequest, "malformed request line")
	ErrMalformedHeader         = NewError(BadRequest, "malformed header")
	ErrTruncatedBody           = NewError(BadRequest, "request body is shorter than its Content-Length")
	ErrBadRequest              = NewError(BadRequest, "bad request")
	ErrNotFound                = NewError(NotFound, "not found")
	ErrInternalServerError     = NewError(InternalServerError, "internal server error")
	ErrBodyTooLarge            = NewError(RequestEntityTooLarge, "request body is too large")
	ErrHeaderFieldsTooLarge    = NewError(RequestHeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders          = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrURITooLong              = NewError(RequestURITooLong, "request URI too long")
	ErrHTTPVersionNotSupported = NewError(HTTPVersionNotSupported, "HTTP version not supported")
	ErrUnauthorized            = NewError(Unauthorized, "unauthorized")
)
