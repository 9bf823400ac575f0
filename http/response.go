package http

import (
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/internal/response"
	"github.com/indigo-web/coyote/kv"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// why 4? Location, Set-Cookie and a couple of spare seats.
const preallocRespHeaders = 4

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// pre-allocated space for response headers and text/html content-type.
// NOTE: it's recommended to use Request.Respond() method inside of handlers, if there's no
// clear reason otherwise
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Code:        status.OK,
			Headers:     make([]kv.Pair, 0, preallocRespHeaders),
			ContentType: response.DefaultContentType,
		},
	}
}

// Code sets a Response code. The reason phrase is always the canonical one
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// ContentType sets a custom Content-Type header value. The default charset of the MIME,
// if any, is appended on serialization.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.ContentType = value
	return r
}

// Header sets header values to a key. In case it already exists the value will
// be appended. Content-Type is redirected to ContentType, as it's rendered separately: the
// last value wins, and no values leave it untouched.
func (r *Response) Header(key string, values ...string) *Response {
	if strcomp.EqualFold(key, "content-type") {
		if len(values) > 0 {
			r.ContentType(values[len(values)-1])
		}

		return r
	}

	for _, value := range values {
		r.fields.Headers = append(r.fields.Headers, kv.Pair{
			Key:   key,
			Value: value,
		})
	}

	return r
}

// Cookie adds cookies. They'll be later rendered as a set of Set-Cookie headers
func (r *Response) Cookie(cookies ...cookie.Cookie) *Response {
	r.fields.Cookies = append(r.fields.Cookies, cookies...)
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Redirect turns the response into 302 Found pointing to the location. Redirects carry
// no body and no Content-Type.
func (r *Response) Redirect(location string) *Response {
	r.fields.Body = nil
	r.fields.ContentType = ""

	return r.
		Code(status.Found).
		Header("Location", location)
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// The code is taken from status.HTTPError, defaulting to 500 Internal Server Error. The body
// is the plain-text status line.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.CodeOf(err)

	return r.
		Code(code).
		ContentType(mime.Plain).
		String(status.StringCode(code) + " " + string(status.Text(code)))
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	*r.fields = r.fields.Clear()
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Redirect is a predicate to request.Respond().Redirect(...)
func Redirect(request *Request, location string) *Response {
	return request.Respond().Redirect(location)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error) *Response {
	return request.Respond().Error(err)
}
