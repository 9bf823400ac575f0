package http

import (
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/method"
	"github.com/indigo-web/coyote/http/proto"
	"github.com/indigo-web/coyote/kv"
	"github.com/indigo-web/coyote/session"
)

type (
	Headers = *kv.Storage
	Params  = *kv.Storage
)

// RequestLine is the parsed first line of a request.
type RequestLine struct {
	Method method.Method
	// Path is the request target without the query.
	Path string
	// Params are the query parameters. Keys are unique, the last occurrence wins.
	Params   Params
	Protocol proto.Protocol
}

// Request represents an HTTP request. It is assembled once all of its parts are parsed and
// must be treated as read-only afterward.
type Request struct {
	RequestLine
	// Headers holds header pairs with unique case-insensitive names, the last one wins.
	Headers Headers
	// Cookies are parsed from the Cookie header. Empty if there was none.
	Cookies cookie.Jar
	// Body is the request payload. EmptyBody if no Content-Length was declared.
	Body *Body

	sessions   *session.Store
	cookieName string
}

// NewRequest assembles the request and parses its Cookie header. The sessions store backs
// Session and Authenticated, with the session id taken from the cookieName cookie.
func NewRequest(
	line RequestLine, headers Headers, body *Body, sessions *session.Store, cookieName string,
) *Request {
	if body == nil {
		body = EmptyBody
	}

	jar := cookie.NewJar()
	if value, found := headers.Get("cookie"); found {
		cookie.Parse(jar, value)
	}

	return &Request{
		RequestLine: line,
		Headers:     headers,
		Cookies:     jar,
		Body:        body,
		sessions:    sessions,
		cookieName:  cookieName,
	}
}

// SessionID returns the session identifier carried by the cookie, or empty string.
func (r *Request) SessionID() string {
	return r.Cookies.Value(r.cookieName)
}

// Session returns the session the request belongs to. If there's no live one, nil is
// returned unless create is set, in which case a new session is registered.
func (r *Request) Session(create bool) *session.Session {
	if create {
		return r.sessions.GetOrCreate(r.SessionID())
	}

	s, found := r.sessions.Lookup(r.SessionID())
	if !found {
		return nil
	}

	return s
}

// Authenticated reports whether the request belongs to a session with a logged-in user.
func (r *Request) Authenticated() bool {
	return r.sessions.HasAuthenticatedUser(r.SessionID())
}

// ContentType returns the Content-Type header value.
func (r *Request) ContentType() string {
	return r.Headers.Value("content-type")
}

// Respond returns a fresh response builder. The response is written using the request's
// protocol version.
func (r *Request) Respond() *Response {
	return NewResponse()
}
