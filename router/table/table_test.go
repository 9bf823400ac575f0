package table

import (
	"errors"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/method"
	"github.com/indigo-web/coyote/http/proto"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/kv"
	"github.com/indigo-web/coyote/session"
	"github.com/stretchr/testify/require"
)

func newRequest(m method.Method, path string) *http.Request {
	line := http.RequestLine{Method: m, Path: path, Params: kv.NewCaseSensitive(), Protocol: proto.HTTP11}
	store := session.NewStore(clock.NewMock(), 16)

	return http.NewRequest(line, kv.New(), nil, store, cookie.SessionName)
}

func answer(body string) Handler {
	return func(request *http.Request) *http.Response {
		return http.String(request, body)
	}
}

func bodyOf(resp *http.Response) string {
	return string(resp.Reveal().Body)
}

func TestRouter(t *testing.T) {
	r := New(answer("fallback")).
		Get("/", answer("root")).
		Get("/login", answer("login page")).
		Post("/login", answer("login attempt")).
		Get("/login", answer("shadowed"))

	t.Run("exact match", func(t *testing.T) {
		require.Equal(t, "root", bodyOf(r.OnRequest(newRequest(method.GET, "/"))))
		require.Equal(t, "login page", bodyOf(r.OnRequest(newRequest(method.GET, "/login"))))
		require.Equal(t, "login attempt", bodyOf(r.OnRequest(newRequest(method.POST, "/login"))))
	})

	t.Run("fallback", func(t *testing.T) {
		require.Equal(t, "fallback", bodyOf(r.OnRequest(newRequest(method.PUT, "/login"))))
		require.Equal(t, "fallback", bodyOf(r.OnRequest(newRequest(method.GET, "/Login"))))
		require.Equal(t, "fallback", bodyOf(r.OnRequest(newRequest(method.GET, "/login/"))))
	})

	t.Run("order", func(t *testing.T) {
		routes := r.Routes()
		require.Len(t, routes, 4)
		require.Equal(t, "/", routes[0].Path)
		require.Equal(t, method.POST, routes[2].Method)
	})
}

func TestMiddlewares(t *testing.T) {
	var trace []string
	tracer := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(request *http.Request) *http.Response {
				trace = append(trace, name)
				return next(request)
			}
		}
	}

	r := New(answer("fallback")).
		Get("/", answer("root")).
		Use(tracer("outer"), tracer("inner"))

	require.Equal(t, "root", bodyOf(r.OnRequest(newRequest(method.GET, "/"))))
	require.Equal(t, []string{"outer", "inner"}, trace)

	require.Equal(t, "fallback", bodyOf(r.OnRequest(newRequest(method.GET, "/x"))))
	require.Equal(t, []string{"outer", "inner", "outer", "inner"}, trace)
}

func TestOnError(t *testing.T) {
	r := New(answer("fallback")).
		RouteError(func(request *http.Request, err error) *http.Response {
			return http.String(request, "custom").Code(status.NotFound)
		}, status.NotFound)

	resp := r.OnError(newRequest(method.GET, "/"), status.ErrNotFound)
	require.Equal(t, "custom", bodyOf(resp))

	resp = r.OnError(newRequest(method.GET, "/"), status.ErrMalformedHeader)
	require.Equal(t, status.BadRequest, resp.Reveal().Code)
	require.Equal(t, "400 Bad Request", bodyOf(resp))

	resp = r.OnError(newRequest(method.GET, "/"), errors.New("boom"))
	require.Equal(t, status.InternalServerError, resp.Reveal().Code)
}
