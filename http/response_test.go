package http

import (
	"testing"

	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/kv"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
		require.Empty(t, fields.Headers)
		require.Nil(t, fields.Body)
	})

	t.Run("builder", func(t *testing.T) {
		fields := NewResponse().
			Code(status.Unauthorized).
			Header("content-type", mime.CSS).
			Header("X-Multi", "a", "b").
			Cookie(cookie.New(cookie.SessionName, "abc")).
			String("hello").
			Reveal()

		require.Equal(t, status.Unauthorized, fields.Code)
		require.Equal(t, mime.CSS, fields.ContentType)
		require.Equal(t, []kv.Pair{{"X-Multi", "a"}, {"X-Multi", "b"}}, fields.Headers)
		require.Equal(t, []cookie.Cookie{{Name: cookie.SessionName, Value: "abc"}}, fields.Cookies)
		require.Equal(t, "hello", string(fields.Body))
	})

	t.Run("content-type without values", func(t *testing.T) {
		fields := NewResponse().ContentType(mime.CSS).Header("Content-Type").Reveal()
		require.Equal(t, mime.CSS, fields.ContentType)
		require.Empty(t, fields.Headers)

		fields = NewResponse().Header("Content-Type", mime.Plain, mime.JSON).Reveal()
		require.Equal(t, mime.JSON, fields.ContentType)
	})

	t.Run("redirect", func(t *testing.T) {
		fields := NewResponse().String("dropped").Redirect("/index.html").Reveal()
		require.Equal(t, status.Found, fields.Code)
		require.Empty(t, fields.ContentType)
		require.Nil(t, fields.Body)
		require.Equal(t, []kv.Pair{{"Location", "/index.html"}}, fields.Headers)
	})

	t.Run("error", func(t *testing.T) {
		fields := NewResponse().Error(status.ErrMalformedHeader).Reveal()
		require.Equal(t, status.BadRequest, fields.Code)
		require.Equal(t, "400 Bad Request", string(fields.Body))

		fields = NewResponse().Error(nil).Reveal()
		require.Equal(t, status.OK, fields.Code)
	})

	t.Run("clear", func(t *testing.T) {
		resp := NewResponse().Code(status.NotFound).Header("A", "b").String("x")
		fields := resp.Clear().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Headers)
		require.Nil(t, fields.Body)
	})
}
