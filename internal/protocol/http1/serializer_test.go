package http1

import (
	"bytes"
	"testing"

	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/proto"
	"github.com/indigo-web/coyote/http/status"
	"github.com/stretchr/testify/require"
)

func TestSerializer(t *testing.T) {
	s := NewSerializer(make([]byte, 0, 64))

	t.Run("html body", func(t *testing.T) {
		resp := http.NewResponse().String("Hello world!")
		want := "HTTP/1.1 200 OK\r\n" +
			"Content-Type: text/html;charset=utf-8\r\n" +
			"Content-Length: 12\r\n" +
			"\r\n" +
			"Hello world!"

		require.Equal(t, want, string(s.Render(proto.HTTP11, resp)))
	})

	t.Run("redirect with cookie", func(t *testing.T) {
		resp := http.NewResponse().
			Redirect("/index.html").
			Cookie(cookie.New(cookie.SessionName, "abc"))
		want := "HTTP/1.1 302 Found\r\n" +
			"Location: /index.html\r\n" +
			"Content-Length: 0\r\n" +
			"Set-Cookie: JSESSIONID=abc\r\n" +
			"\r\n"

		require.Equal(t, want, string(s.Render(proto.HTTP11, resp)))
	})

	t.Run("unauthorized", func(t *testing.T) {
		resp := http.NewResponse().Code(status.Unauthorized).String("<p>401</p>")
		rendered := string(s.Render(proto.HTTP10, resp))
		require.Contains(t, rendered, "HTTP/1.0 401 Unauthorized\r\n")
		require.Contains(t, rendered, "Content-Length: 10\r\n")
	})

	t.Run("content type without charset", func(t *testing.T) {
		resp := http.NewResponse().ContentType(mime.PNG).Bytes([]byte{1, 2, 3})
		rendered := s.Render(proto.HTTP11, resp)
		require.True(t, bytes.HasSuffix(rendered, []byte("Content-Type: image/png\r\nContent-Length: 3\r\n\r\n\x01\x02\x03")))
	})

	t.Run("unknown protocol", func(t *testing.T) {
		resp := http.NewResponse().Error(status.ErrMalformedRequestLine)
		want := "HTTP/1.1 400 Bad Request\r\n" +
			"Content-Type: text/plain;charset=utf-8\r\n" +
			"Content-Length: 15\r\n" +
			"\r\n" +
			"400 Bad Request"

		var out bytes.Buffer
		require.NoError(t, s.Write(proto.Unknown, resp, &out))
		require.Equal(t, want, out.String())
	})
}
