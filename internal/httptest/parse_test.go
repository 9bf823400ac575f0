package httptest

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		resp, err := Parse("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello")
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", resp.Proto)
		require.Equal(t, 200, resp.Code)
		require.Equal(t, "OK", resp.Status)
		require.Equal(t, "text/plain", resp.Headers.Value("content-type"))
		require.Equal(t, "hello", resp.Body)
	})

	t.Run("repeated headers", func(t *testing.T) {
		resp, err := Parse("HTTP/1.1 302 Found\r\nSet-Cookie: a=1\r\nSet-Cookie: b=2\r\nContent-Length: 0\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "Found", resp.Status)
		require.Equal(t, []string{"a=1", "b=2"}, slices.Collect(resp.Headers.Values("set-cookie")))
		require.Empty(t, resp.Body)
	})

	t.Run("multi-word status", func(t *testing.T) {
		resp, err := Parse("HTTP/1.0 404 Not Found\r\nContent-Length: 0\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "Not Found", resp.Status)
	})

	t.Run("errors", func(t *testing.T) {
		for _, raw := range []string{
			"HTTP/1.1",
			"HTTP/1.1 abc OK\r\n\r\n",
			"HTTP/1.1 200 OK",
			"HTTP/1.1 200 OK\r\nno-colon\r\n\r\n",
			"HTTP/1.1 200 OK\r\nContent-Length: 3\r\n\r\nhello",
			"HTTP/1.1 200 OK\r\n\r\nhello",
		} {
			_, err := Parse(raw)
			require.Error(t, err, raw)
		}
	})
}
