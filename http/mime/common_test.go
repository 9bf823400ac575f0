package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplies(t *testing.T) {
	require.True(t, Complies(FormUrlencoded, "application/x-www-form-urlencoded"))
	require.True(t, Complies(FormUrlencoded, "application/x-www-form-urlencoded; charset=utf-8"))
	require.True(t, Complies(FormUrlencoded, ""))
	require.False(t, Complies(FormUrlencoded, "multipart/form-data"))
}

func TestByExtension(t *testing.T) {
	require.Equal(t, HTML, ByExtension(".html"))
	require.Equal(t, CSS, ByExtension(".CSS"))
	require.Equal(t, JS, ByExtension(".js"))
	require.Equal(t, Plain, ByExtension(".unknown"))
	require.Equal(t, Plain, ByExtension(""))
}

func TestWithCharset(t *testing.T) {
	require.Equal(t, "text/html;charset=utf-8", WithCharset(HTML))
	require.Equal(t, "image/png", WithCharset(PNG))
}
