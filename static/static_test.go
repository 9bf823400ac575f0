package static

import (
	"testing"
	"testing/fstest"

	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/status"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	resources := New(fstest.MapFS{
		"index.html":      {Data: []byte("<h1>index</h1>")},
		"css/styles.css":  {Data: []byte("body{}")},
		"notes":           {Data: []byte("plain")},
		"dir/nested.html": {Data: []byte("nested")},
	})

	t.Run("read", func(t *testing.T) {
		data, err := resources.Read("/index.html")
		require.NoError(t, err)
		require.Equal(t, "<h1>index</h1>", string(data))

		data, err = resources.Read("/css/styles.css")
		require.NoError(t, err)
		require.Equal(t, "body{}", string(data))
	})

	t.Run("not found", func(t *testing.T) {
		for _, path := range []string{"/missing.html", "/", "/dir", "/../index.html", "/css/../index.html", "//index.html"} {
			_, err := resources.Read(path)
			require.ErrorIs(t, err, status.ErrNotFound, path)
		}
	})

	t.Run("content type", func(t *testing.T) {
		require.Equal(t, mime.HTML, resources.ContentType("/index.html"))
		require.Equal(t, mime.CSS, resources.ContentType("/css/styles.css"))
		require.Equal(t, mime.JS, resources.ContentType("/js/scripts.js"))
		require.Equal(t, mime.Plain, resources.ContentType("/notes"))
	})
}
