package static

import (
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/status"
	"github.com/pkg/errors"
)

// Resources serves files verbatim by the request path.
type Resources interface {
	// Read returns the contents of the resource at the path. A missing resource results
	// in status.ErrNotFound.
	Read(path string) ([]byte, error)
	// ContentType returns the MIME derived from the path extension.
	ContentType(path string) mime.MIME
}

// FS is a Resources implementation backed by a file system.
type FS struct {
	fsys fs.FS
}

func New(fsys fs.FS) FS {
	return FS{fsys: fsys}
}

// Dir serves files from the root directory.
func Dir(root string) FS {
	return New(os.DirFS(root))
}

func (f FS) Read(p string) ([]byte, error) {
	name := strings.TrimPrefix(p, "/")
	if !fs.ValidPath(name) || name == "." {
		// rejects .. elements among others, so the root can't be escaped
		return nil, status.ErrNotFound
	}

	stat, err := fs.Stat(f.fsys, name)
	if err == nil && stat.IsDir() {
		return nil, status.ErrNotFound
	}

	var data []byte
	if err == nil {
		data, err = fs.ReadFile(f.fsys, name)
	}

	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, status.ErrNotFound
	default:
		return nil, errors.Wrapf(err, "reading %s", name)
	}
}

func (FS) ContentType(p string) mime.MIME {
	return mime.ByExtension(path.Ext(p))
}
