package http

import (
	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/internal/urlencoded"
	"github.com/indigo-web/coyote/kv"
	"github.com/indigo-web/utils/uf"
)

// EmptyBody is used when the request declares no Content-Length. Nothing is read from the
// connection in that case.
var EmptyBody = NewBody(nil, "")

// Body is the request payload, read in full before the request is dispatched.
type Body struct {
	data        []byte
	contentType string
}

func NewBody(data []byte, contentType string) *Body {
	return &Body{
		data:        data,
		contentType: contentType,
	}
}

// Bytes returns the raw payload. It must not be modified.
func (b *Body) Bytes() []byte {
	return b.data
}

// String returns the raw payload as a string.
func (b *Body) String() string {
	return uf.B2S(b.data)
}

func (b *Body) Len() int {
	return len(b.data)
}

// Form decodes an application/x-www-form-urlencoded payload. Pairs without '=' are skipped,
// names and values are percent-decoded (kept raw if malformed) and if a name repeats, the
// last value wins. A payload of any other content type results
// in an empty form. The result isn't cached, so every call decodes the payload anew.
func (b *Body) Form() *kv.Storage {
	form := kv.NewCaseSensitive()
	if len(b.data) == 0 || !mime.Complies(mime.FormUrlencoded, b.contentType) {
		return form
	}

	urlencoded.Parse(b.String(), false, func(key, value string) {
		form.Set(urlencoded.DecodeOrKeep(key), urlencoded.DecodeOrKeep(value))
	})

	return form
}
