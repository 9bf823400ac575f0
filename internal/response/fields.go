package response

import (
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/kv"
)

const DefaultContentType = mime.HTML

type Fields struct {
	Code status.Code
	// ContentType is rendered together with its default charset. Empty value omits
	// the header completely.
	ContentType string
	Headers     []kv.Pair
	Cookies     []cookie.Cookie
	Body        []byte
}

func (f Fields) Clear() Fields {
	f.Code = status.OK
	f.ContentType = DefaultContentType
	f.Headers = f.Headers[:0]
	f.Cookies = f.Cookies[:0]
	f.Body = nil

	return f
}
