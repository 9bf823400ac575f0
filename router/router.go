package router

import (
	"github.com/indigo-web/coyote/http"
)

// Router dispatches parsed requests. OnError is called when the request couldn't be parsed
// or a handler failed; the request passed may be a stub holding no parsed parts then.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(request *http.Request, err error) *http.Response
}
