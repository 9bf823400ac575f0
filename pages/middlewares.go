package pages

import (
	"log"

	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/router/table"
)

// Logging logs every dispatched request along with the response code.
func Logging(logger *log.Logger) table.Middleware {
	return func(next table.Handler) table.Handler {
		return func(request *http.Request) *http.Response {
			resp := next(request)
			code := status.OK
			if resp != nil {
				code = resp.Reveal().Code
			}

			logger.Printf("%s %s -> %d", request.Method, request.Path, code)

			return resp
		}
	}
}
