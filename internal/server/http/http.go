package http

import (
	"bufio"
	"io"
	"log"
	"net"

	"github.com/indigo-web/coyote/config"
	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/proto"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/internal/protocol/http1"
	"github.com/indigo-web/coyote/kv"
	"github.com/indigo-web/coyote/router"
	"github.com/indigo-web/coyote/session"
	"github.com/pkg/errors"
)

// Server processes exactly one request per connection: read, parse, dispatch, write,
// close. Nothing here ever times out, so a client that never completes its request
// holds the connection's goroutine until the connection is closed externally.
type Server struct {
	cfg      *config.Config
	router   router.Router
	parser   *http1.Parser
	sessions *session.Store
	logger   *log.Logger
}

func NewServer(
	cfg *config.Config, r router.Router, sessions *session.Store, logger *log.Logger,
) *Server {
	return &Server{
		cfg:      cfg,
		router:   r,
		parser:   http1.NewParser(cfg, sessions),
		sessions: sessions,
		logger:   logger,
	}
}

// Serve handles the connection and closes it.
func (s *Server) Serve(conn net.Conn) {
	if err := s.HandleRequest(conn); err != nil {
		s.logger.Printf("%s: %s", conn.RemoteAddr(), err)
	}

	_ = conn.Close()
}

// HandleRequest reads a single request from rw and writes the response back. If the
// request couldn't be parsed, the router's error response is written and the parsing
// error is returned. A connection closed before sending anything is not an error.
func (s *Server) HandleRequest(rw io.ReadWriter) error {
	serializer := http1.NewSerializer(make([]byte, 0, s.cfg.NET.WriteBufferSize))
	reader := bufio.NewReaderSize(rw, s.cfg.NET.ReadBufferSize)

	request, err := s.parser.Parse(reader)
	switch err {
	case nil:
	case io.EOF:
		return nil
	default:
		if err == io.ErrUnexpectedEOF {
			err = errors.Wrap(status.ErrBadRequest, "connection closed mid-request")
		}

		stub := s.stub()
		resp := notNil(stub, s.router.OnError(stub, err))
		if writeErr := serializer.Write(proto.Unknown, resp, rw); writeErr != nil {
			return writeErr
		}

		return err
	}

	resp := notNil(request, s.router.OnRequest(request))

	return serializer.Write(request.Protocol, resp, rw)
}

// stub is a request holding no parsed parts, passed to the error handler when parsing
// has failed.
func (s *Server) stub() *http.Request {
	line := http.RequestLine{Params: kv.NewCaseSensitive(), Protocol: proto.HTTP11}
	return http.NewRequest(line, kv.New(), nil, s.sessions, s.cfg.Session.CookieName)
}

func notNil(req *http.Request, resp *http.Response) *http.Response {
	if resp != nil {
		return resp
	}

	return http.Respond(req)
}
