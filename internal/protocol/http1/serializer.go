package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/cookie"
	"github.com/indigo-web/coyote/http/mime"
	"github.com/indigo-web/coyote/http/proto"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/internal/response"
	"github.com/indigo-web/coyote/kv"
)

const crlf = "\r\n"

// Serializer renders responses into the wire format. The buffer is reused between calls,
// so a single Serializer must not be shared between connections.
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{buff: buff[:0]}
}

// Write renders the response and writes it at once. If the protocol is unknown (e.g. the
// request line couldn't be parsed), HTTP/1.1 is used.
func (s *Serializer) Write(protocol proto.Protocol, resp *http.Response, w io.Writer) error {
	_, err := w.Write(s.Render(protocol, resp))
	return err
}

// Render returns the wire representation of the response. The returned slice is valid
// until the next call.
func (s *Serializer) Render(protocol proto.Protocol, resp *http.Response) []byte {
	fields := resp.Reveal()
	s.buff = s.buff[:0]

	s.appendProtocol(protocol)
	s.appendStatus(fields)

	for _, header := range fields.Headers {
		s.appendHeader(header)
	}

	if len(fields.ContentType) > 0 {
		s.appendKnownHeader("Content-Type: ", mime.WithCharset(fields.ContentType))
	}

	s.appendContentLength(len(fields.Body))

	for _, c := range fields.Cookies {
		s.appendCookie(c)
	}

	s.crlf()
	s.buff = append(s.buff, fields.Body...)

	return s.buff
}

func (s *Serializer) appendProtocol(protocol proto.Protocol) {
	if protocol == proto.Unknown {
		protocol = proto.HTTP11
	}

	s.buff = append(s.buff, protocol.String()...)
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) appendStatus(fields *response.Fields) {
	s.buff = strconv.AppendUint(s.buff, uint64(fields.Code), 10)
	s.buff = append(s.buff, ' ')
	s.buff = append(s.buff, status.Text(fields.Code)...)
	s.crlf()
}

// appendHeader writes a complete header field line including the trailing CRLF.
func (s *Serializer) appendHeader(header kv.Pair) {
	s.buff = append(s.buff, header.Key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

// appendKnownHeader differs from appendHeader only by the fact that the key is known to already
// contain the colon and the space.
func (s *Serializer) appendKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) appendContentLength(length int) {
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendInt(s.buff, int64(length), 10)
	s.crlf()
}

func (s *Serializer) appendCookie(c cookie.Cookie) {
	s.appendKnownHeader("Set-Cookie: ", c.String())
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}
