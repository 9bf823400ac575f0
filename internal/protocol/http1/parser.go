package http1

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/indigo-web/coyote/config"
	"github.com/indigo-web/coyote/http"
	"github.com/indigo-web/coyote/http/method"
	"github.com/indigo-web/coyote/http/proto"
	"github.com/indigo-web/coyote/http/status"
	"github.com/indigo-web/coyote/internal/urlencoded"
	"github.com/indigo-web/coyote/kv"
	"github.com/indigo-web/coyote/session"
)

// Parser reads exactly one request from a buffered connection. It is synchronous: every
// call blocks until the request line, the headers and the declared body are read.
type Parser struct {
	cfg      *config.Config
	sessions *session.Store
}

func NewParser(cfg *config.Config, sessions *session.Store) *Parser {
	return &Parser{
		cfg:      cfg,
		sessions: sessions,
	}
}

// Parse reads and assembles a request. io.EOF is returned as is if the connection was
// closed before a single byte of the request line arrived.
func (p *Parser) Parse(r *bufio.Reader) (*http.Request, error) {
	line, err := readLine(r, p.cfg.URI.RequestLineSize.Maximal, status.ErrURITooLong)
	if err != nil {
		return nil, err
	}

	requestLine, err := ParseRequestLine(line)
	if err != nil {
		return nil, err
	}

	headers, err := p.readHeaders(r)
	if err != nil {
		return nil, err
	}

	body, err := p.readBody(r, headers)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(requestLine, headers, body, p.sessions, p.cfg.Session.CookieName), nil
}

// ParseRequestLine splits the request line into method, path, query parameters and
// protocol. The line must not contain the trailing line break.
func ParseRequestLine(line string) (http.RequestLine, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return http.RequestLine{}, status.ErrMalformedRequestLine
	}

	m := method.Parse(fields[0])
	if m == method.Unknown {
		return http.RequestLine{}, status.ErrMalformedRequestLine
	}

	protocol := proto.FromString(fields[2])
	if protocol == proto.Unknown {
		return http.RequestLine{}, status.ErrHTTPVersionNotSupported
	}

	path, query, _ := strings.Cut(fields[1], "?")
	if len(path) == 0 {
		return http.RequestLine{}, status.ErrMalformedRequestLine
	}

	params := kv.NewCaseSensitive()
	urlencoded.Parse(query, true, func(key, value string) {
		params.Set(key, value)
	})

	return http.RequestLine{
		Method:   m,
		Path:     path,
		Params:   params,
		Protocol: protocol,
	}, nil
}

func (p *Parser) readHeaders(r *bufio.Reader) (http.Headers, error) {
	headers := kv.NewPrealloc(p.cfg.Headers.Number.Default)
	space := p.cfg.Headers.Space.Maximal

	for {
		line, err := readLine(r, space, status.ErrHeaderFieldsTooLarge)
		switch err {
		case nil:
		case io.EOF:
			return nil, io.ErrUnexpectedEOF
		default:
			return nil, err
		}

		if len(line) == 0 {
			return headers, nil
		}

		space -= len(line)
		if headers.Len() >= p.cfg.Headers.Number.Maximal {
			return nil, status.ErrTooManyHeaders
		}

		key, value, found := strings.Cut(line, ":")
		if !found || len(key) == 0 {
			return nil, status.ErrMalformedHeader
		}

		headers.Set(key, strings.TrimLeft(value, " \t"))
	}
}

func (p *Parser) readBody(r io.Reader, headers http.Headers) (*http.Body, error) {
	rawLength, found := headers.Get("content-length")
	if !found {
		return http.EmptyBody, nil
	}

	length, err := strconv.Atoi(strings.TrimSpace(rawLength))
	if err != nil || length < 0 {
		return nil, status.ErrMalformedHeader
	}

	if length > p.cfg.Body.MaxSize {
		return nil, status.ErrBodyTooLarge
	}

	data := make([]byte, length)
	if _, err = io.ReadFull(r, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, status.ErrTruncatedBody
		}

		return nil, err
	}

	return http.NewBody(data, headers.Value("content-type")), nil
}

// readLine reads a line terminated by either CRLF or LF, returning it without the
// terminator. Lines longer than limit bytes (terminator excluded) result in tooLong.
func readLine(r *bufio.Reader, limit int, tooLong error) (string, error) {
	var line []byte

	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)

		switch err {
		case nil:
			line = trimEOL(line)
			if len(line) > limit {
				return "", tooLong
			}

			return string(line), nil
		case bufio.ErrBufferFull:
			// the CR of a CRLF split between two reads isn't a part of the content
			if len(bytes.TrimSuffix(line, []byte{'\r'})) > limit {
				return "", tooLong
			}
		case io.EOF:
			if len(line) == 0 {
				return "", io.EOF
			}

			return "", io.ErrUnexpectedEOF
		default:
			return "", err
		}
	}
}

func trimEOL(line []byte) []byte {
	line = line[:len(line)-1]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line
}
