// Package httptest parses raw responses as they come from the wire, so tests can assert
// on the status, headers and body separately.
package httptest

import (
	"slices"
	"strconv"
	"strings"

	"github.com/indigo-web/coyote/kv"
	"github.com/pkg/errors"
)

type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

// Parse parses a complete response. The body must be exactly as long as the
// Content-Length header states.
func Parse(raw string) (resp Response, err error) {
	var found bool
	resp.Headers = kv.New()

	resp.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return resp, errors.New("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	resp.Code, err = strconv.Atoi(code)
	if err != nil {
		return resp, errors.Wrap(err, "bad status code")
	}

	if !found || len(raw) == 0 {
		return resp, errors.New("bad status line: lacking status")
	}

	resp.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return resp, errors.New("bad response: only status line is presented")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if len(headerLine) == 0 {
			break
		}
		if !found {
			return resp, errors.Errorf("bad header line %s: no breaking CRLF", headerLine)
		}

		key, value, found := strings.Cut(headerLine, ": ")
		if !found {
			return resp, errors.Errorf("bad header %s: no value", headerLine)
		}

		resp.Headers.Add(key, value)
	}

	resp.Body, err = processBody(resp, raw)

	return resp, err
}

func processBody(resp Response, data string) (string, error) {
	contentLengths := slices.Collect(resp.Headers.Values("content-length"))
	switch len(contentLengths) {
	case 0:
		if len(data) == 0 {
			return "", nil
		}

		return "", errors.New("bad response: no Content-Length is presented")
	case 1:
		length, err := strconv.Atoi(contentLengths[0])
		if err != nil {
			return "", errors.Wrap(err, "bad Content-Length")
		}

		if len(data) != length {
			return "", errors.Errorf("body length mismatch: want %d, got %d", length, len(data))
		}

		return data, nil
	default:
		return "", errors.Errorf(
			"bad response: too many content-lengths: %s", strings.Join(contentLengths, ", "),
		)
	}
}
