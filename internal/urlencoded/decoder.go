package urlencoded

import (
	"strings"

	"github.com/indigo-web/coyote/http/status"
)

// Decode decodes percent-encoded sequences and + as spaces. The source is returned as is
// if there's nothing to be decoded.
func Decode(src string) (string, error) {
	if strings.IndexByte(src, '%') == -1 && strings.IndexByte(src, '+') == -1 {
		return src, nil
	}

	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if len(src)-i < 3 {
				return "", status.ErrBadRequest
			}

			hi, lo := halfbyte(src[i+1]), halfbyte(src[i+2])
			if hi|lo > 0x0f {
				return "", status.ErrBadRequest
			}

			b.WriteByte(hi<<4 | lo)
			i += 2
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// DecodeOrKeep returns the decoded string, or the source if it's malformed.
func DecodeOrKeep(src string) string {
	decoded, err := Decode(src)
	if err != nil {
		return src
	}

	return decoded
}

func halfbyte(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0xff
	}
}
