package cookie

import (
	"strings"

	"github.com/indigo-web/coyote/kv"
)

// Jar is a key-value storage for cookies received from a user-agent. Names are
// case-sensitive and unique: if a name repeats, the last value wins.
type Jar = *kv.Storage

func NewJar() Jar {
	return kv.NewCaseSensitive()
}

// Parse parses the Cookie header value into the jar. Pairs are delimited by "; " and split
// at the first '='. Pairs without '=' or with an empty name are skipped, so the function
// never fails. It isn't applicable for Set-Cookie values
func Parse(jar Jar, data string) Jar {
	for len(data) > 0 {
		var pair string

		if cs := strings.IndexByte(data, ';'); cs != -1 {
			pair, data = data[:cs], stripSpace(data[cs+1:])
		} else {
			pair, data = data, ""
		}

		eq := strings.IndexByte(pair, '=')
		if eq <= 0 {
			continue
		}

		// empty value is fine
		jar.Set(pair[:eq], pair[eq+1:])
	}

	return jar
}

func stripSpace(str string) string {
	if len(str) > 0 && str[0] == ' ' {
		return str[1:]
	}

	return str
}
