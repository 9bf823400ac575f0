package urlencoded

import "strings"

type CB = func(key, value string)

// Parse splits data on '&', then each pair on the first '='. Keys and values are passed
// as is, without decoding. Pairs with an empty key are skipped. If
// flags is true, a pair without '=' is passed as a key with an empty value, otherwise it is
// skipped.
func Parse(data string, flags bool, cb CB) {
	for len(data) > 0 {
		var pair string

		if amp := strings.IndexByte(data, '&'); amp != -1 {
			pair, data = data[:amp], data[amp+1:]
		} else {
			pair, data = data, ""
		}

		key, value, found := strings.Cut(pair, "=")
		if len(key) == 0 || (!found && !flags) {
			continue
		}

		cb(key, value)
	}
}
