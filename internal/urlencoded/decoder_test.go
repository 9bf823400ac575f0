package urlencoded

import (
	"testing"

	"github.com/indigo-web/coyote/kv"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("nothing to decode", func(t *testing.T) {
		decoded, err := Decode("hello")
		require.NoError(t, err)
		require.Equal(t, "hello", decoded)
	})

	t.Run("percent and plus", func(t *testing.T) {
		decoded, err := Decode("a%20b+c%2Fd%3f")
		require.NoError(t, err)
		require.Equal(t, "a b c/d?", decoded)
	})

	t.Run("incomplete sequence", func(t *testing.T) {
		_, err := Decode("abc%2")
		require.Error(t, err)
		require.Equal(t, "abc%2", DecodeOrKeep("abc%2"))
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := Decode("%zz")
		require.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	collect := func(data string, flags bool) []kv.Pair {
		s := kv.New()
		Parse(data, flags, func(key, value string) {
			s.Add(key, value)
		})

		return s.Expose()
	}

	t.Run("pairs", func(t *testing.T) {
		require.Equal(t,
			[]kv.Pair{{"account", "gugu"}, {"password", "pass+word"}},
			collect("account=gugu&password=pass+word", false),
		)
	})

	t.Run("skip malformed", func(t *testing.T) {
		require.Equal(t,
			[]kv.Pair{{"a", "1"}, {"b", ""}},
			collect("a=1&broken&=empty&&b=", false),
		)
	})

	t.Run("flags", func(t *testing.T) {
		require.Equal(t,
			[]kv.Pair{{"debug", ""}, {"a", "1"}},
			collect("debug&a=1", true),
		)
	})

	t.Run("value with equal sign", func(t *testing.T) {
		require.Equal(t, []kv.Pair{{"k", "a=b"}}, collect("k=a=b", false))
	})
}
