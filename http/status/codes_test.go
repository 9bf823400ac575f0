package status

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStringCode(t *testing.T) {
	for _, code := range KnownCodes {
		require.Equal(t, strconv.Itoa(int(code)), StringCode(code))
	}
}

func TestText(t *testing.T) {
	for _, code := range KnownCodes {
		require.NotEqual(t, Status("Unknown Status Code"), Text(code))
	}

	require.Equal(t, Status("Found"), Text(Found))
	require.Equal(t, Status("Unauthorized"), Text(Unauthorized))
	require.Equal(t, Status("Unknown Status Code"), Text(999))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, BadRequest, CodeOf(ErrMalformedRequestLine))
	require.Equal(t, NotFound, CodeOf(errors.Wrap(ErrNotFound, "reading /x")))
	require.Equal(t, InternalServerError, CodeOf(errors.New("disk on fire")))
}
