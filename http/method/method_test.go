package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethod(t *testing.T) {
	for _, method := range List {
		assert.Equal(t, method, Parse(method.String()))
	}

	assert.Equal(t, Unknown, Parse("get"))
	assert.Equal(t, Unknown, Parse("FETCH"))
	assert.Equal(t, Unknown, Parse(""))
	assert.Equal(t, "UNKNOWN", Method(200).String())
}
