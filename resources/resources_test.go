package resources

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPages(t *testing.T) {
	for _, name := range []string{"index.html", "login.html", "register.html", "401.html", "404.html", "css/styles.css"} {
		data, err := fs.ReadFile(Pages(), name)
		require.NoError(t, err, name)
		require.NotEmpty(t, data, name)
	}
}
