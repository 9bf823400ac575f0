// Package resources holds the default page set served when no static root is given.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed pages
var pages embed.FS

// Pages returns the embedded pages rooted at the pages directory.
func Pages() fs.FS {
	sub, err := fs.Sub(pages, "pages")
	if err != nil {
		// the directory is embedded, so this can't happen
		panic(err)
	}

	return sub
}
