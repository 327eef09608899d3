package static

import (
	"embed"
	"io/fs"
)

//go:embed files
var files embed.FS

// FS returns the site assets rooted at the files directory.
func FS() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		panic(err)
	}
	return sub
}
