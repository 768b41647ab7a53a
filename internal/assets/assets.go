// Package assets embeds the stylesheet and the client bootstrap script.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var files embed.FS

// Static returns the embedded files rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static is embedded above; Sub only fails on an invalid name.
		panic(err)
	}
	return sub
}

// Names of the embedded files.
const (
	Stylesheet = "site.css"
	Boot       = "boot.js"
)
