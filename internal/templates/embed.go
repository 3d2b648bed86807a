// Package templates bundles the project template trees and locates them by name.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:basic all:advanced
var bundled embed.FS

// MarkerSuffix marks a file as a template to render; the suffix is stripped from the output name.
const MarkerSuffix = ".hbs"

// Bundled returns the filesystem holding every bundled template tree at its top level.
func Bundled() fs.FS {
	return bundled
}
