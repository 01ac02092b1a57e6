// Package glyph holds build metadata for the glyph CLI.
package glyph

// Version is the glyph release version.
const Version = "0.2.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/cairo-glyph/glyph"
