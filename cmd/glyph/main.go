// Command glyph copies installed Cairo contract libraries into a project.
package main

import (
	"os"

	"github.com/cairo-glyph/glyph/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
