package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger. Logs go to w (stderr) so they
// never mix with command output.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "glyph",
		Level:  lvl,
	}), nil
}
