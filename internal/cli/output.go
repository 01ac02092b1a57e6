package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// Color palette for terminal output.
const (
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorHighlight = lipgloss.Color("#06B6D4")
	colorMuted     = lipgloss.Color("#6B7280")
)

var (
	bulletStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorHighlight)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

func bullet() string {
	return bulletStyle.Render(" • ")
}

// usePrinter reports install progress as text lines.
type usePrinter struct {
	w          io.Writer
	projectDir string
}

func (p usePrinter) Starting(lib types.Library) {
	fmt.Fprintln(p.w, bullet()+"Using "+nameStyle.Render(lib.QualifiedName()))
}

func (p usePrinter) Finished(res types.InstallResult) {
	dest := p.rel(res.Dest)
	switch res.Status {
	case types.StatusSkipped:
		fmt.Fprintln(p.w, mutedStyle.Render("   skipped: "+dest+" already exists"))
	case types.StatusUpToDate:
		fmt.Fprintln(p.w, mutedStyle.Render("   up to date: "+dest))
	case types.StatusStale:
		fmt.Fprintln(p.w, warningStyle.Render("   stale: "+dest+" differs from its source; run `glyph clean` to refresh"))
	}
}

// rel shows path relative to the project when possible.
func (p usePrinter) rel(path string) string {
	if r, err := filepath.Rel(p.projectDir, path); err == nil {
		return filepath.ToSlash(r)
	}
	return path
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
