package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listEntry is one library in list output.
type listEntry struct {
	Name          string `json:"name"`
	QualifiedName string `json:"qualified_name"`
	Path          string `json:"path"`
	Origin        string `json:"origin"`
	Installed     bool   `json:"installed"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discovered cairo libraries",
		Long:  "List every library found under the contracts namespace and whether the project has a copy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.discover()
			if err != nil {
				return err
			}
			installed, err := a.installer().Installed()
			if err != nil {
				return systemError{err}
			}
			have := make(map[string]bool, len(installed))
			for _, n := range installed {
				have[n] = true
			}

			libs := cat.All()
			entries := make([]listEntry, 0, len(libs))
			for _, lib := range libs {
				entries = append(entries, listEntry{
					Name:          lib.Name,
					QualifiedName: lib.QualifiedName(),
					Path:          lib.Path,
					Origin:        lib.Origin,
					Installed:     have[lib.Name],
				})
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				return writeJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No libraries found under namespace "+cat.Namespace()+"."))
				return nil
			}
			for _, e := range entries {
				line := bullet() + nameStyle.Render(e.QualifiedName) + "  " + mutedStyle.Render(e.Path)
				if e.Installed {
					line += "  " + successStyle.Render("(in project)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
