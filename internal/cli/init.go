package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default glyph configuration for the project",
		Long:  "Create <project>/.glyph/config.yaml with default values. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := writeConfigIfMissing(a.configDir)
			if err != nil {
				return systemError{fmt.Errorf("write config: %w", err)}
			}
			out := cmd.OutOrStdout()
			if created {
				fmt.Fprintln(out, successStyle.Render("Wrote "+path))
			} else {
				fmt.Fprintln(out, mutedStyle.Render("Config already exists at "+path))
			}
			return nil
		},
	}
}
