package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cairo-glyph/glyph/pkg/types"
)

func newCleanCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove everything in the lib directory",
		Long: `Delete <project>/contracts/libs and every library copy in it.

Asks for confirmation unless --force is given. Declining exits with status 1
and changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Are you sure you want to delete the lib folder?")
				if err != nil {
					return systemError{err}
				}
				if !ok {
					return types.ErrDeclined
				}
			}

			removed, err := a.installer().Clean()
			if err != nil {
				return systemError{err}
			}
			a.logger.Info("clean finished", "path", a.installer().LibsDir(), "removed", removed)

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Deleted."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "if set, no confirmation dialog")
	return cmd
}
