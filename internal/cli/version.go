package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cairo-glyph/glyph/pkg/glyph"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the glyph version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "glyph v%s\nmodule: %s\n", glyph.Version, glyph.ModulePath)
			return nil
		},
	}
}
