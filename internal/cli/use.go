package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cairo-glyph/glyph/internal/install"
	"github.com/cairo-glyph/glyph/pkg/types"
)

func newUseCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "use [library]",
		Short: "Install one or all discovered cairo libraries in the project",
		Long: `Copy installed contract libraries into <project>/contracts/libs.

Build artifacts (__init__.py, __pycache__) are left out at every level.
A library that is already present is skipped, never overwritten.

Examples:
  glyph use mylib
  glyph use contracts.mylib
  glyph use --all`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return a.runUse(cmd, name, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "add all installed contracts to the project")
	return cmd
}

func (a *app) runUse(cmd *cobra.Command, name string, all bool) error {
	// Reject a missing selection before touching anything.
	if !all && name == "" {
		return types.ErrNoSelection
	}
	if all && name != "" {
		a.logger.Warn("--all given, ignoring library argument", "library", name)
	}

	out := cmd.OutOrStdout()
	if !a.flags.jsonMode {
		fmt.Fprintln(out, "Discovering installed contracts...")
		fmt.Fprintln(out)
	}

	cat, err := a.discover()
	if err != nil {
		return err
	}
	libs, err := cat.Select(all, name)
	if err != nil {
		return err
	}
	if len(libs) == 0 {
		a.logger.Warn("no libraries discovered", "namespace", a.cfg.Namespace, "search_paths", a.searchPaths)
	}

	var rep install.Reporter
	if !a.flags.jsonMode {
		rep = usePrinter{w: out, projectDir: a.projectDir}
	}

	results, err := a.installer().InstallAll(libs, rep)
	if err != nil {
		return systemError{err}
	}

	if a.flags.jsonMode {
		return writeJSON(out, results)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, successStyle.Render("Done."))
	return nil
}
