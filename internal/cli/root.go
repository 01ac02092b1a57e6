// Package cli implements the glyph command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cairo-glyph/glyph/internal/discovery"
	"github.com/cairo-glyph/glyph/internal/install"
	"github.com/cairo-glyph/glyph/internal/paths"
	"github.com/cairo-glyph/glyph/pkg/glyph"
	"github.com/cairo-glyph/glyph/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	projectDir  string
	configDir   string
	searchPaths []string
	registry    string
	logLevel    string
	jsonMode    bool
}

// app is the state shared by subcommands once the root command has resolved
// the project, configuration, and logger.
type app struct {
	flags rootFlags
	fs    afero.Fs

	projectDir  string
	configDir   string
	cfg         types.Config
	searchPaths []string
	logger      *log.Logger
}

// NewRootCmd creates the top-level "glyph" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{fs: afero.NewOsFs()}

	root := &cobra.Command{
		Use:     "glyph",
		Short:   "A proof-of-concept package manager for Cairo",
		Long:    "glyph copies Cairo contract libraries installed under the contracts\nnamespace into the project's contracts/libs directory.",
		Version: glyph.Version,
		// Errors are printed by run so the exit code and message stay in one place.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.projectDir, "project-dir", "C", "", "project root (default: $GLYPH_PROJECT_DIR or the working directory)")
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: <project>/.glyph)")
	pf.StringSliceVar(&a.flags.searchPaths, "search-path", nil, "directory containing the contracts namespace; repeatable (default: $GLYPH_PATH or the active virtualenv)")
	pf.StringVar(&a.flags.registry, "registry", "", "registry file mapping library names to directories, relative to the project")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newUseCmd(a))
	root.AddCommand(newCleanCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(NewRootCmd())
}

// run executes root, prints any error to its stderr, and maps it to an exit code.
func run(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	if !errors.Is(err, types.ErrDeclined) {
		printError(root.ErrOrStderr(), err)
	}
	return exitCode(err)
}

// exitCode maps err to the user or system exit code.
func exitCode(err error) int {
	var se systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves directories and configuration for the running command.
func (a *app) setup(cmd *cobra.Command) error {
	projectDir, err := paths.ResolveProjectDir(a.flags.projectDir)
	if err != nil {
		return err
	}
	configDir, err := paths.ResolveConfigDir(a.flags.configDir, projectDir)
	if err != nil {
		return systemError{err}
	}

	v, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return systemError{err}
	}
	cfg := configFromViper(v, projectDir)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(cfgKeyLogLevel))
	if err != nil {
		return err
	}

	searchPaths, err := paths.ResolveSearchPaths(a.flags.searchPaths, cfg.SearchPaths, projectDir)
	if err != nil {
		return systemError{err}
	}

	a.projectDir = projectDir
	a.configDir = configDir
	a.cfg = cfg
	a.searchPaths = searchPaths
	a.logger = logger

	logger.Debug("resolved project", "project", projectDir, "config", configDir, "search_paths", searchPaths, "registry", cfg.Registry)
	return nil
}

// discover runs discovery with the resolved configuration.
func (a *app) discover() (*discovery.Catalog, error) {
	cat, err := discovery.New(a.fs, a.logger).Discover(discovery.Options{
		Namespace:   a.cfg.Namespace,
		SearchPaths: a.searchPaths,
		Registry:    a.cfg.Registry,
		Exclude:     a.cfg.ExcludePatterns(),
	})
	if err != nil {
		return nil, systemError{err}
	}
	return cat, nil
}

// installer returns an Installer for the resolved project.
func (a *app) installer() *install.Installer {
	return install.New(a.fs, a.projectDir, a.cfg, a.logger)
}

// usageError marks command-line misuse.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// systemError marks failures of the environment rather than of the user's
// request, such as filesystem errors.
type systemError struct{ err error }

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error:"), err)
}
