// Package install copies discovered libraries into a project and removes
// project copies again.
//
// A copy lives at <project>/<libs dir>/<name>. It is written to a hidden
// staging directory next to its destination and renamed into place, so a
// failed copy never leaves a partial <name> directory behind. An existing
// copy is never modified; the skip policy only decides how it is reported.
package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/cairo-glyph/glyph/pkg/types"
)

// stagingPrefix marks in-progress copies inside the libs directory.
const stagingPrefix = ".glyph-"

// Installer copies libraries into one project.
type Installer struct {
	fs         afero.Fs
	logger     *log.Logger
	projectDir string
	libsDir    string // relative to projectDir, slash separated
	exclude    []string
	policy     types.SkipPolicy
}

// New returns an Installer for projectDir using the libs dir, exclude
// patterns, and skip policy of cfg. A nil logger discards output.
func New(fs afero.Fs, projectDir string, cfg types.Config, logger *log.Logger) *Installer {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Installer{
		fs:         fs,
		logger:     logger,
		projectDir: projectDir,
		libsDir:    filepath.ToSlash(filepath.Clean(filepath.FromSlash(cfg.LibsDir))),
		exclude:    cfg.ExcludePatterns(),
		policy:     cfg.SkipPolicy,
	}
}

// LibsDir returns the absolute directory copies are written to.
func (in *Installer) LibsDir() string {
	return filepath.Join(in.projectDir, filepath.FromSlash(in.libsDir))
}

// Dest returns the absolute destination of lib's copy.
func (in *Installer) Dest(lib types.Library) string {
	return filepath.Join(in.LibsDir(), lib.Name)
}

// EnsureLayout creates each directory of the libs path below the project
// root, one level at a time. Directories that already exist are left alone;
// a non-directory in the way is an error.
func (in *Installer) EnsureLayout() error {
	dir := in.projectDir
	for _, part := range strings.Split(in.libsDir, "/") {
		dir = filepath.Join(dir, part)
		err := in.fs.Mkdir(dir, 0o755)
		switch {
		case err == nil:
			in.logger.Debug("created directory", "path", dir)
		case errors.Is(err, os.ErrExist):
			info, statErr := in.fs.Stat(dir)
			if statErr != nil {
				return statErr
			}
			if !info.IsDir() {
				return fmt.Errorf("%s: %w", dir, types.ErrNotDirectory)
			}
		default:
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// Install copies lib into the project unless a copy already exists, in which
// case the skip policy decides the reported status.
func (in *Installer) Install(lib types.Library) (types.InstallResult, error) {
	result := types.InstallResult{Library: lib, Dest: in.Dest(lib)}

	if err := in.EnsureLayout(); err != nil {
		return result, err
	}

	exists, err := afero.Exists(in.fs, result.Dest)
	if err != nil {
		return result, err
	}
	if exists {
		result.Status, err = in.existingStatus(lib, result.Dest)
		return result, err
	}

	staging := filepath.Join(in.LibsDir(), stagingPrefix+uuid.NewString())
	if err := copyTree(in.fs, lib.Path, staging, in.exclude); err != nil {
		in.discard(staging)
		return result, fmt.Errorf("copy %s: %w", lib.QualifiedName(), err)
	}

	if err := in.fs.Rename(staging, result.Dest); err != nil {
		in.discard(staging)
		// A concurrent install may have created the destination first.
		if ok, _ := afero.DirExists(in.fs, result.Dest); ok {
			in.logger.Warn("destination appeared during copy", "library", lib.QualifiedName(), "dest", result.Dest)
			result.Status = types.StatusSkipped
			return result, nil
		}
		return result, fmt.Errorf("move %s into place: %w", lib.QualifiedName(), err)
	}

	in.logger.Debug("installed library", "library", lib.QualifiedName(), "src", lib.Path, "dest", result.Dest)
	result.Status = types.StatusInstalled
	return result, nil
}

// Reporter receives progress from InstallAll.
type Reporter interface {
	Starting(lib types.Library)
	Finished(res types.InstallResult)
}

// InstallAll installs libs in order and stops at the first failure.
// Libraries installed before the failure stay in place. rep may be nil.
func (in *Installer) InstallAll(libs []types.Library, rep Reporter) ([]types.InstallResult, error) {
	results := make([]types.InstallResult, 0, len(libs))
	for _, lib := range libs {
		if rep != nil {
			rep.Starting(lib)
		}
		res, err := in.Install(lib)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if rep != nil {
			rep.Finished(res)
		}
	}
	return results, nil
}

// Installed returns the names of the copies present in the project, sorted.
// Staging directories are not reported.
func (in *Installer) Installed() ([]string, error) {
	entries, err := afero.ReadDir(in.fs, in.LibsDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (in *Installer) existingStatus(lib types.Library, dest string) (types.Status, error) {
	if in.policy != types.SkipVerify {
		in.logger.Debug("copy exists, skipping", "library", lib.QualifiedName(), "dest", dest)
		return types.StatusSkipped, nil
	}

	srcSum, err := treeDigest(in.fs, lib.Path, in.exclude)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", lib.Path, err)
	}
	dstSum, err := treeDigest(in.fs, dest, in.exclude)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", dest, err)
	}
	in.logger.Debug("verified existing copy", "library", lib.QualifiedName(), "src", fmt.Sprintf("%016x", srcSum), "dest", fmt.Sprintf("%016x", dstSum))
	if srcSum == dstSum {
		return types.StatusUpToDate, nil
	}
	return types.StatusStale, nil
}

func (in *Installer) discard(staging string) {
	if err := in.fs.RemoveAll(staging); err != nil {
		in.logger.Warn("could not remove staging directory", "path", staging, "err", err)
	}
}
