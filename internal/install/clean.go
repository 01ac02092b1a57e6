package install

import (
	"fmt"

	"github.com/spf13/afero"
)

// Clean removes the whole libs directory, every copy and any leftover staging
// directory with it. A missing directory is not an error. It reports whether
// anything was removed.
func (in *Installer) Clean() (bool, error) {
	dir := in.LibsDir()
	existed, err := afero.Exists(in.fs, dir)
	if err != nil {
		return false, err
	}
	if err := in.fs.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("remove %s: %w", dir, err)
	}
	in.logger.Debug("cleaned libs directory", "path", dir, "existed", existed)
	return existed, nil
}
