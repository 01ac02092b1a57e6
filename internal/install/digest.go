package install

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// treeDigest hashes the names, kinds, and file contents below root, skipping
// excluded entries. Modes and timestamps do not contribute, so a copy and its
// source agree exactly when they hold the same files with the same bytes.
func treeDigest(fs afero.Fs, root string, exclude []string) (uint64, error) {
	h := xxhash.New()
	err := walkTree(fs, root, exclude, func(path, rel string, info os.FileInfo) error {
		switch {
		case info.IsDir():
			_, _ = h.WriteString("d\x00" + rel + "\x00")
		case info.Mode().IsRegular():
			_, _ = h.WriteString("f\x00" + rel + "\x00")
			f, err := fs.Open(path)
			if err != nil {
				return err
			}
			_, err = io.Copy(h, f)
			f.Close()
			if err != nil {
				return err
			}
			_, _ = h.WriteString("\x00")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
