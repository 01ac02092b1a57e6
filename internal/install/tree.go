package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// visitFunc is called for every entry walkTree keeps. rel is slash separated
// and relative to the walk root; info describes the symlink target when the
// entry is a symlink.
type visitFunc func(path, rel string, info os.FileInfo) error

// walkTree visits root's descendants depth-first in lexical order, skipping
// every entry whose name matches an exclude pattern at any depth. Excluded
// directories are not descended into. Symlinks are followed.
func walkTree(fs afero.Fs, root string, exclude []string, fn visitFunc) error {
	return walkDir(fs, root, "", exclude, fn)
}

func walkDir(fs afero.Fs, dir, rel string, exclude []string, fn visitFunc) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if excluded(name, exclude) {
			continue
		}

		path := filepath.Join(dir, name)
		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}

		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			if info, err = fs.Stat(path); err != nil {
				return err
			}
		}

		if err := fn(path, entryRel, info); err != nil {
			return err
		}
		if info.IsDir() {
			if err := walkDir(fs, path, entryRel, exclude, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// excluded reports whether name matches one of patterns.
func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// copyTree copies src to dst, which must not exist, skipping excluded
// entries at every level. File modes and modification times are kept.
// Directory modes are applied after their contents are written so read-only
// source directories still copy.
func copyTree(fs afero.Fs, src, dst string, exclude []string) error {
	srcInfo, err := fs.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%s: not a directory", src)
	}
	if err := fs.Mkdir(dst, 0o755); err != nil {
		return err
	}

	type dirMode struct {
		path string
		info os.FileInfo
	}
	dirs := []dirMode{{dst, srcInfo}}

	err = walkTree(fs, src, exclude, func(path, rel string, info os.FileInfo) error {
		target := filepath.Join(dst, filepath.FromSlash(rel))
		switch {
		case info.IsDir():
			if err := fs.Mkdir(target, 0o755); err != nil {
				return err
			}
			dirs = append(dirs, dirMode{target, info})
			return nil
		case info.Mode().IsRegular():
			return copyFile(fs, path, target, info)
		default:
			// Sockets, devices, and pipes have no place in a library.
			return nil
		}
	})
	if err != nil {
		return err
	}

	// Deepest first, so parents are still writable while children change.
	for i := len(dirs) - 1; i >= 0; i-- {
		d := dirs[i]
		if err := fs.Chmod(d.path, d.info.Mode().Perm()); err != nil {
			return err
		}
		if err := fs.Chtimes(d.path, d.info.ModTime(), d.info.ModTime()); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single regular file, keeping its mode and mtime.
func copyFile(fs afero.Fs, src, dst string, info os.FileInfo) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm()|0o200)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fs.Chtimes(dst, info.ModTime(), info.ModTime())
}
