package types

import "errors"

// Selection and install errors. The command line maps the first group to the
// user-error exit code.
var (
	ErrNoSelection     = errors.New("must provide a library name or use --all")
	ErrLibraryNotFound = errors.New("library not installed")
	ErrDeclined        = errors.New("confirmation declined")
	ErrInvalidName     = errors.New("invalid library name")
)

var (
	ErrNotDirectory  = errors.New("not a directory")
	ErrRegistryEntry = errors.New("invalid registry entry")
)
