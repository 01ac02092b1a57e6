package types

import "regexp"

// Library is a directory of Cairo sources installed under a namespace.
type Library struct {
	// Name is the short name, e.g. "mylib".
	Name string `json:"name"`
	// Namespace is the dotted namespace the library was found under.
	Namespace string `json:"namespace"`
	// Path is the absolute directory holding the library sources.
	Path string `json:"path"`
	// Origin is the search root or registry file that provided the library.
	Origin string `json:"origin"`
}

// QualifiedName returns "<namespace>.<name>".
func (l Library) QualifiedName() string {
	if l.Namespace == "" {
		return l.Name
	}
	return l.Namespace + "." + l.Name
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name can name a library: an ASCII identifier.
func ValidName(name string) bool {
	return identRe.MatchString(name)
}
