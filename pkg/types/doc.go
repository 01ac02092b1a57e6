// Package types defines the library, configuration, and install result types
// shared by discovery, install, and the glyph command line, together with the
// sentinel errors those layers return.
package types
