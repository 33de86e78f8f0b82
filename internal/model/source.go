// Package model defines the data structures shared by the manifest compiler.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Payload is the array initializer text emitted for one resource file.
type Payload struct {
	Text string // comma separated hex words, wrapped across lines
	Size int64  // number of bytes read from the file
}
