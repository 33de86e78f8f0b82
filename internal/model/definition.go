package model

// Definition is the result of parsing one manifest line.
//
// A grouping header ("[ id = path ]") replaces the identifier and path
// prefixes of the entries that follow it, a resource entry names one file.
type Definition struct {
	ID       string
	Path     string
	IsHeader bool
}
