package domain

import (
	"strings"
)

const (
	// namespaceSeparator separates namespaces in the generated C++ code.
	namespaceSeparator = "::"
	// namespaceEscape replaces literal slashes in explicit identifiers so
	// they can not be mistaken for namespace separators.
	namespaceEscape = "$"
)

// NormalizePath converts backslash separators to forward slashes.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// NormalizeID converts a manifest identifier ("a::b") to its slash
// separated form ("a/b"). Literal slashes are escaped first.
func NormalizeID(id string) string {
	id = strings.ReplaceAll(id, "/", namespaceEscape)
	return strings.ReplaceAll(id, namespaceSeparator, "/")
}

// QualifyID converts a slash separated identifier back to C++ notation.
func QualifyID(id string) string {
	return strings.ReplaceAll(id, "/", namespaceSeparator)
}

// IsValidID reports whether id is a slash separated sequence of C++
// identifiers.
func IsValidID(id string) bool {
	if id == "" || strings.HasSuffix(id, "/") {
		return false
	}

	afterSlash := true

	for i := 0; i < len(id); i++ {
		c := id[i]
		if !isAlnum(c) && c != '_' && c != '/' {
			return false
		}

		// also rejects leading and repeated slashes
		if afterSlash && (isDigit(c) || c == '/') {
			return false
		}

		afterSlash = c == '/'
	}

	return true
}

// DeduceID derives an identifier from a path. Entries drop the file
// extension, headers keep it. The result is always a valid identifier
// unless path is empty.
func DeduceID(isHeader bool, path string) string {
	if !isHeader {
		path = removeExtension(path)
	}

	path = trimSpace(path)

	var b strings.Builder

	b.Grow(len(path) + 4)

	afterSlash := true

	for i := 0; i < len(path); i++ {
		c := path[i]
		if !isAlnum(c) && c != '/' {
			c = '_'
		}

		if afterSlash && isDigit(c) {
			b.WriteByte('_')
		}

		b.WriteByte(c)

		afterSlash = c == '/'
	}

	return b.String()
}

func removeExtension(filename string) string {
	dot := strings.LastIndexByte(filename, '.')
	if dot <= 0 {
		return filename
	}

	return filename[:dot]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r < 0x80 && isSpace(byte(r))
	})
}
