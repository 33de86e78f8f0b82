package model

import (
	"path/filepath"
	"strings"
)

// DefaultDataType is the element type the embedded bytes are exposed as.
const DefaultDataType = "unsigned char"

// Endianness selects how resource bytes are packed into array words.
type Endianness int

const (
	// EndianUnset emits one byte per array element.
	EndianUnset Endianness = iota
	// EndianLittle packs eight bytes per little endian 64 bit word.
	EndianLittle
	// EndianBig packs eight bytes per big endian 64 bit word.
	EndianBig
)

// String returns the marker written into the generated header.
func (e Endianness) String() string {
	switch e {
	case EndianLittle:
		return "LE"
	case EndianBig:
		return "BE"
	default:
		return ""
	}
}

// WordSize returns the number of bytes per emitted array element.
func (e Endianness) WordSize() int {
	if e == EndianUnset {
		return 1
	}

	return 8
}

// Settings control where the artifacts are written and how they look.
type Settings struct {
	ConfigFile    Path
	SourceFile    Path
	HeaderFile    Path
	DataType      string
	ResourceType  string
	ResourceAlias string
	Includes      []string
	Endianness    Endianness
}

// QualifiedResourceType returns the configured resource type, falling back
// to a pointer/size pair over the data type.
func (s Settings) QualifiedResourceType() string {
	if s.ResourceType != "" {
		return s.ResourceType
	}

	dataType := s.DataType
	if dataType == "" {
		dataType = DefaultDataType
	}

	return "std::pair<const " + dataType + "*, size_t>"
}

// WithDefaultOutputs fills in the source and header paths derived from the
// manifest path when they were not given.
func (s Settings) WithDefaultOutputs() Settings {
	if s.SourceFile == "" {
		s.SourceFile = Path(replaceExtension(string(s.ConfigFile), ".cpp"))
	}

	if s.HeaderFile == "" {
		s.HeaderFile = Path(replaceExtension(string(s.SourceFile), ".h"))
	}

	if s.DataType == "" {
		s.DataType = DefaultDataType
	}

	return s
}

func replaceExtension(path, ext string) string {
	base := filepath.Base(path)
	if dot := strings.LastIndex(base, "."); dot > 0 {
		return path[:len(path)-len(base)+dot] + ext
	}

	return path + ext
}
