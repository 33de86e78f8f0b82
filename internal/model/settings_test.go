package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_WithDefaultOutputs(t *testing.T) {
	tests := []struct {
		name       string
		settings   Settings
		wantSource Path
		wantHeader Path
	}{
		{
			name:       "derived from manifest",
			settings:   Settings{ConfigFile: "assets/res.conf"},
			wantSource: "assets/res.cpp",
			wantHeader: "assets/res.h",
		},
		{
			name:       "manifest without extension",
			settings:   Settings{ConfigFile: "resources"},
			wantSource: "resources.cpp",
			wantHeader: "resources.h",
		},
		{
			name:       "dot in directory only",
			settings:   Settings{ConfigFile: Path(filepath.Join("v1.2", "res"))},
			wantSource: Path(filepath.Join("v1.2", "res.cpp")),
			wantHeader: Path(filepath.Join("v1.2", "res.h")),
		},
		{
			name:       "header follows explicit source",
			settings:   Settings{ConfigFile: "res.conf", SourceFile: "gen/out.cc"},
			wantSource: "gen/out.cc",
			wantHeader: "gen/out.h",
		},
		{
			name:       "explicit header",
			settings:   Settings{ConfigFile: "res.conf", HeaderFile: "inc/res.hpp"},
			wantSource: "res.cpp",
			wantHeader: "inc/res.hpp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.settings.WithDefaultOutputs()

			assert.Equal(t, tt.wantSource, got.SourceFile)
			assert.Equal(t, tt.wantHeader, got.HeaderFile)
			assert.Equal(t, DefaultDataType, got.DataType)
		})
	}
}

func TestSettings_QualifiedResourceType(t *testing.T) {
	assert.Equal(t, "std::pair<const unsigned char*, size_t>", Settings{}.QualifiedResourceType())
	assert.Equal(t, "std::pair<const std::byte*, size_t>", Settings{DataType: "std::byte"}.QualifiedResourceType())
	assert.Equal(t, "Blob", Settings{DataType: "char", ResourceType: "Blob"}.QualifiedResourceType())
}

func TestEndianness(t *testing.T) {
	assert.Equal(t, "", EndianUnset.String())
	assert.Equal(t, "LE", EndianLittle.String())
	assert.Equal(t, "BE", EndianBig.String())

	assert.Equal(t, 1, EndianUnset.WordSize())
	assert.Equal(t, 8, EndianLittle.WordSize())
	assert.Equal(t, 8, EndianBig.WordSize())
}
