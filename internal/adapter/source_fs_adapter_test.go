package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

func writeTestFile(t *testing.T, path, content string) m.Path {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	root := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		path := writeTestFile(t, filepath.Join(root, "a.txt"), "hello")

		content, err := fs.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fs.ReadFile(m.Path(filepath.Join(root, "missing.txt")))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "reading file '")
	})
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "out", "nested", "res.cpp"))

	require.NoError(t, fs.WriteFile(path, []byte("content")))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.True(t, fs.Exists(path))
}

func TestLocalSourceFSAdapter_WriteFileFailure(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	root := t.TempDir()
	blocker := writeTestFile(t, filepath.Join(root, "file"), "x")

	err := fs.WriteFile(m.Path(filepath.Join(string(blocker), "res.h")), []byte("y"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing file '")
}

func TestLocalSourceFSAdapter_UpdateFile(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "res.h"))

	written, err := fs.UpdateFile(path, []byte("v1"))
	require.NoError(t, err)
	assert.True(t, written, "missing file must be written")

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(string(path), old, old))

	written, err = fs.UpdateFile(path, []byte("v1"))
	require.NoError(t, err)
	assert.False(t, written, "identical content must not be rewritten")

	modTime, ok := fs.ModTime(path)
	require.True(t, ok)
	assert.True(t, modTime.Equal(old), "modification time must be preserved")

	written, err = fs.UpdateFile(path, []byte("v2"))
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLocalSourceFSAdapter_ModTimeAndExists(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	root := t.TempDir()

	_, ok := fs.ModTime(m.Path(filepath.Join(root, "missing")))
	assert.False(t, ok)
	assert.False(t, fs.Exists(m.Path(filepath.Join(root, "missing"))))
	assert.True(t, fs.Exists(m.Path(root)))
}
