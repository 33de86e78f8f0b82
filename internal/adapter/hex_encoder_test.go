package adapter

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

func encodeHex(t *testing.T, data []byte, wordSize int, littleEndian bool) (string, int64) {
	t.Helper()

	var b strings.Builder

	size, err := EncodeHex(&b, bytes.NewReader(data), wordSize, littleEndian)
	require.NoError(t, err)

	return b.String(), size
}

func TestEncodeHex(t *testing.T) {
	tests := []struct {
		name         string
		data         []byte
		wordSize     int
		littleEndian bool
		want         string
	}{
		{name: "empty", data: nil, wordSize: 1, want: ""},
		{name: "bytes", data: []byte("abc"), wordSize: 1, want: "0x61,0x62,0x63"},
		{name: "upper case digits", data: []byte{0xAB, 0x0F}, wordSize: 1, want: "0xAB,0x0F"},
		{name: "little endian pads", data: []byte("abc"), wordSize: 8, littleEndian: true, want: "0x0000000000636261"},
		{name: "big endian pads", data: []byte("abc"), wordSize: 8, want: "0x6162630000000000"},
		{
			name:         "little endian full words",
			data:         []byte{1, 2, 3, 4, 5, 6, 7, 8, 9},
			wordSize:     8,
			littleEndian: true,
			want:         "0x0807060504030201,0x0000000000000009",
		},
		{name: "two byte words", data: []byte{1, 2, 3}, wordSize: 2, want: "0x0102,0x0300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, size := encodeHex(t, tt.data, tt.wordSize, tt.littleEndian)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(len(tt.data)), size)
		})
	}
}

func TestEncodeHex_LineBreaks(t *testing.T) {
	t.Run("twenty bytes per line", func(t *testing.T) {
		got, _ := encodeHex(t, bytes.Repeat([]byte{0x11}, 41), 1, true)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, strings.Repeat("0x11,", 20), lines[0])
		assert.Equal(t, "0x11", lines[2])

		for _, line := range lines {
			assert.LessOrEqual(t, len(line), 100)
		}
	})

	t.Run("five words per line", func(t *testing.T) {
		got, _ := encodeHex(t, bytes.Repeat([]byte{0x22}, 8*6), 8, false)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, 5, strings.Count(lines[0], "0x"))
		assert.Equal(t, "0x2222222222222222", lines[1])
	})
}

func TestEncodeHex_InvalidWordSize(t *testing.T) {
	var b strings.Builder

	_, err := EncodeHex(&b, bytes.NewReader([]byte("x")), 0, true)
	assert.Error(t, err)

	_, err = EncodeHex(&b, bytes.NewReader([]byte("x")), 9, true)
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestEncodeHex_ReadError(t *testing.T) {
	var b strings.Builder

	_, err := EncodeHex(&b, failingReader{}, 1, true)
	assert.EqualError(t, err, "device gone")
}

func TestLocalHexEncoder_Encode(t *testing.T) {
	encoder := NewLocalHexEncoder()
	root := t.TempDir()

	t.Run("reads the file", func(t *testing.T) {
		path := writeTestFile(t, filepath.Join(root, "r.txt"), "hi")

		payload, err := encoder.Encode(path, 1, true)
		require.NoError(t, err)
		assert.Equal(t, m.Payload{Text: "0x68,0x69", Size: 2}, payload)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := encoder.Encode(m.Path(filepath.Join(root, "missing.txt")), 1, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading file '")
		assert.Contains(t, err.Error(), "missing.txt' failed")
	})
}
