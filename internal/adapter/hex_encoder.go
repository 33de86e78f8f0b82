package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

const (
	hexDigits    = "0123456789ABCDEF"
	maxLineWidth = 100
)

// HexEncoder turns the bytes of a file into C array initializer text.
type HexEncoder interface {
	Encode(path m.Path, wordSize int, littleEndian bool) (m.Payload, error)
}

// LocalHexEncoder reads resource files from the local disk.
type LocalHexEncoder struct{}

// NewLocalHexEncoder constructs a LocalHexEncoder.
func NewLocalHexEncoder() *LocalHexEncoder {
	return &LocalHexEncoder{}
}

// Encode reads the file at path and formats it as hex words of wordSize
// bytes. A trailing partial word is padded with zeros.
func (e *LocalHexEncoder) Encode(path m.Path, wordSize int, littleEndian bool) (m.Payload, error) {
	// #nosec G304 - resource paths are listed in the user's manifest
	file, err := os.Open(string(path))
	if err != nil {
		return m.Payload{}, fmt.Errorf("reading file '%s' failed: %w", filepath.ToSlash(string(path)), err)
	}

	defer func() { _ = file.Close() }()

	var b strings.Builder

	size, err := EncodeHex(&b, bufio.NewReader(file), wordSize, littleEndian)
	if err != nil {
		return m.Payload{}, fmt.Errorf("reading file '%s' failed: %w", filepath.ToSlash(string(path)), err)
	}

	return m.Payload{Text: b.String(), Size: size}, nil
}

// EncodeHex writes the words read from r to w and returns the number of
// bytes read.
func EncodeHex(w io.StringWriter, r io.Reader, wordSize int, littleEndian bool) (int64, error) {
	if wordSize < 1 || wordSize > 8 {
		return 0, fmt.Errorf("unsupported word size %d", wordSize)
	}

	perLine := maxLineWidth / (2*wordSize + 3)
	input := make([]byte, wordSize)
	word := make([]byte, 0, 2+2*wordSize)

	var total int64

	for i := 0; ; i++ {
		read, err := io.ReadFull(r, input)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return total, err
		}

		clear(input[read:])

		if read > 0 {
			if i > 0 {
				sep := ","
				if i%perLine == 0 {
					sep = ",\n"
				}

				if _, err := w.WriteString(sep); err != nil {
					return total, err
				}
			}

			word = append(word[:0], '0', 'x')

			for j := range wordSize {
				k := j
				if littleEndian {
					k = wordSize - j - 1
				}

				word = append(word, hexDigits[input[k]>>4], hexDigits[input[k]&0x0F])
			}

			if _, err := w.WriteString(string(word)); err != nil {
				return total, err
			}

			total += int64(read)
		}

		if read != wordSize {
			return total, nil
		}
	}
}
