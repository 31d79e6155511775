// Package store loads the export file and caches the parsed base record
// set behind an explicit reload boundary.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrDataSource wraps any failure to open, read, or decode the export.
// Callers degrade to an empty record set instead of failing the view.
var ErrDataSource = errors.New("data source unavailable")

// Source yields the raw export content.
type Source interface {
	Open(ctx context.Context) (io.Reader, error)
}

// FileSource reads the export from disk. The file is expected to be UTF-8;
// legacy exports saved as ISO-8859-1 are transparently re-decoded.
type FileSource struct {
	Path string
}

// Open reads and decodes the file. Any failure is reported as ErrDataSource.
func (s FileSource) Open(_ context.Context) (io.Reader, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	decoded, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
	}
	return bytes.NewReader(decoded), nil
}

func decode(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode latin-1: %w", err)
	}
	return decoded, nil
}
