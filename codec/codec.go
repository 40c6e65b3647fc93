// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: format registry and file helpers over core.Snapshot.

package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphlab/core"
)

var (
	// ErrUnknownFormat indicates a format name or file extension with no codec.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrDecode wraps any syntax or shape problem in the input document.
	ErrDecode = errors.New("codec: decode failed")

	// ErrEncode wraps a value the format cannot represent (e.g. ±Inf in JSON).
	ErrEncode = errors.New("codec: encode failed")
)

// Codec converts between a document format and core.Snapshot.
type Codec interface {
	Format() string
	Decode(r io.Reader) (core.Snapshot, error)
	Encode(w io.Writer, s core.Snapshot) error
}

// ByFormat returns the codec registered under name ("json", "yaml"/"yml").
func ByFormat(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatJSON:
		return NewJSONCodec(), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ByExtension picks a codec from the file extension of path.
func ByExtension(path string) (Codec, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ByFormat(ext)
}

// Decode reads a document with c and rebuilds it as a graph. Core invariant
// violations (duplicate nodes, dangling edges) surface as core errors.
func Decode(c Codec, r io.Reader) (*core.Graph, error) {
	s, err := c.Decode(r)
	if err != nil {
		return nil, err
	}

	return core.FromSnapshot(s)
}

// Encode writes g's snapshot with c.
func Encode(c Codec, w io.Writer, g *core.Graph) error {
	return c.Encode(w, g.Snapshot())
}

// ReadFile loads a graph from path, choosing the codec by extension.
func ReadFile(path string) (*core.Graph, error) {
	c, err := ByExtension(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(c, f)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	return g, nil
}

// WriteFile saves g to path, choosing the codec by extension. The file is
// written to a temporary sibling first and renamed, so a failed encode never
// truncates an existing file.
func WriteFile(path string, g *core.Graph) error {
	c, err := ByExtension(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(c, tmp, g); err != nil {
		tmp.Close()
		return fmt.Errorf("codec: %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("codec: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("codec: rename %s: %w", path, err)
	}

	return nil
}
