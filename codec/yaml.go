// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphlab/core"
)

// FormatYAML names the YAML codec.
const FormatYAML = "yaml"

// YAMLCodec reads and writes the same document shape as JSONCodec in YAML.
// Unlike JSON it round-trips ±Inf (.inf).
type YAMLCodec struct{}

// NewYAMLCodec returns a YAMLCodec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns FormatYAML.
func (c *YAMLCodec) Format() string { return FormatYAML }

// Decode parses the first YAML document in r.
func (c *YAMLCodec) Decode(r io.Reader) (core.Snapshot, error) {
	var d document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return core.Snapshot{}, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}

	return d.snapshot()
}

// Encode writes s as one YAML document with two-space indentation.
func (c *YAMLCodec) Encode(w io.Writer, s core.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromSnapshot(s)); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: yaml: %w", ErrEncode, err)
	}

	return nil
}
