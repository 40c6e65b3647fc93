// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/graphlab/core"
)

// FormatJSON names the JSON codec.
const FormatJSON = "json"

// JSONCodec reads and writes the original editor's JSON save format.
type JSONCodec struct {
	// Indent is the per-level indent for Encode; "" writes compact JSON.
	Indent string
}

// NewJSONCodec returns a JSONCodec indenting with four spaces.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "    "}
}

// Format returns FormatJSON.
func (c *JSONCodec) Format() string { return FormatJSON }

// Decode parses one JSON document.
func (c *JSONCodec) Decode(r io.Reader) (core.Snapshot, error) {
	var d document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return core.Snapshot{}, fmt.Errorf("%w: json: %w", ErrDecode, err)
	}

	return d.snapshot()
}

// Encode writes s as one JSON document. Infinite weights or coordinates are
// not representable and fail with ErrEncode.
func (c *JSONCodec) Encode(w io.Writer, s core.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	if err := enc.Encode(fromSnapshot(s)); err != nil {
		return fmt.Errorf("%w: json: %w", ErrEncode, err)
	}

	return nil
}
