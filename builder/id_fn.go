// SPDX-License-Identifier: MIT
// Package: graphlab/builder
//
// id_fn.go - node ID schemes for index-based constructors.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based node index to a node ID. Implementations must be
// injective over the indices a constructor uses.
type IDFn func(idx int) string

// DefaultIDFn yields decimal IDs: "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn yields single capital letters "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn yields spreadsheet column names: "A".."Z", "AA", "AB", ...
// Panics on a negative index.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
	}

	return string(buf)
}

// PrefixIDFn yields prefix followed by the decimal index, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
