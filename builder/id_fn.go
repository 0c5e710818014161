// SPDX-License-Identifier: MIT
// Package builder provides helper functions for vertex ID schemes.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be deterministic: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Indices outside the alphabet fall back to "A<idx>" so constructors never panic.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		return fmt.Sprintf("A%d", idx)
	}

	return string('A' + rune(idx))
}

// PrefixIDFn returns an IDFn producing prefix+decimal, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
