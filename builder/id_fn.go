// SPDX-License-Identifier: MIT
// Package: roadflow/builder
//
// id_fn.go: deterministic node ID schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a node ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10 ("0","1",…).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn renders idx like spreadsheet columns ("A",…,"Z","AA",…).
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 { // 26 letters
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
