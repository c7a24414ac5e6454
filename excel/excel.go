// Package excel converts between spreadsheet column titles and 1-based
// column numbers. The encoding is bijective base 26: A..Z then AA, AB and
// so on, with no zero digit.
package excel

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle is returned by ColumnNumber for an empty title.
var ErrEmptyTitle = errors.New("excel: empty column title")

// ColumnTitle returns the column title for a 1-based column number:
// 1 -> A, 26 -> Z, 27 -> AA. Non-positive numbers yield the empty string.
func ColumnTitle(n int) string {
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// ColumnNumber returns the 1-based column number for a title:
// A -> 1, Z -> 26, AA -> 27. Only uppercase ASCII letters are accepted.
func ColumnNumber(title string) (int, error) {
	if title == "" {
		return 0, ErrEmptyTitle
	}
	n := 0
	for _, r := range title {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("excel: invalid character %q in column title", r)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n, nil
}
