package bwt

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// A firstColEntry pairs a byte of the first column with the position its
// occurrence came from in the last column. The sorted slice of these entries
// is both the first column and the standard permutation used to walk rows.
type firstColEntry struct {
	char byte
	last int
}

// Inverse reconstructs the original sequence from a Burrows-Wheeler
// transformed sequence and the row index produced by Transform. The result
// always has the same length as transformed and still ends with the
// Sentinel.
//
// Inverse fails with ErrEmptyInput if transformed is zero-length, with
// ErrIndexOutOfRange if index is not a valid row for its length, and with
// ErrMalformedTransform if transformed cannot be the last column of any
// single sequence (its row permutation cycles back before covering every
// row).
func Inverse(transformed []byte, index int) ([]byte, error) {
	size := len(transformed)
	if size == 0 {
		return nil, ErrEmptyInput
	}
	if index < 0 || index >= size {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, rows %d", index, size)
	}

	firstCol := make([]firstColEntry, size)
	for idx, char := range transformed {
		firstCol[idx] = firstColEntry{char: char, last: idx}
	}

	// Sorting by byte value with the last-column position as tie-break keeps
	// equal bytes in occurrence order, which is exactly the last-to-first
	// correspondence of the sorted rotation table.
	slices.SortFunc(firstCol, func(a, b firstColEntry) int {
		if a.char != b.char {
			if a.char < b.char {
				return -1
			}

			return 1
		}

		if a.last < b.last {
			return -1
		}

		if a.last > b.last {
			return 1
		}

		return 0
	})

	original := make([]byte, size)
	visited := make([]bool, size)
	row := index
	for idx := 0; idx < size; idx++ {
		if visited[row] {
			return nil, errors.Wrapf(ErrMalformedTransform,
				"row %d revisited after %d of %d steps", row, idx, size)
		}
		visited[row] = true

		original[idx] = firstCol[row].char
		row = firstCol[row].last
	}

	return original, nil
}
