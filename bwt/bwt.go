package bwt

import (
	"bytes"
	"slices"

	"github.com/cockroachdb/errors"
)

// Sentinel is the end-of-sequence marker byte. It sorts below every byte
// value that may appear in real data and must occur at most once in a
// caller-supplied input; Transform appends it when absent.
const Sentinel = byte('$')

// A rotation is a cyclic shift of a shared buffer, identified by its start
// offset. No rotated copies are ever materialized.
type rotation struct {
	offset int
	data   []byte
}

// Transform computes the Burrows-Wheeler Transform of input. It returns the
// last column of the sorted rotation table and the row index of the input
// itself within that table.
//
// If input contains no Sentinel, one is appended first, so the returned
// slice may be one byte longer than input; its length is always the
// effective length used. Transform fails with ErrEmptyInput on a zero-length
// input and with ErrMultipleSentinels if input already contains the Sentinel
// more than once.
func Transform(input []byte) ([]byte, int, error) {
	if len(input) == 0 {
		return nil, 0, ErrEmptyInput
	}

	seq := input
	switch n := bytes.Count(input, []byte{Sentinel}); n {
	case 1:
	case 0:
		seq = make([]byte, len(input)+1)
		copy(seq, input)
		seq[len(input)] = Sentinel
	default:
		return nil, 0, errors.Wrapf(ErrMultipleSentinels, "%d occurrences", n)
	}

	size := len(seq)
	rotations := make([]rotation, size)
	for idx := range rotations {
		rotations[idx] = rotation{offset: idx, data: seq}
	}

	slices.SortFunc(rotations, compareRotations)

	// The unique Sentinel makes all rotations distinct, so the sorted order
	// does not depend on any tie-break and offset 0 has exactly one rank.
	transformed := make([]byte, size)
	primaryIdx := 0
	for idx, rot := range rotations {
		if rot.offset == 0 {
			primaryIdx = idx
		}

		lastCharIdx := (rot.offset + size - 1) % size
		transformed[idx] = rot.data[lastCharIdx]
	}

	return transformed, primaryIdx, nil
}

// compareRotations orders two rotations of the same buffer byte-by-byte with
// circular indexing. The walk always terminates within size steps; in
// practice it stops at the Sentinel, which the two rotations reach after a
// different number of steps.
func compareRotations(a, b rotation) int {
	size := len(a.data)
	for k := 0; k < size; k++ {
		ca := a.data[(a.offset+k)%size]
		cb := b.data[(b.offset+k)%size]

		if ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}
	}

	return 0
}
