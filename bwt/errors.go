package bwt

import "github.com/cockroachdb/errors"

// Every failure of Transform or Inverse wraps one of these values; callers
// distinguish kinds with errors.Is. The operations are pure, so no failure
// is retryable without changing the input.
var (
	// ErrEmptyInput is returned when a zero-length sequence is passed to
	// either operation.
	ErrEmptyInput = errors.New("bwt: empty input")

	// ErrMultipleSentinels is returned by Transform when the caller-supplied
	// input already contains the Sentinel more than once, making the row of
	// the original sequence ambiguous.
	ErrMultipleSentinels = errors.New("bwt: multiple sentinels in input")

	// ErrIndexOutOfRange is returned by Inverse when index is not a valid
	// row for the given transformed length.
	ErrIndexOutOfRange = errors.New("bwt: row index out of range")

	// ErrMalformedTransform is returned by Inverse when the transformed
	// sequence is not a valid last column, detected as a row permutation
	// that cycles before visiting every row.
	ErrMalformedTransform = errors.New("bwt: malformed transform")
)
