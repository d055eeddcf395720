// Package bwt implements the Burrows-Wheeler Transform and its exact
// inverse over byte sequences.
//
// # Overview
//
// The BWT is a reversible permutation of a sequence's bytes that clusters
// repeated contexts together. It is not itself a compressor; it is the
// preprocessing stage that makes later stages (move-to-front, run-length,
// entropy coders) effective, and the backbone of suffix-array-based indexes.
//
// Conceptually the forward transform sorts all cyclic rotations of the input
// and emits the last byte of each sorted rotation plus the rank of the
// original sequence among them. This package never materializes that n×n
// table: rotations are integer offsets into one shared buffer, compared with
// circular indexing, and the inverse walks an explicit rank permutation
// instead of rebuilding columns.
//
// # Sentinel
//
// Reversibility needs a unique minimal marker. Transform appends Sentinel
// ('$') when the input lacks one, so the transformed sequence can be one
// byte longer than the input; Inverse returns the sequence with the Sentinel
// still in place. Inputs that already contain more than one Sentinel are
// rejected.
//
// # Usage
//
//	transformed, index, err := bwt.Transform([]byte("BANANA$"))
//	// transformed = "ANNB$AA", index = 4
//
//	original, err := bwt.Inverse(transformed, index)
//	// original = "BANANA$"
//
// Both operations are pure and allocate per call; concurrent calls on
// different inputs need no coordination.
package bwt
