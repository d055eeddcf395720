package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"bwtkit/bwt"

	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	transformed, index, err := bwt.Transform([]byte("BANANA$"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeFrame(&buf, transformed, index))
	require.Len(t, buf.Bytes(), frameHdrLen+len(transformed))

	gotTransformed, gotIndex, err := readFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, transformed, gotTransformed)
	require.Equal(t, index, gotIndex)
}

func TestReadFrameErrors(t *testing.T) {
	testCases := map[string][]byte{
		"empty":             nil,
		"short header":      []byte("BWT1\x00\x00"),
		"bad magic":         []byte("NOPE\x00\x00\x00\x00\x00\x00\x00\x07ANNB$AA"),
		"truncated payload": []byte("BWT1\x00\x00\x00\x04\x00\x00\x00\x07ANN"),
		"huge declared length": append(
			[]byte("BWT1\x00\x00\x00\x00\xff\xff\xff\xff"), "ANNB$AA"...),
	}

	for name, frame := range testCases {
		t.Run(name, func(t *testing.T) {
			_, _, err := readFrame(bytes.NewReader(frame))
			require.ErrorIs(t, err, errBadFrame)
		})
	}
}

func TestOutputNames(t *testing.T) {
	require.Equal(t, "notes.bwt", encodedName("notes.txt"))
	require.Equal(t, "notes.bwt", encodedName("notes"))
	require.Equal(t, "notes.bwt.bwt", encodedName("notes.bwt"))
	require.Equal(t, "notes.out", decodedName("notes.bwt"))
	require.Equal(t, "archive.out", decodedName("archive"))
}

func TestEncodeDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	input := []byte("my favourite food is bananas")
	require.NoError(t, os.WriteFile(inputPath, input, 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"encode", inputPath})
	root.SetOut(new(bytes.Buffer))
	require.NoError(t, root.Execute())

	encodedPath := filepath.Join(dir, "input.bwt")
	_, err := os.Stat(encodedPath)
	require.NoError(t, err)

	root = newRootCmd()
	root.SetArgs([]string{"decode", "--strip-sentinel", encodedPath})
	root.SetOut(new(bytes.Buffer))
	require.NoError(t, root.Execute())

	decoded, err := os.ReadFile(filepath.Join(dir, "input.out"))
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}
