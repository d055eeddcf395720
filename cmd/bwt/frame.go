package main

import (
	"encoding/binary"
	"io"

	"github.com/cockroachdb/errors"
)

// Frame layout for a stored (transformed, index) pair: 4-byte magic,
// big-endian uint32 row index, big-endian uint32 payload length, then the
// transformed bytes. The core library defines no wire format of its own;
// this framing belongs to the driver.
const (
	frameMagic  = "BWT1"
	frameHdrLen = 12
)

var errBadFrame = errors.New("bwt: not a BWT1 frame")

func writeFrame(w io.Writer, transformed []byte, index int) error {
	var hdr [frameHdrLen]byte
	copy(hdr[:4], frameMagic)
	binary.BigEndian.PutUint32(hdr[4:8], uint32(index))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(len(transformed)))

	if _, err := w.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "writing frame header")
	}

	if _, err := w.Write(transformed); err != nil {
		return errors.Wrap(err, "writing frame payload")
	}

	return nil
}

func readFrame(r io.Reader) ([]byte, int, error) {
	var hdr [frameHdrLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, errors.Wrap(errBadFrame, "short header")
	}

	if string(hdr[:4]) != frameMagic {
		return nil, 0, errors.Wrapf(errBadFrame, "magic %q", hdr[:4])
	}

	index := int(binary.BigEndian.Uint32(hdr[4:8]))
	length := binary.BigEndian.Uint32(hdr[8:12])

	// The declared length is untrusted; read through a limited reader so a
	// corrupted header cannot force a multi-gigabyte allocation up front.
	transformed, err := io.ReadAll(io.LimitReader(r, int64(length)))
	if err != nil {
		return nil, 0, errors.Wrap(errBadFrame, "reading payload")
	}
	if uint32(len(transformed)) != length {
		return nil, 0, errors.Wrapf(errBadFrame, "payload %d bytes, header declares %d", len(transformed), length)
	}

	return transformed, index, nil
}
