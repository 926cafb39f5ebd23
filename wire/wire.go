// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package wire reads and writes the fixed-width primitives that make up a
// Serpent restart stream: signed 64-bit integers, IEEE-754 64-bit floats and
// raw byte runs.
//
// Serpent does not declare a byte order for its restart files; it emits
// whatever the host uses, which in practice is always little-endian. This
// package fixes little-endian as the on-disk contract (see ByteOrder) so that
// files decode identically on every architecture.
package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// ByteOrder is the byte order of every multi-byte value in a restart stream.
var ByteOrder = binary.LittleEndian

// WordSize is the encoded size of both int64 and float64 values.
const WordSize = 8

// ErrTruncated is returned when a read obtains some, but not all, of the
// bytes it asked for.
//
// Reads that obtain no bytes at all return io.EOF instead, which lets callers
// distinguish a clean end of stream from a value cut short.
var ErrTruncated = errors.New("truncated read")

// Reader decodes fixed-width primitives from a stream.
//
// Reader tracks the number of bytes it has consumed so that decode failures
// can identify the offending position in the stream.
//
// Reader is not safe for concurrent use.
type Reader struct {
	r   io.Reader
	off int64

	word [WordSize]byte
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Offset returns the number of bytes consumed from the underlying stream.
func (r *Reader) Offset() int64 { return r.off }

// Read implements io.Reader, counting the bytes it consumes.
func (r *Reader) Read(p []byte) (int, error) {
	amt, err := r.r.Read(p)
	r.off += int64(amt)
	return amt, err
}

// ReadBytes reads exactly n bytes.
//
// If the stream is already exhausted, ReadBytes returns io.EOF. If the stream
// ends partway through, ReadBytes fails with ErrTruncated.
func (r *Reader) ReadBytes(n int64) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadInt64 reads one signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	if err := r.readFull(r.word[:]); err != nil {
		return 0, err
	}
	return int64(ByteOrder.Uint64(r.word[:])), nil
}

// ReadFloat64 reads one IEEE-754 64-bit float.
func (r *Reader) ReadFloat64() (float64, error) {
	if err := r.readFull(r.word[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(ByteOrder.Uint64(r.word[:])), nil
}

func (r *Reader) readFull(buf []byte) error {
	start := r.off
	amt, err := io.ReadFull(r.r, buf)
	r.off += int64(amt)

	switch err {
	case nil:
		return nil
	case io.EOF:
		// No bytes were available; a clean end of stream.
		return io.EOF
	case io.ErrUnexpectedEOF:
		return errors.Wrapf(ErrTruncated,
			"wanted %d bytes at offset %d, got %d", len(buf), start, amt)
	default:
		return err
	}
}

// Writer encodes fixed-width primitives to a stream.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w   io.Writer
	off int64

	word [WordSize]byte
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Offset returns the number of bytes written to the underlying stream.
func (w *Writer) Offset() int64 { return w.off }

// Write implements io.Writer, counting the bytes it emits.
func (w *Writer) Write(p []byte) (int, error) {
	amt, err := w.w.Write(p)
	w.off += int64(amt)
	return amt, err
}

// WriteBytes writes p verbatim.
func (w *Writer) WriteBytes(p []byte) error {
	_, err := w.Write(p)
	return err
}

// WriteInt64 writes one signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) error {
	ByteOrder.PutUint64(w.word[:], uint64(v))
	return w.WriteBytes(w.word[:])
}

// WriteFloat64 writes one IEEE-754 64-bit float.
func (w *Writer) WriteFloat64(v float64) error {
	ByteOrder.PutUint64(w.word[:], math.Float64bits(v))
	return w.WriteBytes(w.word[:])
}
