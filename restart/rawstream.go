// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"bufio"
	"compress/gzip"
	"io"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// Buffer size for raw stream access. Restart files are modest in size, so a
// quarter megabyte is plenty.
const rawStreamBufferSize = 1024 * 256

// newCompressedReader wraps base according to comp, buffering the underlying
// reads.
func newCompressedReader(base io.Reader, comp Compression) (io.Reader, error) {
	br := bufio.NewReaderSize(base, rawStreamBufferSize)

	switch comp {
	case CompressionNone:
		return br, nil

	case CompressionSnappy:
		return snappy.NewReader(br), nil

	case CompressionGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "creating gzip reader")
		}
		return gz, nil

	default:
		return nil, errors.Errorf("unknown compression: %s", comp)
	}
}

// compressedWriter pairs a wrapped writer with the flush and close steps
// needed to finalize its layers.
type compressedWriter struct {
	io.Writer

	bw      *bufio.Writer
	snappyW *snappy.Writer
	gzipW   *gzip.Writer
}

func newCompressedWriter(base io.Writer, comp Compression, level int) (*compressedWriter, error) {
	w := compressedWriter{bw: bufio.NewWriterSize(base, rawStreamBufferSize)}

	switch comp {
	case CompressionNone:
		w.Writer = w.bw

	case CompressionSnappy:
		w.snappyW = snappy.NewBufferedWriter(w.bw)
		w.Writer = w.snappyW

	case CompressionGzip:
		if level <= 0 {
			level = gzip.DefaultCompression
		}
		gw, err := gzip.NewWriterLevel(w.bw, level)
		if err != nil {
			return nil, errors.Wrap(err, "creating gzip writer")
		}
		w.gzipW = gw
		w.Writer = gw

	default:
		return nil, errors.Errorf("unknown compression: %s", comp)
	}
	return &w, nil
}

// finish flushes every layer in order. It does not close the base writer,
// which remains owned by the caller.
func (w *compressedWriter) finish() error {
	if w.snappyW != nil {
		if err := w.snappyW.Close(); err != nil {
			return err
		}
	}
	if w.gzipW != nil {
		if err := w.gzipW.Close(); err != nil {
			return err
		}
	}
	return w.bw.Flush()
}
