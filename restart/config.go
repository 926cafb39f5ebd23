// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"github.com/yvrob/serpentwrk/support/logging"
)

// Config configures restart-file decoding and encoding.
//
// The zero value reads and writes raw, uncompressed Serpent streams.
type Config struct {
	// Compression is the stream compression to expect on decode and to apply
	// on encode. CompressionNone is the raw Serpent layout and the only
	// setting Serpent itself can read.
	Compression Compression

	// CompressionLevel is the level used with CompressionGzip. Values <= 0
	// select the gzip default.
	CompressionLevel int

	// TempDir is the directory used to stage files during Encode. If empty,
	// files are staged next to their destination.
	TempDir string

	// Logger, if not nil, receives debug output.
	Logger logging.L
}

func (cfg *Config) logger() logging.L { return logging.Must(cfg.Logger) }
