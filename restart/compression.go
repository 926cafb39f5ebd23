// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"fmt"
)

// Compression selects the transparent compression applied to a restart
// stream.
//
// CompressionNone produces the raw Serpent layout. The compressed settings
// are for archival copies of large restart files; Serpent cannot read them.
type Compression int

const (
	// CompressionNone reads and writes the raw byte stream.
	CompressionNone Compression = iota
	// CompressionSnappy applies snappy framing to the stream.
	CompressionSnappy
	// CompressionGzip applies gzip to the stream.
	CompressionGzip
)

var compressionNames = map[Compression]string{
	CompressionNone:   "none",
	CompressionSnappy: "snappy",
	CompressionGzip:   "gzip",
}

func (c Compression) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}
