// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"io"
	"os"

	"github.com/yvrob/serpentwrk/material"
	"github.com/yvrob/serpentwrk/wire"

	"github.com/pkg/errors"
)

// Decode reads the restart file at path with a zero Config.
func Decode(path, prefix string) (*Snapshot, error) {
	var cfg Config
	return cfg.Decode(path, prefix)
}

// Decode reads the restart file at path.
//
// prefix names the divided parent material: every block in the file must
// carry either that exact name or one of the form "{prefix}z{id}".
//
// Decode fails fast. On any error it discards whatever was decoded so far
// and returns only the error, which identifies the offending block by index
// and byte offset; the underlying file is closed on every path.
func (cfg *Config) Decode(path, prefix string) (*Snapshot, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening restart file")
	}
	defer func() {
		_ = fd.Close()
	}()

	snap, err := cfg.DecodeStream(fd, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", path)
	}
	return snap, nil
}

// DecodeStream reads one restart stream from r until end of stream.
//
// DecodeStream does not close r. See Decode for the prefix contract and the
// partial-failure behavior.
func (cfg *Config) DecodeStream(r io.Reader, prefix string) (*Snapshot, error) {
	base, err := newCompressedReader(r, cfg.Compression)
	if err != nil {
		return nil, err
	}

	wr := wire.NewReader(base)
	br := material.BlockReader{Prefix: prefix}

	var asm Assembler
	for i := 0; ; i++ {
		m := &material.Material{}
		switch err := br.ReadBlock(wr, m); err {
		case nil:
			asm.Observe(m)
			decodedMaterials.Inc()

		case io.EOF:
			// Clean end of stream at a block boundary.
			snap := asm.Snapshot()
			decodedSteps.Add(float64(snap.Len()))
			cfg.logger().Debugf("decoded %d materials in %d steps", i, snap.Len())
			return snap, nil

		default:
			decodeErrors.Inc()
			return nil, errors.Wrapf(err, "material block %d", i)
		}
	}
}
