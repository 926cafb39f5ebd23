// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"io"
	"path/filepath"

	"github.com/yvrob/serpentwrk/support/atomicfile"
	"github.com/yvrob/serpentwrk/wire"

	"github.com/pkg/errors"
)

// Encode writes snap to path with a zero Config.
func Encode(path string, snap *Snapshot) error {
	var cfg Config
	return cfg.Encode(path, snap)
}

// Encode writes snap to path as one restart file.
//
// The file is staged in a temporary location and renamed into place once it
// has been written completely, so a failed Encode never leaves a partial
// file at path.
func (cfg *Config) Encode(path string, snap *Snapshot) error {
	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = filepath.Dir(path)
	}

	staged, err := atomicfile.New(tempDir, filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "staging restart file")
	}
	defer func() {
		// Cleans up on failure; a no-op once the file is committed.
		_ = staged.Destroy()
	}()

	if err := cfg.EncodeStream(staged, snap); err != nil {
		return errors.Wrapf(err, "encoding %q", path)
	}
	if err := staged.Commit(path); err != nil {
		return errors.Wrap(err, "committing restart file")
	}
	return nil
}

// EncodeStream writes snap to w as one restart stream: every step in
// ascending index order, each step's materials in insertion order, blocks
// back to back with no separators.
//
// EncodeStream does not close w. It offers no partial-write guarantees
// beyond those of w itself; callers that need atomicity should use Encode.
func (cfg *Config) EncodeStream(w io.Writer, snap *Snapshot) error {
	cw, err := newCompressedWriter(w, cfg.Compression, cfg.CompressionLevel)
	if err != nil {
		return err
	}

	ww := wire.NewWriter(cw)
	count := 0
	for _, step := range snap.Steps() {
		for _, m := range step.Materials() {
			if err := m.EncodeTo(ww); err != nil {
				return errors.Wrapf(err, "material %q in step %d", m.Name, step.Index)
			}
			count++
		}
	}
	if err := cw.finish(); err != nil {
		return errors.Wrap(err, "flushing stream")
	}

	encodedMaterials.Add(float64(count))
	encodedBytes.Add(float64(ww.Offset()))
	cfg.logger().Debugf("encoded %d materials (%d bytes)", count, ww.Offset())
	return nil
}
