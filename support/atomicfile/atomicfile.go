// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package atomicfile stages file writes so that a destination path only ever
// holds a complete file.
//
// A staged file accumulates writes in a temporary location. On Commit it is
// atomically renamed to its destination; on Destroy it is deleted along with
// everything it accumulated.
package atomicfile

import (
	"os"

	"github.com/pkg/errors"
)

// F is a file being staged.
//
// F implements io.Writer; writes land in the temporary file until Commit
// moves it into place.
type F struct {
	fd   *os.File
	path string
}

// New creates a staged file in tempDir, named after prefix.
//
// For the final rename to be atomic, tempDir should be on the same
// filesystem as the eventual destination.
func New(tempDir, prefix string) (*F, error) {
	fd, err := os.CreateTemp(tempDir, prefix+".staged.*")
	if err != nil {
		return nil, errors.Wrap(err, "creating staged file")
	}
	return &F{fd: fd, path: fd.Name()}, nil
}

// Write implements io.Writer.
func (f *F) Write(p []byte) (int, error) { return f.fd.Write(p) }

// Path returns the staged file's current, temporary path.
func (f *F) Path() string { return f.path }

// Commit finalizes the staged file, atomically moving it to dest.
//
// Any existing file at dest is replaced.
func (f *F) Commit(dest string) error {
	if f.fd == nil {
		return errors.New("invalid staged file")
	}

	if err := f.fd.Close(); err != nil {
		return err
	}
	f.fd = nil

	if err := os.Rename(f.path, dest); err != nil {
		return errors.Wrapf(err, "moving staged file into place (%q => %q)", f.path, dest)
	}
	f.path = "" // Committed.
	return nil
}

// Destroy discards the staged file and its contents.
//
// Calling Destroy after a successful Commit is a no-op.
func (f *F) Destroy() error {
	if f.path == "" {
		// There is nothing to destroy.
		return nil
	}

	if f.fd != nil {
		_ = f.fd.Close()
		f.fd = nil
	}
	if err := os.Remove(f.path); err != nil {
		return err
	}

	f.path = "" // Destroyed.
	return nil
}
