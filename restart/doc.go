// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package restart decodes and encodes Serpent binary restart files.
//
// A restart file records, for each burnup point of a depletion calculation,
// one block per material: the divided parent material and each of its
// spatial sub-regions, with their isotopic compositions. Decoding groups the
// blocks into ordered burnup steps (see Assembler), producing a Snapshot that
// the caller owns outright: materials can be modified in place and the whole
// collection written back out in the original binary layout.
//
// Decoding and encoding are one synchronous pass over the stream. Separate
// calls share no state, so independent files may be processed concurrently
// without coordination.
package restart
