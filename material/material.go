// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package material models one block of a Serpent binary restart file: a
// single depletion zone, with its isotopic composition, at one burnup point.
//
// A restart file is a back-to-back concatenation of such blocks with no
// header, footer or separators; end of file is the only terminator. Each
// block is a length-prefixed UTF-8 name followed by a fixed-width body and a
// run of (ZAI, density) pairs. See BlockReader for decoding and
// Material.EncodeTo for encoding.
package material

import (
	"bytes"
	"fmt"
)

// Material is one decoded restart block.
type Material struct {
	// Name is the material name, unique within a burnup step. The parent
	// material carries the divided material's prefix verbatim; a sub-region
	// is named "{prefix}z{id}".
	Name string

	// Parent is true if this block describes the undivided parent material.
	Parent bool

	// ID is the sub-region id parsed from the name. It is only meaningful
	// when Parent is false.
	ID int64

	// BurnupGlobal is the burnup coordinate of the block, in MWd/kg. Blocks
	// sharing a BurnupGlobal value belong to the same burnup step.
	BurnupGlobal float64

	// BurnupDays is the burnup point expressed in days.
	BurnupDays float64

	// AtomicDensity is the material's atomic density, in at/b.cm.
	AtomicDensity float64

	// MassDensity is the material's mass density, in g/cm^3.
	MassDensity float64

	// LocalBurnup is the material's own burnup, in MWd/kg.
	LocalBurnup float64

	// Nuclides maps each nuclide in the material to its atomic density.
	//
	// The block's nuclide count is not stored anywhere else: encoding always
	// derives it from this mapping, so modifying the mapping cannot leave a
	// stale count behind.
	Nuclides Nuclides
}

// String renders the material in a human-readable form.
func (m *Material) String() string {
	var sb bytes.Buffer
	fmt.Fprintf(&sb, "Material %s\n", m.Name)
	if m.Parent {
		fmt.Fprintf(&sb, " - Role: parent\n")
	} else {
		fmt.Fprintf(&sb, " - Role: sub-region %d\n", m.ID)
	}
	fmt.Fprintf(&sb, " - BU point: %.3f MWd/kg (%.3f days)\n", m.BurnupGlobal, m.BurnupDays)
	fmt.Fprintf(&sb, " - Density: %.3E at/b.cm (%.3E g/cm^3)\n", m.AtomicDensity, m.MassDensity)
	fmt.Fprintf(&sb, " - Local BU: %.3f MWd/kg\n", m.LocalBurnup)
	fmt.Fprintf(&sb, " - Nuclides:\n")
	for _, zai := range m.Nuclides.ZAIs() {
		d, _ := m.Nuclides.Get(zai)
		fmt.Fprintf(&sb, "    %6d: %.3E at/b.cm\n", zai, d)
	}
	return sb.String()
}
