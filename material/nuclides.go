// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package material

// ZAI identifies a nuclide by atomic number, mass number and isomeric state
// packed into a single integer, e.g. 922350 for U-235.
type ZAI int64

// Nuclides is an insertion-ordered mapping from ZAI to atomic density.
//
// Iteration follows the order in which nuclides were first set. A material
// re-encodes its nuclides in that order, which keeps encode output
// deterministic and, for unmodified materials, byte-identical to the stream
// they were decoded from.
//
// The zero value is an empty mapping, ready for use.
type Nuclides struct {
	order   []ZAI
	density map[ZAI]float64
}

// Len returns the number of nuclides in the mapping.
func (n *Nuclides) Len() int { return len(n.order) }

// Set stores the atomic density for zai.
//
// Setting a ZAI that is already present overwrites its density and keeps its
// original position.
func (n *Nuclides) Set(zai ZAI, density float64) {
	if n.density == nil {
		n.density = make(map[ZAI]float64)
	}
	if _, ok := n.density[zai]; !ok {
		n.order = append(n.order, zai)
	}
	n.density[zai] = density
}

// Get returns the atomic density for zai.
func (n *Nuclides) Get(zai ZAI) (float64, bool) {
	d, ok := n.density[zai]
	return d, ok
}

// ZAIs returns the nuclide identifiers in insertion order.
//
// The returned slice is a copy and may be retained by the caller.
func (n *Nuclides) ZAIs() []ZAI {
	return append([]ZAI(nil), n.order...)
}
