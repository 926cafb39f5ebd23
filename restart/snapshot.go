// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package restart

import (
	"github.com/yvrob/serpentwrk/material"
)

// Step is one burnup step: every material that shares one burnup coordinate.
//
// Materials are keyed by name. Adding a material under a name that is already
// present replaces the previous material but keeps its position; iteration
// helpers return materials in insertion order, which keeps re-encoding
// deterministic.
type Step struct {
	// Index is the step's zero-based position in the snapshot collection.
	Index int

	// Burnup is the burnup coordinate, in MWd/kg, shared by every material in
	// the step.
	Burnup float64

	names  []string
	byName map[string]*material.Material
}

func newStep(index int, burnup float64) *Step {
	return &Step{
		Index:  index,
		Burnup: burnup,
		byName: make(map[string]*material.Material),
	}
}

// Add inserts m under its name, replacing any previous material with the
// same name.
func (s *Step) Add(m *material.Material) {
	if _, ok := s.byName[m.Name]; !ok {
		s.names = append(s.names, m.Name)
	}
	s.byName[m.Name] = m
}

// Get returns the material with the given name.
func (s *Step) Get(name string) (*material.Material, bool) {
	m, ok := s.byName[name]
	return m, ok
}

// Len returns the number of materials in the step.
func (s *Step) Len() int { return len(s.names) }

// Names returns the material names in insertion order.
//
// The returned slice is a copy and may be retained by the caller.
func (s *Step) Names() []string { return append([]string(nil), s.names...) }

// Materials returns the step's materials in insertion order.
func (s *Step) Materials() []*material.Material {
	mats := make([]*material.Material, len(s.names))
	for i, name := range s.names {
		mats[i] = s.byName[name]
	}
	return mats
}

// Snapshot is the ordered collection of burnup steps decoded from one
// restart stream.
//
// The caller owns a decoded Snapshot exclusively: its materials may be
// modified in place before the collection is encoded or discarded.
type Snapshot struct {
	steps []*Step
}

// Len returns the number of steps in the collection.
func (s *Snapshot) Len() int { return len(s.steps) }

// Steps returns the steps in ascending index order.
//
// The returned slice is a copy; the steps it points at are shared.
func (s *Snapshot) Steps() []*Step { return append([]*Step(nil), s.steps...) }

// Step returns the step with the given index.
func (s *Snapshot) Step(index int) (*Step, bool) {
	if index < 0 || index >= len(s.steps) {
		return nil, false
	}
	return s.steps[index], true
}

// Assembler groups a sequence of decoded materials into burnup steps.
//
// A new step opens at the first material observed and at every material
// whose burnup differs from the one before it. Grouping is therefore a
// function of record order, not of burnup values alone: two non-adjacent
// runs with equal burnups form two distinct steps, and callers must present
// materials in on-disk order.
//
// The zero value is ready for use.
type Assembler struct {
	snap Snapshot

	lastBurnup float64
	inStep     bool
}

// Observe adds m to the current step, opening a new step first if m's burnup
// differs from the previous material's.
func (a *Assembler) Observe(m *material.Material) {
	if !a.inStep || m.BurnupGlobal != a.lastBurnup {
		a.snap.steps = append(a.snap.steps, newStep(len(a.snap.steps), m.BurnupGlobal))
		a.lastBurnup = m.BurnupGlobal
		a.inStep = true
	}
	a.snap.steps[len(a.snap.steps)-1].Add(m)
}

// Snapshot returns the assembled snapshot collection.
func (a *Assembler) Snapshot() *Snapshot { return &a.snap }
