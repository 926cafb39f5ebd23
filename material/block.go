// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package material

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yvrob/serpentwrk/wire"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

var (
	// ErrHeaderTruncated is returned when a block's length prefix is cut
	// short: the stream ended after one to seven of its eight bytes.
	ErrHeaderTruncated = errors.New("material block header truncated")

	// ErrRecordTruncated is returned when the stream ends partway through a
	// block's name, body or nuclide pairs.
	ErrRecordTruncated = errors.New("material block truncated")

	// ErrNameEncoding is returned when a block's name is not valid UTF-8.
	ErrNameEncoding = errors.New("material name is not valid UTF-8")

	// ErrMaterialID is returned when a material name neither equals the
	// parent prefix nor carries a "{prefix}z{id}" sub-region id.
	ErrMaterialID = errors.New("material name has no sub-region id")
)

// body is the fixed-width portion of a restart block, between the name and
// the nuclide pairs.
type body struct {
	BurnupGlobal  float64 `struc:",little"`
	BurnupDays    float64 `struc:",little"`
	NuclideCount  int64   `struc:",little"`
	AtomicDensity float64 `struc:",little"`
	MassDensity   float64 `struc:",little"`
	LocalBurnup   float64 `struc:",little"`
}

// BlockReader decodes material blocks from a stream.
type BlockReader struct {
	// Prefix is the name of the divided parent material. A block whose name
	// equals Prefix is the parent; any other name must be of the form
	// "{Prefix}z{id}".
	Prefix string
}

// ReadBlock decodes the next material block from r into m.
//
// At a clean end of stream, with no bytes remaining at the block boundary,
// ReadBlock returns io.EOF; this is the normal termination signal, not a
// failure. Any actual failure wraps one of this package's sentinel errors
// (or the underlying I/O error) and identifies the block's offset in the
// stream; use errors.Cause to classify it.
func (br *BlockReader) ReadBlock(r *wire.Reader, m *Material) error {
	start := r.Offset()

	// Name length prefix. A clean EOF here means there are no more blocks;
	// a partial read means the stream was cut mid-header.
	n, err := r.ReadInt64()
	switch errors.Cause(err) {
	case nil:
	case io.EOF:
		return io.EOF
	case wire.ErrTruncated:
		return errors.Wrapf(ErrHeaderTruncated, "block at offset %d", start)
	default:
		return errors.Wrapf(err, "reading name length at offset %d", start)
	}
	if n < 0 {
		return errors.Errorf("negative name length %d in block at offset %d", n, start)
	}

	nameBytes, err := r.ReadBytes(n)
	if err != nil {
		return wrapTruncated(err, "name", start)
	}
	if !utf8.Valid(nameBytes) {
		return errors.Wrapf(ErrNameEncoding, "block at offset %d", start)
	}
	m.Name = string(nameBytes)

	m.Parent, m.ID, err = parseRole(m.Name, br.Prefix)
	if err != nil {
		return errors.Wrapf(err, "block at offset %d", start)
	}

	var b body
	if err := struc.Unpack(r, &b); err != nil {
		return wrapTruncated(err, "body", start)
	}
	if b.NuclideCount < 0 {
		return errors.Errorf("negative nuclide count %d in block at offset %d",
			b.NuclideCount, start)
	}
	m.BurnupGlobal = b.BurnupGlobal
	m.BurnupDays = b.BurnupDays
	m.AtomicDensity = b.AtomicDensity
	m.MassDensity = b.MassDensity
	m.LocalBurnup = b.LocalBurnup

	// Read the (ZAI, density) pairs. A ZAI that repeats within one block
	// keeps its first position and takes the later density.
	m.Nuclides = Nuclides{}
	for i := int64(0); i < b.NuclideCount; i++ {
		zai, err := r.ReadInt64()
		if err != nil {
			return wrapTruncated(err, "nuclides", start)
		}
		density, err := r.ReadFloat64()
		if err != nil {
			return wrapTruncated(err, "nuclides", start)
		}
		m.Nuclides.Set(ZAI(zai), density)
	}
	return nil
}

// EncodeTo writes the material as one restart block: length-prefixed name,
// fixed-width body, then each (ZAI, density) pair in the mapping's insertion
// order. No padding and no terminator.
//
// The block's nuclide count is recomputed from the Nuclides mapping, so a
// material whose nuclides were modified after decode encodes with a
// consistent count. EncodeTo only fails on I/O errors from w.
func (m *Material) EncodeTo(w *wire.Writer) error {
	if err := w.WriteInt64(int64(len(m.Name))); err != nil {
		return errors.Wrap(err, "writing name length")
	}
	if err := w.WriteBytes([]byte(m.Name)); err != nil {
		return errors.Wrap(err, "writing name")
	}

	b := body{
		BurnupGlobal:  m.BurnupGlobal,
		BurnupDays:    m.BurnupDays,
		NuclideCount:  int64(m.Nuclides.Len()),
		AtomicDensity: m.AtomicDensity,
		MassDensity:   m.MassDensity,
		LocalBurnup:   m.LocalBurnup,
	}
	if err := struc.Pack(w, &b); err != nil {
		return errors.Wrap(err, "writing body")
	}

	for _, zai := range m.Nuclides.ZAIs() {
		density, _ := m.Nuclides.Get(zai)
		if err := w.WriteInt64(int64(zai)); err != nil {
			return errors.Wrapf(err, "writing nuclide %d", zai)
		}
		if err := w.WriteFloat64(density); err != nil {
			return errors.Wrapf(err, "writing nuclide %d", zai)
		}
	}
	return nil
}

// parseRole classifies a material name as the parent or a sub-region.
//
// The name is matched against the literal separator prefix+"z"; the text
// after the separator must be the sub-region's integer id.
func parseRole(name, prefix string) (parent bool, id int64, err error) {
	if name == prefix {
		return true, 0, nil
	}

	sep := prefix + "z"
	_, suffix, ok := strings.Cut(name, sep)
	if !ok {
		return false, 0, errors.Wrapf(ErrMaterialID,
			"name %q does not contain %q", name, sep)
	}

	id, perr := strconv.ParseInt(suffix, 10, 64)
	if perr != nil {
		return false, 0, errors.Wrapf(ErrMaterialID,
			"name %q: suffix %q is not an integer", name, suffix)
	}
	return false, id, nil
}

// wrapTruncated maps end-of-stream conditions inside a block to
// ErrRecordTruncated. A block that has begun must be read completely; end of
// stream is only legal before a block's first byte.
func wrapTruncated(err error, section string, start int64) error {
	switch errors.Cause(err) {
	case io.EOF, io.ErrUnexpectedEOF, wire.ErrTruncated:
		return errors.Wrapf(ErrRecordTruncated, "%s of block at offset %d", section, start)
	default:
		return errors.Wrapf(err, "reading %s of block at offset %d", section, start)
	}
}
