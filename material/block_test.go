// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package material

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/yvrob/serpentwrk/wire"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func appendInt64(b []byte, v int64) []byte {
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(v))
	return append(b, word[:]...)
}

func appendFloat64(b []byte, v float64) []byte {
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], math.Float64bits(v))
	return append(b, word[:]...)
}

type nuclidePair struct {
	zai     int64
	density float64
}

// blockBytes builds one raw restart block. The nuclide count is the number
// of pairs as written, including any repeated ZAIs.
func blockBytes(name string, burnup, days, adens, mdens, local float64, pairs ...nuclidePair) []byte {
	b := appendInt64(nil, int64(len(name)))
	b = append(b, name...)
	b = appendFloat64(b, burnup)
	b = appendFloat64(b, days)
	b = appendInt64(b, int64(len(pairs)))
	b = appendFloat64(b, adens)
	b = appendFloat64(b, mdens)
	b = appendFloat64(b, local)
	for _, p := range pairs {
		b = appendInt64(b, p.zai)
		b = appendFloat64(b, p.density)
	}
	return b
}

func decodeOne(data []byte, prefix string) (*Material, error) {
	br := BlockReader{Prefix: prefix}
	var m Material
	if err := br.ReadBlock(wire.NewReader(bytes.NewReader(data)), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

var _ = Describe("BlockReader", func() {
	It("decodes a parent material block", func() {
		data := blockBytes("fuel20U", 10.5, 365.25, 0.07, 10.4, 9.8,
			nuclidePair{922350, 1e-3},
			nuclidePair{922380, 2e-2},
		)

		m, err := decodeOne(data, "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Name).To(Equal("fuel20U"))
		Expect(m.Parent).To(BeTrue())
		Expect(m.BurnupGlobal).To(Equal(10.5))
		Expect(m.BurnupDays).To(Equal(365.25))
		Expect(m.AtomicDensity).To(Equal(0.07))
		Expect(m.MassDensity).To(Equal(10.4))
		Expect(m.LocalBurnup).To(Equal(9.8))

		Expect(m.Nuclides.Len()).To(Equal(2))
		Expect(m.Nuclides.ZAIs()).To(Equal([]ZAI{922350, 922380}))
		d, ok := m.Nuclides.Get(922380)
		Expect(ok).To(BeTrue())
		Expect(d).To(Equal(2e-2))
	})

	It("decodes a sub-region block, parsing its id", func() {
		data := blockBytes("fuel20Uz17", 10.5, 365.25, 0.07, 10.4, 9.8)

		m, err := decodeOne(data, "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Parent).To(BeFalse())
		Expect(m.ID).To(Equal(int64(17)))
	})

	It("signals io.EOF on an empty stream", func() {
		_, err := decodeOne(nil, "fuel20U")
		Expect(err).To(Equal(io.EOF))
	})

	It("keeps the last density for a ZAI repeated within a block", func() {
		data := blockBytes("fuel20U", 10.5, 365.25, 0.07, 10.4, 9.8,
			nuclidePair{922350, 1e-3},
			nuclidePair{922350, 5e-3},
		)

		m, err := decodeOne(data, "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Nuclides.Len()).To(Equal(1))
		d, ok := m.Nuclides.Get(922350)
		Expect(ok).To(BeTrue())
		Expect(d).To(Equal(5e-3))
	})

	var valid = blockBytes("fuel20Uz1", 10.5, 365.25, 0.07, 10.4, 9.8,
		nuclidePair{922350, 1e-3},
	)

	DescribeTable("corrupt streams",
		func(data []byte, sentinel error) {
			_, err := decodeOne(data, "fuel20U")
			Expect(errors.Cause(err)).To(Equal(sentinel))
		},

		Entry("header cut short", valid[:3], ErrHeaderTruncated),
		Entry("name cut short", valid[:12], ErrRecordTruncated),
		Entry("body cut short", valid[:30], ErrRecordTruncated),
		Entry("nuclide pairs cut short", valid[:len(valid)-4], ErrRecordTruncated),
		Entry("name is not UTF-8",
			blockBytes("fuel20Uz\xff1", 10.5, 365.25, 0.07, 10.4, 9.8),
			ErrNameEncoding),
		Entry("name without the separator",
			blockBytes("moderator", 10.5, 365.25, 0.07, 10.4, 9.8),
			ErrMaterialID),
		Entry("name with a non-integer id",
			blockBytes("fuel20Uzful", 10.5, 365.25, 0.07, 10.4, 9.8),
			ErrMaterialID),
	)
})

var _ = Describe("Material encoding", func() {
	encode := func(m *Material) []byte {
		var buf bytes.Buffer
		Expect(m.EncodeTo(wire.NewWriter(&buf))).To(Succeed())
		return buf.Bytes()
	}

	It("re-encodes an unmodified block byte-for-byte", func() {
		data := blockBytes("fuel20Uz1", 10.5, 365.25, 0.07, 10.4, 9.8,
			nuclidePair{922350, 1e-3},
			nuclidePair{922380, 2e-2},
		)

		m, err := decodeOne(data, "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(encode(m)).To(Equal(data))
	})

	It("round-trips a hand-built material field-for-field", func() {
		m := &Material{
			Name:          "fuel20Uz3",
			ID:            3,
			BurnupGlobal:  42.0,
			BurnupDays:    1234.5,
			AtomicDensity: 0.068,
			MassDensity:   10.2,
			LocalBurnup:   41.7,
		}
		m.Nuclides.Set(541350, 4.2e-9)
		m.Nuclides.Set(922350, 9.1e-4)

		got, err := decodeOne(encode(m), "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal(m))
	})

	It("recomputes the nuclide count from the mapping", func() {
		data := blockBytes("fuel20U", 10.5, 365.25, 0.07, 10.4, 9.8,
			nuclidePair{922350, 1e-3},
		)

		m, err := decodeOne(data, "fuel20U")
		Expect(err).ToNot(HaveOccurred())

		m.Nuclides.Set(942390, 7e-5)

		got, err := decodeOne(encode(m), "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Nuclides.Len()).To(Equal(2))
		Expect(got.Nuclides.ZAIs()).To(Equal([]ZAI{922350, 942390}))
	})

	It("encodes a material with no nuclides", func() {
		m := &Material{Name: "fuel20U", Parent: true}

		got, err := decodeOne(encode(m), "fuel20U")
		Expect(err).ToNot(HaveOccurred())
		Expect(got.Nuclides.Len()).To(BeZero())
		Expect(got).To(Equal(m))
	})
})
