// Copyright 2024 The serpentwrk Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	It("reads little-endian primitives, tracking its offset", func() {
		data := []byte{
			0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // int64(1)
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F, // float64(1.0)
			0xAB, 0xCD,
		}
		r := NewReader(bytes.NewReader(data))

		v, err := r.ReadInt64()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(int64(1)))
		Expect(r.Offset()).To(Equal(int64(8)))

		f, err := r.ReadFloat64()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(1.0))
		Expect(r.Offset()).To(Equal(int64(16)))

		b, err := r.ReadBytes(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(Equal([]byte{0xAB, 0xCD}))
		Expect(r.Offset()).To(Equal(int64(18)))
	})

	It("reads negative integers", func() {
		var buf bytes.Buffer
		Expect(NewWriter(&buf).WriteInt64(-7)).To(Succeed())

		v, err := NewReader(&buf).ReadInt64()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(int64(-7)))
	})

	It("returns io.EOF at a clean end of stream", func() {
		r := NewReader(bytes.NewReader(nil))

		_, err := r.ReadInt64()
		Expect(err).To(Equal(io.EOF))
		Expect(r.Offset()).To(BeZero())
	})

	It("fails with ErrTruncated when an integer is cut short", func() {
		r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))

		_, err := r.ReadInt64()
		Expect(errors.Cause(err)).To(Equal(ErrTruncated))
	})

	It("fails with ErrTruncated when a byte run is cut short", func() {
		r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))

		_, err := r.ReadBytes(4)
		Expect(errors.Cause(err)).To(Equal(ErrTruncated))
	})

	It("reads a zero-length byte run from an exhausted stream", func() {
		r := NewReader(bytes.NewReader(nil))

		b, err := r.ReadBytes(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(BeEmpty())
	})
})

var _ = Describe("Writer", func() {
	It("round-trips primitives through a Reader", func() {
		var buf bytes.Buffer
		w := NewWriter(&buf)

		Expect(w.WriteInt64(-42)).To(Succeed())
		Expect(w.WriteFloat64(3.25)).To(Succeed())
		Expect(w.WriteBytes([]byte("fuel20U"))).To(Succeed())
		Expect(w.Offset()).To(Equal(int64(23)))

		r := NewReader(&buf)

		v, err := r.ReadInt64()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(Equal(int64(-42)))

		f, err := r.ReadFloat64()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(3.25))

		name, err := r.ReadBytes(7)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(name)).To(Equal("fuel20U"))
	})
})
