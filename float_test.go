package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/franela/goblin"
	. "github.com/onsi/gomega"
)

func TestFloat(t *testing.T) {
	g := goblin.Goblin(t)

	// Special hook for gomega
	RegisterFailHandler(func(m string, _ ...int) { g.Fail(m) })

	g.Describe("Float32", func() {
		g.It("Should store the declared-order bytes of 1.0", func() {
			v := NewFloat32[Big](1.0)
			Expect(rawBytes(&v)).To(Equal([]byte{0x3F, 0x80, 0x00, 0x00}))

			w := NewFloat32[Little](1.0)
			Expect(rawBytes(&w)).To(Equal([]byte{0x00, 0x00, 0x80, 0x3F}))
		})

		g.It("Should hold the reversed pattern on a mismatched host", func() {
			v := NewFloat32[Big](1.0)
			if nativeBig {
				Expect(v.Bits()).To(Equal(uint32(0x3F800000)))
			} else {
				Expect(v.Bits()).To(Equal(uint32(0x0000803F)))
			}
		})

		g.It("Should round-trip ordinary values", func() {
			for _, f := range []float32{0, 1, -1, 0.5, 3.1415927, -2.7182817, 1e-38, 3.4e38} {
				Expect(NewFloat32[Big](f).Get()).To(Equal(f))
				Expect(NewFloat32[Little](f).Get()).To(Equal(f))
			}
		})

		g.It("Should keep the sign of negative zero", func() {
			v := NewFloat32[Big](float32(math.Copysign(0, -1)))
			Expect(math.Float32bits(v.Get())).To(Equal(uint32(0x80000000)))
			Expect(math.Signbit(float64(v.Get()))).To(BeTrue())
		})

		g.It("Should round-trip infinities", func() {
			Expect(NewFloat32[Big](float32(math.Inf(1))).Get()).To(Equal(float32(math.Inf(1))))
			Expect(NewFloat32[Little](float32(math.Inf(-1))).Get()).To(Equal(float32(math.Inf(-1))))
		})

		g.It("Should preserve NaN payload bits", func() {
			const pattern = uint32(0x7FC00F0F)

			v := NewFloat32[Big](math.Float32frombits(pattern))
			Expect(math.Float32bits(v.Get())).To(Equal(pattern))

			w := NewFloat32[Little](math.Float32frombits(pattern))
			Expect(math.Float32bits(w.Get())).To(Equal(pattern))
		})
	})

	g.Describe("Float64", func() {
		g.It("Should store the declared-order bytes of 1.0", func() {
			v := NewFloat64[Big](1.0)
			Expect(rawBytes(&v)).To(Equal([]byte{0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}))

			w := NewFloat64[Little](1.0)
			Expect(rawBytes(&w)).To(Equal([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F}))
		})

		g.It("Should convert the read path exactly like the write path", func() {
			v := NewFloat64[Big](math.Pi)
			Expect(v.Get()).To(Equal(math.Pi))

			want := make([]byte, 8)
			binary.BigEndian.PutUint64(want, math.Float64bits(math.Pi))
			Expect(rawBytes(&v)).To(Equal(want))
		})

		g.It("Should round-trip ordinary values", func() {
			for _, f := range []float64{0, 1, -1, 0.5, math.Pi, -math.E, 5e-324, 1.7976931348623157e308} {
				Expect(NewFloat64[Big](f).Get()).To(Equal(f))
				Expect(NewFloat64[Little](f).Get()).To(Equal(f))
			}
		})

		g.It("Should keep the sign of negative zero", func() {
			v := NewFloat64[Little](math.Copysign(0, -1))
			Expect(math.Float64bits(v.Get())).To(Equal(uint64(0x8000000000000000)))
			Expect(math.Signbit(v.Get())).To(BeTrue())
		})

		g.It("Should round-trip infinities", func() {
			Expect(NewFloat64[Big](math.Inf(1)).Get()).To(Equal(math.Inf(1)))
			Expect(NewFloat64[Little](math.Inf(-1)).Get()).To(Equal(math.Inf(-1)))
		})

		g.It("Should preserve NaN payload bits", func() {
			const pattern = uint64(0x7FF800000000BEEF)

			v := NewFloat64[Big](math.Float64frombits(pattern))
			Expect(math.Float64bits(v.Get())).To(Equal(pattern))

			w := NewFloat64[Little](math.Float64frombits(pattern))
			Expect(math.Float64bits(w.Get())).To(Equal(pattern))
		})
	})

	g.Describe("embedding", func() {
		g.It("Should sit flush inside a packed struct", func() {
			type sample struct {
				Count Uint32LE
				Scale Float32BE
			}

			var s sample
			s.Count.Set(3)
			s.Scale.Set(1.0)

			Expect(rawBytes(&s)).To(Equal([]byte{
				0x03, 0x00, 0x00, 0x00,
				0x3F, 0x80, 0x00, 0x00,
			}))
		})
	})
}
