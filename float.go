package endian

import (
	"encoding/binary"
	"math"
)

// Float32 is an IEEE-754 single precision value held in the byte order O.
// Conversion reinterprets the value as its 32 bit pattern and permutes bytes
// only: no floating point arithmetic takes place, so signed zeros, infinities
// and NaN payload bits survive untouched.
type Float32[O Order] struct {
	raw float32
}

// NewFloat32 returns a Float32 holding the host-order value v.
func NewFloat32[O Order](v float32) Float32[O] {
	return Float32[O]{raw: math.Float32frombits(convert[uint32, O](math.Float32bits(v)))}
}

// Set overwrites the stored value with the host-order value v.
func (f *Float32[O]) Set(v float32) {
	*f = NewFloat32[O](v)
}

// Get returns the stored value in host order.
func (f Float32[O]) Get() float32 {
	return math.Float32frombits(convert[uint32, O](math.Float32bits(f.raw)))
}

// Raw returns the stored pattern with no conversion, carried in a float32.
func (f Float32[O]) Raw() float32 {
	return f.raw
}

// Bits returns the stored pattern with no conversion.
func (f Float32[O]) Bits() uint32 {
	return math.Float32bits(f.raw)
}

// Order returns the declared byte order for use with encoding/binary APIs.
func (f Float32[O]) Order() binary.ByteOrder {
	var o O
	return o.ByteOrder()
}

// Float64 is an IEEE-754 double precision value held in the byte order O.
// Read and write sides apply the same conversion, so Get always returns the
// exact bit pattern that went in.
type Float64[O Order] struct {
	raw float64
}

// NewFloat64 returns a Float64 holding the host-order value v.
func NewFloat64[O Order](v float64) Float64[O] {
	return Float64[O]{raw: math.Float64frombits(convert[uint64, O](math.Float64bits(v)))}
}

// Set overwrites the stored value with the host-order value v.
func (f *Float64[O]) Set(v float64) {
	*f = NewFloat64[O](v)
}

// Get returns the stored value in host order.
func (f Float64[O]) Get() float64 {
	return math.Float64frombits(convert[uint64, O](math.Float64bits(f.raw)))
}

// Raw returns the stored pattern with no conversion, carried in a float64.
func (f Float64[O]) Raw() float64 {
	return f.raw
}

// Bits returns the stored pattern with no conversion.
func (f Float64[O]) Bits() uint64 {
	return math.Float64bits(f.raw)
}

// Order returns the declared byte order for use with encoding/binary APIs.
func (f Float64[O]) Order() binary.ByteOrder {
	var o O
	return o.ByteOrder()
}
