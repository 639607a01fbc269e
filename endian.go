// Package endian provides scalar types with a fixed, compile-time byte order
// for use inside packed wire and file format structures.
//
// A wrapper stores its value already converted into the declared order, so a
// struct made of wrapper fields holds exactly the bytes that appear on the
// wire or on disk. Every wrapper has the size and alignment of its underlying
// scalar and replaces it field for field in a packed layout: copy the
// structure's raw bytes straight to or from a buffer and access fields
// through Get and Set.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/refractorgscm/endian/swap"
)

// Scalar is the set of fixed-width integer types a wrapper can hold.
type Scalar interface {
	~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// convert moves v between host order and the declared order O. Both
// directions are the same operation since byte reversal is its own inverse.
func convert[T Scalar, O Order](v T) T {
	var o O
	if o.matchesHost() {
		return v
	}

	switch unsafe.Sizeof(v) {
	case 2:
		return T(swap.Uint16(uint16(v)))
	case 4:
		return T(swap.Uint32(uint32(v)))
	default:
		return T(swap.Uint64(uint64(v)))
	}
}

// Int is an integer held in the byte order O regardless of the host's order.
// The zero value holds zero. Copying an Int copies the stored bytes verbatim,
// so wrappers assign and compare like the plain scalar they stand in for.
type Int[T Scalar, O Order] struct {
	raw T
}

// New returns an Int holding the host-order value v.
func New[T Scalar, O Order](v T) Int[T, O] {
	return Int[T, O]{raw: convert[T, O](v)}
}

// Set overwrites the stored value with the host-order value v.
func (i *Int[T, O]) Set(v T) {
	i.raw = convert[T, O](v)
}

// Get returns the stored value in host order.
func (i Int[T, O]) Get() T {
	return convert[T, O](i.raw)
}

// Raw returns the stored bit pattern with no conversion applied. It is a
// bitmap: for signed types the numeric value of the result means nothing.
func (i Int[T, O]) Raw() T {
	return i.raw
}

// Order returns the declared byte order for use with encoding/binary APIs.
func (i Int[T, O]) Order() binary.ByteOrder {
	var o O
	return o.ByteOrder()
}
