package endian

import "unsafe"

// Every wrapper must be a drop-in replacement for its scalar inside a packed
// struct. These assignments stop compiling if a wrapper's size ever diverges
// from the underlying scalar's.
var (
	_ [unsafe.Sizeof(Int16BE{})]byte  = [2]byte{}
	_ [unsafe.Sizeof(Uint16BE{})]byte = [2]byte{}
	_ [unsafe.Sizeof(Uint16LE{})]byte = [2]byte{}

	_ [unsafe.Sizeof(Int32LE{})]byte  = [4]byte{}
	_ [unsafe.Sizeof(Uint32BE{})]byte = [4]byte{}

	_ [unsafe.Sizeof(Int64LE{})]byte  = [8]byte{}
	_ [unsafe.Sizeof(Uint64BE{})]byte = [8]byte{}

	_ [unsafe.Sizeof(Float32BE{})]byte = [4]byte{}
	_ [unsafe.Sizeof(Float32LE{})]byte = [4]byte{}
	_ [unsafe.Sizeof(Float64BE{})]byte = [8]byte{}
	_ [unsafe.Sizeof(Float64LE{})]byte = [8]byte{}
)
