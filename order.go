package endian

import "encoding/binary"

// Big declares big-endian byte order: most significant byte first. Network
// protocols and most big-iron file formats use this order.
type Big struct{}

// Little declares little-endian byte order: least significant byte first.
type Little struct{}

// ByteOrder returns the matching encoding/binary order.
func (Big) ByteOrder() binary.ByteOrder { return binary.BigEndian }

// ByteOrder returns the matching encoding/binary order.
func (Little) ByteOrder() binary.ByteOrder { return binary.LittleEndian }

func (Big) matchesHost() bool    { return nativeBig }
func (Little) matchesHost() bool { return !nativeBig }

// Order is the set of byte orders a wrapper type can declare. The order is
// part of the wrapper's type, not its state: instances carry no order tag at
// runtime.
type Order interface {
	Big | Little

	ByteOrder() binary.ByteOrder
	matchesHost() bool
}
