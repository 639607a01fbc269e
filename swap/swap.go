// Package swap reverses the byte order of 16, 32 and 64 bit unsigned bit
// patterns. The functions operate on bit patterns, not values: bits carrying
// a floating point payload pass through with only their byte positions
// permuted. Every function is its own inverse.
//
// The shift-and-mask form below is the one the compiler lowers to a single
// byte-reverse instruction on targets that have one, so no per-architecture
// source is needed.
package swap

// Uint16 returns v with its two bytes exchanged.
func Uint16(v uint16) uint16 {
	return ((v & 0x00ff) << 8) |
		((v & 0xff00) >> 8)
}

// Uint32 returns v with its four bytes in reverse order.
func Uint32(v uint32) uint32 {
	return ((v & 0x000000ff) << 24) |
		((v & 0x0000ff00) << 8) |
		((v & 0x00ff0000) >> 8) |
		((v & 0xff000000) >> 24)
}

// Uint64 returns v with its eight bytes in reverse order.
func Uint64(v uint64) uint64 {
	return ((v & 0x00000000000000ff) << 56) |
		((v & 0x000000000000ff00) << 40) |
		((v & 0x0000000000ff0000) << 24) |
		((v & 0x00000000ff000000) << 8) |
		((v & 0x000000ff00000000) >> 8) |
		((v & 0x0000ff0000000000) >> 24) |
		((v & 0x00ff000000000000) >> 40) |
		((v & 0xff00000000000000) >> 56)
}
