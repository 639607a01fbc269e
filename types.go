package endian

// Concrete wrapper names, one per width, signedness and declared order.
type (
	Int16BE  = Int[int16, Big]
	Int16LE  = Int[int16, Little]
	Uint16BE = Int[uint16, Big]
	Uint16LE = Int[uint16, Little]

	Int32BE  = Int[int32, Big]
	Int32LE  = Int[int32, Little]
	Uint32BE = Int[uint32, Big]
	Uint32LE = Int[uint32, Little]

	Int64BE  = Int[int64, Big]
	Int64LE  = Int[int64, Little]
	Uint64BE = Int[uint64, Big]
	Uint64LE = Int[uint64, Little]

	Float32BE = Float32[Big]
	Float32LE = Float32[Little]
	Float64BE = Float64[Big]
	Float64LE = Float64[Little]
)

// Single bytes have no byte order. These names exist so wire structs can
// spell every field the same way.
type (
	Int8BE  = int8
	Int8LE  = int8
	Uint8BE = uint8
	Uint8LE = uint8
)
