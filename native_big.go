//go:build mips || mips64 || ppc64 || s390x

package endian

import "encoding/binary"

const nativeBig = true

// Native is the byte order of the build target.
var Native binary.ByteOrder = binary.BigEndian
