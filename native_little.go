//go:build 386 || amd64 || arm || arm64 || loong64 || mipsle || mips64le || ppc64le || riscv64 || wasm

package endian

import "encoding/binary"

const nativeBig = false

// Native is the byte order of the build target.
var Native binary.ByteOrder = binary.LittleEndian
