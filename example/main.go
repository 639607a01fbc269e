package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/refractorgscm/endian"
)

// captureHeader is the kind of structure this library is made for: a packed
// on-disk header mixing byte orders per field, overlaid directly onto its raw
// bytes. No field has padding around it, so the struct's memory is exactly
// the 24 wire bytes.
type captureHeader struct {
	Magic     endian.Uint32BE
	Version   endian.Uint16BE
	Flags     endian.Uint16LE
	Count     endian.Uint32LE
	Scale     endian.Float32BE
	Timestamp endian.Uint64LE
}

func headerBytes(h *captureHeader) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(h)), unsafe.Sizeof(*h))
}

func writeHeader(path string, h *captureHeader) error {
	if err := os.WriteFile(path, headerBytes(h), 0o644); err != nil {
		return errors.Wrap(err, "could not write capture header")
	}

	return nil
}

func readHeader(path string) (*captureHeader, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read capture header")
	}

	var h captureHeader
	if len(raw) != int(unsafe.Sizeof(h)) {
		return nil, errors.Errorf("capture header is %d bytes, want %d", len(raw), unsafe.Sizeof(h))
	}

	copy(headerBytes(&h), raw)

	return &h, nil
}

func main() {
	var h captureHeader

	// Assign host-order values; each field stores them in its declared order.
	h.Magic.Set(0x43415054)
	h.Version.Set(2)
	h.Flags.Set(0x0001)
	h.Count.Set(1024)
	h.Scale.Set(0.25)
	h.Timestamp.Set(1756166400)

	fmt.Println("wire bytes:")
	fmt.Printf("  % X\n", headerBytes(&h))

	path := filepath.Join(os.TempDir(), "capture-header.bin")

	if err := writeHeader(path, &h); err != nil {
		log.Fatal(err)
	}

	decoded, err := readHeader(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("decoded fields:")
	fmt.Printf("  magic:     0x%08X\n", decoded.Magic.Get())
	fmt.Printf("  version:   %d\n", decoded.Version.Get())
	fmt.Printf("  flags:     0x%04X\n", decoded.Flags.Get())
	fmt.Printf("  count:     %d\n", decoded.Count.Get())
	fmt.Printf("  scale:     %g\n", decoded.Scale.Get())
	fmt.Printf("  timestamp: %d\n", decoded.Timestamp.Get())
}
