// Package harfbuzz is a binding of the HarfBuzz text shaping library.
//
// Every native object (Blob, Face, Font, Buffer, Set, FontFuncs and UnicodeFuncs) is held by a Go
// value that owns exactly one native reference. Destroy releases that reference; Reference returns a
// second, independently owned handle to the same object. Factories that take another handle as an
// argument (NewFace, NewFont, Font.SetParent, Font.SetFace, FaceCount) consume it: the argument must
// not be used afterwards.
//
// Slices returned by Blob.Data, Buffer.Infos, Buffer.Positions and Font.VarCoordsNormalized point
// into native memory and are valid until the owning object is mutated or destroyed.
//
// The package links against the system library through pkg-config and refuses to compile against
// versions outside of [2.0.0, 8.0.0).
package harfbuzz

//go:generate go run ./cmd/hb-probe

//#cgo pkg-config: harfbuzz
//#include "shim.h"
import "C"
import (
	"errors"
	"fmt"
)

// MinVersion and MaxVersion delimit the supported library versions as [MinVersion, MaxVersion).
const (
	MinVersion = "2.0.0"
	MaxVersion = "8.0.0"
)

var (
	ErrOutOfMemory = errors.New("harfbuzz: out of memory")
	ErrNotWritable = errors.New("harfbuzz: blob is not writable")
	ErrNotFound    = errors.New("harfbuzz: not found")
	ErrDestroyed   = errors.New("harfbuzz: use of destroyed or released object")
	ErrBorrowed    = errors.New("harfbuzz: release of a borrowed object")
)

// Version returns the version of the linked library.
func Version() (major, minor, micro int) {
	var cmajor, cminor, cmicro C.uint
	C.hb_version(&cmajor, &cminor, &cmicro)
	return int(cmajor), int(cminor), int(cmicro)
}

// VersionString returns the version of the linked library as reported by the library.
func VersionString() string {
	return C.GoString(C.hb_version_string())
}

// VersionAtLeast returns true if the linked library is at least the given version.
func VersionAtLeast(major, minor, micro int) bool {
	return C.hb_version_atleast(C.uint(major), C.uint(minor), C.uint(micro)) != 0
}

// HeaderVersion returns the version of the headers the package was compiled against.
func HeaderVersion() string {
	return fmt.Sprintf("%d.%d.%d", C.HB_VERSION_MAJOR, C.HB_VERSION_MINOR, C.HB_VERSION_MICRO)
}

func goBool(b C.hb_bool_t) bool {
	return b != 0
}

func cBool(b bool) C.hb_bool_t {
	if b {
		return 1
	}
	return 0
}
