package harfbuzz

//#include "shim.h"
import "C"
import (
	"fmt"
	"os"
	"unsafe"
)

// MemoryMode specifies how a blob treats the memory it is created from.
type MemoryMode int

const (
	MemoryModeDuplicate MemoryMode = iota
	MemoryModeReadOnly
	MemoryModeWritable
	MemoryModeReadOnlyMayMakeWritable
)

// Blob is a reference-counted range of bytes, typically holding font data.
type Blob struct {
	h handle[*C.hb_blob_t]
}

func destroyBlob(p *C.hb_blob_t) {
	C.hb_blob_destroy(p)
}

func newBlob(p *C.hb_blob_t) *Blob {
	return &Blob{newHandle(p, destroyBlob)}
}

// NewBlob returns a blob holding a copy of data.
func NewBlob(data []byte) *Blob {
	if len(data) == 0 {
		return EmptyBlob()
	}
	return newBlob(C.hb_blob_create((*C.char)(unsafe.Pointer(&data[0])), C.uint(len(data)), C.HB_MEMORY_MODE_DUPLICATE, nil, nil))
}

type blobData struct {
	p  unsafe.Pointer
	fn func()
}

func (d *blobData) release() {
	C.free(d.p)
	if d.fn != nil {
		d.fn()
	}
}

// NewBlobMode copies data to native memory and creates a blob over it with the given memory mode.
// The release function, if not nil, is called exactly once when the native memory is freed, which
// is immediately for MemoryModeDuplicate.
func NewBlobMode(data []byte, mode MemoryMode, release func()) *Blob {
	d := &blobData{C.CBytes(data), release}
	ud := newUserData(d)
	return newBlob(C.hbgo_blob_create((*C.char)(d.p), C.uint(len(data)), C.hb_memory_mode_t(mode), C.uintptr_t(ud)))
}

// LoadBlob memory-maps or reads the named file into a blob.
func LoadBlob(filename string) (*Blob, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", filename)
	}

	cfilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cfilename))
	blob := newBlob(C.hb_blob_create_from_file(cfilename))
	if blob.Len() == 0 && 0 < info.Size() {
		blob.Destroy()
		return nil, fmt.Errorf("%s: could not be read", filename)
	}
	return blob, nil
}

// EmptyBlob returns the empty blob singleton.
func EmptyBlob() *Blob {
	return newBlob(C.hb_blob_get_empty())
}

// BlobFromRaw takes ownership of one reference to a native hb_blob_t.
func BlobFromRaw(p unsafe.Pointer) *Blob {
	return newBlob((*C.hb_blob_t)(p))
}

// Raw returns the native hb_blob_t without transferring ownership.
func (b *Blob) Raw() unsafe.Pointer {
	return unsafe.Pointer(b.h.get())
}

// Release returns the native hb_blob_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (b *Blob) Release() unsafe.Pointer {
	return unsafe.Pointer(b.h.release())
}

// Reference returns a new handle to the same blob.
func (b *Blob) Reference() *Blob {
	return newBlob(C.hb_blob_reference(b.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once.
func (b *Blob) Destroy() {
	b.h.destroy()
}

// Len returns the number of bytes in the blob.
func (b *Blob) Len() int {
	return int(C.hb_blob_get_length(b.h.get()))
}

// Data returns the bytes of the blob. The slice is valid until the blob is destroyed.
func (b *Blob) Data() []byte {
	var n C.uint
	p := C.hb_blob_get_data(b.h.get(), &n)
	if p == nil || n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

// DataWritable returns a writable view of the bytes of the blob, copying them if the memory mode
// requires so. It fails when the blob is immutable or the copy could not be allocated.
func (b *Blob) DataWritable() ([]byte, error) {
	var n C.uint
	p := C.hb_blob_get_data_writable(b.h.get(), &n)
	if p == nil {
		return nil, ErrNotWritable
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n)), nil
}

func (b *Blob) IsImmutable() bool {
	return goBool(C.hb_blob_is_immutable(b.h.get()))
}

// MakeImmutable latches the blob into the immutable state, which cannot be undone.
func (b *Blob) MakeImmutable() {
	C.hb_blob_make_immutable(b.h.get())
}

// CopyWritable returns an independent writable copy of the blob.
func (b *Blob) CopyWritable() (*Blob, error) {
	p := C.hb_blob_copy_writable_or_fail(b.h.get())
	if p == nil {
		return nil, ErrOutOfMemory
	}
	return newBlob(p), nil
}

// SubBlob returns a read-only blob over [offset,offset+length) of b and makes b immutable. It
// returns the empty blob when the length is zero or the range does not lie within b.
func (b *Blob) SubBlob(offset, length int) *Blob {
	parent := b.h.get()
	C.hb_blob_make_immutable(parent)
	if offset < 0 || length <= 0 || b.Len()-offset < length {
		return EmptyBlob()
	}
	return newBlob(C.hb_blob_create_sub_blob(parent, C.uint(offset), C.uint(length)))
}
