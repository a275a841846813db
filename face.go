package harfbuzz

//#include "shim.h"
import "C"
import (
	"unsafe"
)

// Face is a parsed font face of a blob holding an OpenType font or font collection.
type Face struct {
	h handle[*C.hb_face_t]
}

func destroyFace(p *C.hb_face_t) {
	C.hb_face_destroy(p)
}

func newFace(p *C.hb_face_t) *Face {
	return &Face{newHandle(p, destroyFace)}
}

// NewFace returns the face at index in the blob. It consumes the blob handle, which must not be used
// afterwards. Invalid font data or an out of range index results in a face without glyphs.
func NewFace(blob *Blob, index int) *Face {
	face := newFace(C.hb_face_create(blob.h.get(), C.uint(index)))
	blob.Destroy()
	return face
}

// LoadFace loads the face at index of the named font file.
func LoadFace(filename string, index int) (*Face, error) {
	blob, err := LoadBlob(filename)
	if err != nil {
		return nil, err
	}
	return NewFace(blob, index), nil
}

// FaceCount returns the number of faces in the blob. It consumes the blob handle.
func FaceCount(blob *Blob) int {
	n := C.hb_face_count(blob.h.get())
	blob.Destroy()
	return int(n)
}

// EmptyFace returns the empty face singleton.
func EmptyFace() *Face {
	return newFace(C.hb_face_get_empty())
}

// FaceFromRaw takes ownership of one reference to a native hb_face_t.
func FaceFromRaw(p unsafe.Pointer) *Face {
	return newFace((*C.hb_face_t)(p))
}

// Raw returns the native hb_face_t without transferring ownership.
func (f *Face) Raw() unsafe.Pointer {
	return unsafe.Pointer(f.h.get())
}

// Release returns the native hb_face_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (f *Face) Release() unsafe.Pointer {
	return unsafe.Pointer(f.h.release())
}

// Reference returns a new handle to the same face.
func (f *Face) Reference() *Face {
	return newFace(C.hb_face_reference(f.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once.
func (f *Face) Destroy() {
	f.h.destroy()
}

func (f *Face) Index() int {
	return int(C.hb_face_get_index(f.h.get()))
}

func (f *Face) SetIndex(index int) {
	C.hb_face_set_index(f.h.get(), C.uint(index))
}

// Upem returns the units per em of the face.
func (f *Face) Upem() int {
	return int(C.hb_face_get_upem(f.h.get()))
}

func (f *Face) SetUpem(upem int) {
	C.hb_face_set_upem(f.h.get(), C.uint(upem))
}

func (f *Face) GlyphCount() int {
	return int(C.hb_face_get_glyph_count(f.h.get()))
}

func (f *Face) SetGlyphCount(glyphCount int) {
	C.hb_face_set_glyph_count(f.h.get(), C.uint(glyphCount))
}

func (f *Face) IsImmutable() bool {
	return goBool(C.hb_face_is_immutable(f.h.get()))
}

// MakeImmutable latches the face into the immutable state, which cannot be undone.
func (f *Face) MakeImmutable() {
	C.hb_face_make_immutable(f.h.get())
}

// TableTags copies at most len(buf) table tags into buf and returns the filled prefix.
func (f *Face) TableTags(buf []Tag) []Tag {
	if len(buf) == 0 {
		return buf[:0]
	}
	n := C.uint(len(buf))
	C.hb_face_get_table_tags(f.h.get(), 0, &n, (*C.hb_tag_t)(unsafe.Pointer(&buf[0])))
	return buf[:n]
}

// AllTableTags returns the tags of all tables in the face.
func (f *Face) AllTableTags() []Tag {
	n := C.hb_face_get_table_tags(f.h.get(), 0, nil, nil)
	return f.TableTags(make([]Tag, n))
}

// ReferenceTable returns the table with the given tag, or the empty blob if there is none.
func (f *Face) ReferenceTable(tag Tag) *Blob {
	return newBlob(C.hb_face_reference_table(f.h.get(), C.hb_tag_t(tag)))
}

// ReferenceBlob returns the blob the face was created from.
func (f *Face) ReferenceBlob() *Blob {
	return newBlob(C.hb_face_reference_blob(f.h.get()))
}

// CollectUnicodes adds all codepoints covered by the face to set.
func (f *Face) CollectUnicodes(set *Set) {
	C.hb_face_collect_unicodes(f.h.get(), set.h.get())
}

// CollectVariationSelectors adds all variation selectors covered by the face to set.
func (f *Face) CollectVariationSelectors(set *Set) {
	C.hb_face_collect_variation_selectors(f.h.get(), set.h.get())
}

// CollectVariationUnicodes adds all codepoints covered by the face for the variation selector to
// set.
func (f *Face) CollectVariationUnicodes(variationSelector Codepoint, set *Set) {
	C.hb_face_collect_variation_unicodes(f.h.get(), C.hb_codepoint_t(variationSelector), set.h.get())
}
