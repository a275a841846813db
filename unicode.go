package harfbuzz

//#include "shim.h"
import "C"
import (
	"unsafe"
)

// MaxDecompositionLen is the maximum number of codepoints of a compatibility decomposition.
const MaxDecompositionLen = 18

type (
	CombiningClassFunc         func(unicode Codepoint) CombiningClass
	EastAsianWidthFunc         func(unicode Codepoint) int
	GeneralCategoryFunc        func(unicode Codepoint) GeneralCategory
	MirroringFunc              func(unicode Codepoint) Codepoint
	ScriptFunc                 func(unicode Codepoint) Script
	ComposeFunc                func(a, b Codepoint) (Codepoint, bool)
	DecomposeFunc              func(ab Codepoint) (Codepoint, Codepoint, bool)
	DecomposeCompatibilityFunc func(u Codepoint) []Codepoint
)

// UnicodeFuncs is a table of Unicode character property callbacks used during shaping. Functions
// that are not set fall back to the parent table.
type UnicodeFuncs struct {
	h handle[*C.hb_unicode_funcs_t]
}

func destroyUnicodeFuncs(p *C.hb_unicode_funcs_t) {
	C.hb_unicode_funcs_destroy(p)
}

func newUnicodeFuncs(p *C.hb_unicode_funcs_t) *UnicodeFuncs {
	return &UnicodeFuncs{newHandle(p, destroyUnicodeFuncs)}
}

// NewUnicodeFuncs returns a table that falls back to parent, or to the empty table if parent is
// nil. The table takes its own reference to parent.
func NewUnicodeFuncs(parent *UnicodeFuncs) *UnicodeFuncs {
	var p *C.hb_unicode_funcs_t
	if parent != nil {
		p = parent.h.get()
	}
	return newUnicodeFuncs(C.hb_unicode_funcs_create(p))
}

// DefaultUnicodeFuncs returns the table of the Unicode implementation the library was built with.
func DefaultUnicodeFuncs() *UnicodeFuncs {
	return newUnicodeFuncs(C.hb_unicode_funcs_reference(C.hb_unicode_funcs_get_default()))
}

// EmptyUnicodeFuncs returns the immutable empty table singleton.
func EmptyUnicodeFuncs() *UnicodeFuncs {
	return newUnicodeFuncs(C.hb_unicode_funcs_get_empty())
}

// UnicodeFuncsFromRaw takes ownership of one reference to a native hb_unicode_funcs_t.
func UnicodeFuncsFromRaw(p unsafe.Pointer) *UnicodeFuncs {
	return newUnicodeFuncs((*C.hb_unicode_funcs_t)(p))
}

// Raw returns the native hb_unicode_funcs_t without transferring ownership.
func (uf *UnicodeFuncs) Raw() unsafe.Pointer {
	return unsafe.Pointer(uf.h.get())
}

// Release returns the native hb_unicode_funcs_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (uf *UnicodeFuncs) Release() unsafe.Pointer {
	return unsafe.Pointer(uf.h.release())
}

// Reference returns a new handle to the same table.
func (uf *UnicodeFuncs) Reference() *UnicodeFuncs {
	return newUnicodeFuncs(C.hb_unicode_funcs_reference(uf.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once.
func (uf *UnicodeFuncs) Destroy() {
	uf.h.destroy()
}

// Parent returns a borrowed handle to the parent table, or nil if there is none.
func (uf *UnicodeFuncs) Parent() *UnicodeFuncs {
	p := C.hb_unicode_funcs_get_parent(uf.h.get())
	if p == nil {
		return nil
	}
	return &UnicodeFuncs{borrowHandle(p)}
}

func (uf *UnicodeFuncs) IsImmutable() bool {
	return goBool(C.hb_unicode_funcs_is_immutable(uf.h.get()))
}

// MakeImmutable latches the table into the immutable state. Setting functions on an immutable table
// has no effect.
func (uf *UnicodeFuncs) MakeImmutable() {
	C.hb_unicode_funcs_make_immutable(uf.h.get())
}

func (uf *UnicodeFuncs) SetCombiningClassFunc(fn CombiningClassFunc) {
	C.hbgo_unicode_funcs_set_combining_class_func(uf.h.get(), userData(fn, fn == nil))
}

func (uf *UnicodeFuncs) SetEastAsianWidthFunc(fn EastAsianWidthFunc) {
	C.hbgo_unicode_funcs_set_eastasian_width_func(uf.h.get(), userData(fn, fn == nil))
}

func (uf *UnicodeFuncs) SetGeneralCategoryFunc(fn GeneralCategoryFunc) {
	C.hbgo_unicode_funcs_set_general_category_func(uf.h.get(), userData(fn, fn == nil))
}

func (uf *UnicodeFuncs) SetMirroringFunc(fn MirroringFunc) {
	C.hbgo_unicode_funcs_set_mirroring_func(uf.h.get(), userData(fn, fn == nil))
}

func (uf *UnicodeFuncs) SetScriptFunc(fn ScriptFunc) {
	C.hbgo_unicode_funcs_set_script_func(uf.h.get(), userData(fn, fn == nil))
}

func (uf *UnicodeFuncs) SetComposeFunc(fn ComposeFunc) {
	C.hbgo_unicode_funcs_set_compose_func(uf.h.get(), userData(fn, fn == nil))
}

func (uf *UnicodeFuncs) SetDecomposeFunc(fn DecomposeFunc) {
	C.hbgo_unicode_funcs_set_decompose_func(uf.h.get(), userData(fn, fn == nil))
}

// SetDecomposeCompatibilityFunc sets the compatibility decomposition, results longer than
// MaxDecompositionLen are truncated.
func (uf *UnicodeFuncs) SetDecomposeCompatibilityFunc(fn DecomposeCompatibilityFunc) {
	C.hbgo_unicode_funcs_set_decompose_compatibility_func(uf.h.get(), userData(fn, fn == nil))
}

////////////////////////////////////////////////////////////////

func (uf *UnicodeFuncs) CombiningClass(unicode Codepoint) CombiningClass {
	return CombiningClass(C.hb_unicode_combining_class(uf.h.get(), C.hb_codepoint_t(unicode)))
}

func (uf *UnicodeFuncs) EastAsianWidth(unicode Codepoint) int {
	return int(C.hbgo_unicode_eastasian_width(uf.h.get(), C.hb_codepoint_t(unicode)))
}

func (uf *UnicodeFuncs) GeneralCategory(unicode Codepoint) GeneralCategory {
	return GeneralCategory(C.hb_unicode_general_category(uf.h.get(), C.hb_codepoint_t(unicode)))
}

func (uf *UnicodeFuncs) Mirroring(unicode Codepoint) Codepoint {
	return Codepoint(C.hb_unicode_mirroring(uf.h.get(), C.hb_codepoint_t(unicode)))
}

func (uf *UnicodeFuncs) Script(unicode Codepoint) Script {
	return Script(C.hb_unicode_script(uf.h.get(), C.hb_codepoint_t(unicode)))
}

// Compose returns the canonical composition of a and b.
func (uf *UnicodeFuncs) Compose(a, b Codepoint) (Codepoint, bool) {
	var ab C.hb_codepoint_t
	ok := C.hb_unicode_compose(uf.h.get(), C.hb_codepoint_t(a), C.hb_codepoint_t(b), &ab)
	return Codepoint(ab), goBool(ok)
}

// Decompose returns the canonical decomposition of ab into two codepoints.
func (uf *UnicodeFuncs) Decompose(ab Codepoint) (Codepoint, Codepoint, bool) {
	var a, b C.hb_codepoint_t
	ok := C.hb_unicode_decompose(uf.h.get(), C.hb_codepoint_t(ab), &a, &b)
	return Codepoint(a), Codepoint(b), goBool(ok)
}

// DecomposeCompatibility returns the compatibility decomposition of u, or nil if there is none.
func (uf *UnicodeFuncs) DecomposeCompatibility(u Codepoint) []Codepoint {
	var buf [MaxDecompositionLen + 1]C.hb_codepoint_t
	n := C.hbgo_unicode_decompose_compatibility(uf.h.get(), C.hb_codepoint_t(u), &buf[0])
	if n == 0 {
		return nil
	}
	decomposed := make([]Codepoint, n)
	for i := range decomposed {
		decomposed[i] = Codepoint(buf[i])
	}
	return decomposed
}
