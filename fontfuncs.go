package harfbuzz

//#include "shim.h"
import "C"
import (
	"unsafe"
)

// Callbacks receive a borrowed handle to the font that is queried, which may be a sub font of the
// font the functions were set on.
type (
	FontExtentsFunc       func(font *Font) (FontExtents, bool)
	NominalGlyphFunc      func(font *Font, unicode Codepoint) (Codepoint, bool)
	VariationGlyphFunc    func(font *Font, unicode, variationSelector Codepoint) (Codepoint, bool)
	GlyphAdvanceFunc      func(font *Font, glyph Codepoint) Position
	GlyphOriginFunc       func(font *Font, glyph Codepoint) (Position, Position, bool)
	GlyphExtentsFunc      func(font *Font, glyph Codepoint) (GlyphExtents, bool)
	GlyphContourPointFunc func(font *Font, glyph Codepoint, pointIndex int) (Position, Position, bool)
	GlyphNameFunc         func(font *Font, glyph Codepoint) (string, bool)
	GlyphFromNameFunc     func(font *Font, name string) (Codepoint, bool)
)

// FontFuncs is a table of callbacks that override the metrics and glyph lookups of a font. Functions
// that are not set fall back to the parent font.
type FontFuncs struct {
	h handle[*C.hb_font_funcs_t]
}

func destroyFontFuncs(p *C.hb_font_funcs_t) {
	C.hb_font_funcs_destroy(p)
}

func newFontFuncs(p *C.hb_font_funcs_t) *FontFuncs {
	return &FontFuncs{newHandle(p, destroyFontFuncs)}
}

// NewFontFuncs returns a table without any functions set.
func NewFontFuncs() *FontFuncs {
	return newFontFuncs(C.hb_font_funcs_create())
}

// EmptyFontFuncs returns the immutable empty table singleton.
func EmptyFontFuncs() *FontFuncs {
	return newFontFuncs(C.hb_font_funcs_get_empty())
}

// FontFuncsFromRaw takes ownership of one reference to a native hb_font_funcs_t.
func FontFuncsFromRaw(p unsafe.Pointer) *FontFuncs {
	return newFontFuncs((*C.hb_font_funcs_t)(p))
}

// Raw returns the native hb_font_funcs_t without transferring ownership.
func (ff *FontFuncs) Raw() unsafe.Pointer {
	return unsafe.Pointer(ff.h.get())
}

// Release returns the native hb_font_funcs_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (ff *FontFuncs) Release() unsafe.Pointer {
	return unsafe.Pointer(ff.h.release())
}

// Reference returns a new handle to the same table.
func (ff *FontFuncs) Reference() *FontFuncs {
	return newFontFuncs(C.hb_font_funcs_reference(ff.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once.
func (ff *FontFuncs) Destroy() {
	ff.h.destroy()
}

func (ff *FontFuncs) IsImmutable() bool {
	return goBool(C.hb_font_funcs_is_immutable(ff.h.get()))
}

// MakeImmutable latches the table into the immutable state. Setting functions on an immutable table
// has no effect.
func (ff *FontFuncs) MakeImmutable() {
	C.hb_font_funcs_make_immutable(ff.h.get())
}

// userData returns the native user data for fn, or zero to reset the callback.
func userData(fn any, isNil bool) C.uintptr_t {
	if isNil {
		return 0
	}
	return C.uintptr_t(newUserData(fn))
}

func (ff *FontFuncs) SetFontHExtentsFunc(fn FontExtentsFunc) {
	C.hbgo_font_funcs_set_font_h_extents_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetFontVExtentsFunc(fn FontExtentsFunc) {
	C.hbgo_font_funcs_set_font_v_extents_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetNominalGlyphFunc(fn NominalGlyphFunc) {
	C.hbgo_font_funcs_set_nominal_glyph_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetVariationGlyphFunc(fn VariationGlyphFunc) {
	C.hbgo_font_funcs_set_variation_glyph_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphHAdvanceFunc(fn GlyphAdvanceFunc) {
	C.hbgo_font_funcs_set_glyph_h_advance_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphVAdvanceFunc(fn GlyphAdvanceFunc) {
	C.hbgo_font_funcs_set_glyph_v_advance_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphHOriginFunc(fn GlyphOriginFunc) {
	C.hbgo_font_funcs_set_glyph_h_origin_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphVOriginFunc(fn GlyphOriginFunc) {
	C.hbgo_font_funcs_set_glyph_v_origin_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphExtentsFunc(fn GlyphExtentsFunc) {
	C.hbgo_font_funcs_set_glyph_extents_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphContourPointFunc(fn GlyphContourPointFunc) {
	C.hbgo_font_funcs_set_glyph_contour_point_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphNameFunc(fn GlyphNameFunc) {
	C.hbgo_font_funcs_set_glyph_name_func(ff.h.get(), userData(fn, fn == nil))
}

func (ff *FontFuncs) SetGlyphFromNameFunc(fn GlyphFromNameFunc) {
	C.hbgo_font_funcs_set_glyph_from_name_func(ff.h.get(), userData(fn, fn == nil))
}
