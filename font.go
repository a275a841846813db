package harfbuzz

//#include "shim.h"
import "C"
import (
	"unsafe"

	"golang.org/x/image/math/fixed"
)

// Font is a face instance at a given scale and variation, and is what text is shaped with.
type Font struct {
	h handle[*C.hb_font_t]
}

func destroyFont(p *C.hb_font_t) {
	C.hb_font_destroy(p)
}

func newFont(p *C.hb_font_t) *Font {
	return &Font{newHandle(p, destroyFont)}
}

// NewFont returns a font for the face. It consumes the face handle, which must not be used
// afterwards. The scale defaults to the face's units per em.
func NewFont(face *Face) *Font {
	font := newFont(C.hb_font_create(face.h.get()))
	face.Destroy()
	return font
}

// EmptyFont returns the empty font singleton.
func EmptyFont() *Font {
	return newFont(C.hb_font_get_empty())
}

// FontFromRaw takes ownership of one reference to a native hb_font_t.
func FontFromRaw(p unsafe.Pointer) *Font {
	return newFont((*C.hb_font_t)(p))
}

// Raw returns the native hb_font_t without transferring ownership.
func (f *Font) Raw() unsafe.Pointer {
	return unsafe.Pointer(f.h.get())
}

// Release returns the native hb_font_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (f *Font) Release() unsafe.Pointer {
	return unsafe.Pointer(f.h.release())
}

// Reference returns a new handle to the same font.
func (f *Font) Reference() *Font {
	return newFont(C.hb_font_reference(f.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once. Destroy is
// a no-op for the fonts passed to callbacks and returned by Parent.
func (f *Font) Destroy() {
	f.h.destroy()
}

// CreateSubFont returns a font that inherits the face, scale, and functions of f.
func (f *Font) CreateSubFont() *Font {
	return newFont(C.hb_font_create_sub_font(f.h.get()))
}

// Parent returns a borrowed handle to the parent font, or nil if there is none.
func (f *Font) Parent() *Font {
	p := C.hb_font_get_parent(f.h.get())
	if p == nil {
		return nil
	}
	return &Font{borrowHandle(p)}
}

// SetParent sets the parent font. It consumes the parent handle.
func (f *Font) SetParent(parent *Font) {
	C.hb_font_set_parent(f.h.get(), parent.h.get())
	parent.Destroy()
}

// Face returns a borrowed handle to the face of the font.
func (f *Font) Face() *Face {
	return &Face{borrowHandle(C.hb_font_get_face(f.h.get()))}
}

// SetFace replaces the face of the font. It consumes the face handle.
func (f *Font) SetFace(face *Face) {
	C.hb_font_set_face(f.h.get(), face.h.get())
	face.Destroy()
}

// SetFuncs replaces the font functions of the font. The font takes its own reference to ffuncs.
func (f *Font) SetFuncs(ffuncs *FontFuncs) {
	C.hb_font_set_funcs(f.h.get(), ffuncs.h.get(), nil, nil)
}

func (f *Font) IsImmutable() bool {
	return goBool(C.hb_font_is_immutable(f.h.get()))
}

// MakeImmutable latches the font into the immutable state, which cannot be undone.
func (f *Font) MakeImmutable() {
	C.hb_font_make_immutable(f.h.get())
}

// Scale returns the horizontal and vertical scale, being the number of units that map to one em.
func (f *Font) Scale() (int, int) {
	var x, y C.int
	C.hb_font_get_scale(f.h.get(), &x, &y)
	return int(x), int(y)
}

func (f *Font) SetScale(x, y int) {
	C.hb_font_set_scale(f.h.get(), C.int(x), C.int(y))
}

// SetSize sets the scale so that positions are returned in 26.6 fixed point for a font size.
func (f *Font) SetSize(size fixed.Int26_6) {
	f.SetScale(int(size), int(size))
}

// Ppem returns the horizontal and vertical pixels per em used for hinting.
func (f *Font) Ppem() (uint, uint) {
	var x, y C.uint
	C.hb_font_get_ppem(f.h.get(), &x, &y)
	return uint(x), uint(y)
}

func (f *Font) SetPpem(x, y uint) {
	C.hb_font_set_ppem(f.h.get(), C.uint(x), C.uint(y))
}

// Ptem returns the point size used for optical size selection, or zero if unset.
func (f *Font) Ptem() float32 {
	return float32(C.hb_font_get_ptem(f.h.get()))
}

func (f *Font) SetPtem(ptem float32) {
	C.hb_font_set_ptem(f.h.get(), C.float(ptem))
}

// SetVariations sets the design coordinates of the given axes, axes not listed are set to their
// default values.
func (f *Font) SetVariations(variations []Variation) {
	var p *C.hb_variation_t
	if 0 < len(variations) {
		p = (*C.hb_variation_t)(unsafe.Pointer(&variations[0]))
	}
	C.hb_font_set_variations(f.h.get(), p, C.uint(len(variations)))
}

// SetVarCoordsDesign sets the design coordinates of all axes in order.
func (f *Font) SetVarCoordsDesign(coords []float32) {
	var p *C.float
	if 0 < len(coords) {
		p = (*C.float)(unsafe.Pointer(&coords[0]))
	}
	C.hb_font_set_var_coords_design(f.h.get(), p, C.uint(len(coords)))
}

// SetVarCoordsNormalized sets the normalized coordinates of all axes in order, in 2.14 fixed point.
func (f *Font) SetVarCoordsNormalized(coords []int32) {
	var p *C.int
	if 0 < len(coords) {
		p = (*C.int)(unsafe.Pointer(&coords[0]))
	}
	C.hb_font_set_var_coords_normalized(f.h.get(), p, C.uint(len(coords)))
}

// VarCoordsNormalized returns the normalized coordinates of all axes in 2.14 fixed point. The slice
// is valid until the variations of the font are changed.
func (f *Font) VarCoordsNormalized() []int32 {
	var n C.uint
	p := C.hb_font_get_var_coords_normalized(f.h.get(), &n)
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(p)), int(n))
}

////////////////////////////////////////////////////////////////

// HExtents returns the extents for horizontal text.
func (f *Font) HExtents() (FontExtents, bool) {
	var extents FontExtents
	ok := C.hb_font_get_h_extents(f.h.get(), (*C.hb_font_extents_t)(unsafe.Pointer(&extents)))
	return extents, goBool(ok)
}

// VExtents returns the extents for vertical text.
func (f *Font) VExtents() (FontExtents, bool) {
	var extents FontExtents
	ok := C.hb_font_get_v_extents(f.h.get(), (*C.hb_font_extents_t)(unsafe.Pointer(&extents)))
	return extents, goBool(ok)
}

// ExtentsForDirection returns the extents for the direction, synthesizing them if the font has none.
func (f *Font) ExtentsForDirection(direction Direction) FontExtents {
	var extents FontExtents
	C.hb_font_get_extents_for_direction(f.h.get(), C.hb_direction_t(direction), (*C.hb_font_extents_t)(unsafe.Pointer(&extents)))
	return extents
}

// Glyph returns the glyph for a codepoint, or for the variation sequence if variationSelector is
// not zero.
func (f *Font) Glyph(unicode, variationSelector Codepoint) (Codepoint, bool) {
	var glyph C.hb_codepoint_t
	ok := C.hb_font_get_glyph(f.h.get(), C.hb_codepoint_t(unicode), C.hb_codepoint_t(variationSelector), &glyph)
	return Codepoint(glyph), goBool(ok)
}

func (f *Font) NominalGlyph(unicode Codepoint) (Codepoint, bool) {
	var glyph C.hb_codepoint_t
	ok := C.hb_font_get_nominal_glyph(f.h.get(), C.hb_codepoint_t(unicode), &glyph)
	return Codepoint(glyph), goBool(ok)
}

func (f *Font) VariationGlyph(unicode, variationSelector Codepoint) (Codepoint, bool) {
	var glyph C.hb_codepoint_t
	ok := C.hb_font_get_variation_glyph(f.h.get(), C.hb_codepoint_t(unicode), C.hb_codepoint_t(variationSelector), &glyph)
	return Codepoint(glyph), goBool(ok)
}

func (f *Font) GlyphHAdvance(glyph Codepoint) Position {
	return Position(C.hb_font_get_glyph_h_advance(f.h.get(), C.hb_codepoint_t(glyph)))
}

func (f *Font) GlyphVAdvance(glyph Codepoint) Position {
	return Position(C.hb_font_get_glyph_v_advance(f.h.get(), C.hb_codepoint_t(glyph)))
}

// GlyphHAdvances returns the horizontal advances of glyphs.
func (f *Font) GlyphHAdvances(glyphs []Codepoint) []Position {
	advances := make([]Position, len(glyphs))
	if len(glyphs) == 0 {
		return advances
	}
	C.hb_font_get_glyph_h_advances(f.h.get(), C.uint(len(glyphs)), (*C.hb_codepoint_t)(unsafe.Pointer(&glyphs[0])), C.uint(unsafe.Sizeof(glyphs[0])), (*C.hb_position_t)(unsafe.Pointer(&advances[0])), C.uint(unsafe.Sizeof(advances[0])))
	return advances
}

// GlyphVAdvances returns the vertical advances of glyphs.
func (f *Font) GlyphVAdvances(glyphs []Codepoint) []Position {
	advances := make([]Position, len(glyphs))
	if len(glyphs) == 0 {
		return advances
	}
	C.hb_font_get_glyph_v_advances(f.h.get(), C.uint(len(glyphs)), (*C.hb_codepoint_t)(unsafe.Pointer(&glyphs[0])), C.uint(unsafe.Sizeof(glyphs[0])), (*C.hb_position_t)(unsafe.Pointer(&advances[0])), C.uint(unsafe.Sizeof(advances[0])))
	return advances
}

// GlyphAdvanceForDirection returns the advance of the glyph along the direction.
func (f *Font) GlyphAdvanceForDirection(glyph Codepoint, direction Direction) (Position, Position) {
	var x, y C.hb_position_t
	C.hb_font_get_glyph_advance_for_direction(f.h.get(), C.hb_codepoint_t(glyph), C.hb_direction_t(direction), &x, &y)
	return Position(x), Position(y)
}

func (f *Font) GlyphHOrigin(glyph Codepoint) (Position, Position, bool) {
	var x, y C.hb_position_t
	ok := C.hb_font_get_glyph_h_origin(f.h.get(), C.hb_codepoint_t(glyph), &x, &y)
	return Position(x), Position(y), goBool(ok)
}

func (f *Font) GlyphVOrigin(glyph Codepoint) (Position, Position, bool) {
	var x, y C.hb_position_t
	ok := C.hb_font_get_glyph_v_origin(f.h.get(), C.hb_codepoint_t(glyph), &x, &y)
	return Position(x), Position(y), goBool(ok)
}

// GlyphOriginForDirection returns the origin of the glyph for the direction, synthesizing it if the
// font has none.
func (f *Font) GlyphOriginForDirection(glyph Codepoint, direction Direction) (Position, Position) {
	var x, y C.hb_position_t
	C.hb_font_get_glyph_origin_for_direction(f.h.get(), C.hb_codepoint_t(glyph), C.hb_direction_t(direction), &x, &y)
	return Position(x), Position(y)
}

// AddGlyphOriginForDirection adds the origin of the glyph for the direction to (x,y).
func (f *Font) AddGlyphOriginForDirection(glyph Codepoint, direction Direction, x, y Position) (Position, Position) {
	cx, cy := C.hb_position_t(x), C.hb_position_t(y)
	C.hb_font_add_glyph_origin_for_direction(f.h.get(), C.hb_codepoint_t(glyph), C.hb_direction_t(direction), &cx, &cy)
	return Position(cx), Position(cy)
}

// SubtractGlyphOriginForDirection subtracts the origin of the glyph for the direction from (x,y).
func (f *Font) SubtractGlyphOriginForDirection(glyph Codepoint, direction Direction, x, y Position) (Position, Position) {
	cx, cy := C.hb_position_t(x), C.hb_position_t(y)
	C.hb_font_subtract_glyph_origin_for_direction(f.h.get(), C.hb_codepoint_t(glyph), C.hb_direction_t(direction), &cx, &cy)
	return Position(cx), Position(cy)
}

func (f *Font) GlyphExtents(glyph Codepoint) (GlyphExtents, bool) {
	var extents GlyphExtents
	ok := C.hb_font_get_glyph_extents(f.h.get(), C.hb_codepoint_t(glyph), (*C.hb_glyph_extents_t)(unsafe.Pointer(&extents)))
	return extents, goBool(ok)
}

// GlyphExtentsForOrigin returns the extents of the glyph relative to its origin for the direction.
func (f *Font) GlyphExtentsForOrigin(glyph Codepoint, direction Direction) (GlyphExtents, bool) {
	var extents GlyphExtents
	ok := C.hb_font_get_glyph_extents_for_origin(f.h.get(), C.hb_codepoint_t(glyph), C.hb_direction_t(direction), (*C.hb_glyph_extents_t)(unsafe.Pointer(&extents)))
	return extents, goBool(ok)
}

func (f *Font) GlyphContourPoint(glyph Codepoint, pointIndex int) (Position, Position, bool) {
	var x, y C.hb_position_t
	ok := C.hb_font_get_glyph_contour_point(f.h.get(), C.hb_codepoint_t(glyph), C.uint(pointIndex), &x, &y)
	return Position(x), Position(y), goBool(ok)
}

func (f *Font) GlyphContourPointForOrigin(glyph Codepoint, pointIndex int, direction Direction) (Position, Position, bool) {
	var x, y C.hb_position_t
	ok := C.hb_font_get_glyph_contour_point_for_origin(f.h.get(), C.hb_codepoint_t(glyph), C.uint(pointIndex), C.hb_direction_t(direction), &x, &y)
	return Position(x), Position(y), goBool(ok)
}

// GlyphName returns the name of the glyph as stored in the font.
func (f *Font) GlyphName(glyph Codepoint) (string, bool) {
	var buf [128]C.char
	if !goBool(C.hb_font_get_glyph_name(f.h.get(), C.hb_codepoint_t(glyph), &buf[0], C.uint(len(buf)))) {
		return "", false
	}
	return C.GoString(&buf[0]), true
}

func (f *Font) GlyphFromName(name string) (Codepoint, bool) {
	if name == "" {
		return 0, false
	}
	cname, n := cString(name)
	defer freeCString(cname)
	var glyph C.hb_codepoint_t
	ok := C.hb_font_get_glyph_from_name(f.h.get(), cname, n, &glyph)
	return Codepoint(glyph), goBool(ok)
}

// GlyphToString returns the glyph name, or "gidN" if the glyph has no name.
func (f *Font) GlyphToString(glyph Codepoint) string {
	var buf [128]C.char
	C.hb_font_glyph_to_string(f.h.get(), C.hb_codepoint_t(glyph), &buf[0], C.uint(len(buf)))
	return C.GoString(&buf[0])
}

// GlyphFromString parses a glyph name, "gidN", "uniXXXX", or a glyph index.
func (f *Font) GlyphFromString(s string) (Codepoint, bool) {
	if s == "" {
		return 0, false
	}
	cs, n := cString(s)
	defer freeCString(cs)
	var glyph C.hb_codepoint_t
	ok := C.hb_font_glyph_from_string(f.h.get(), cs, n, &glyph)
	return Codepoint(glyph), goBool(ok)
}
