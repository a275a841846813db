package harfbuzz

//#include "shim.h"
import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// Only declarations may precede the exported functions, the trampolines calling them live in shim.c.

//export hbgoReleaseHandle
func hbgoReleaseHandle(h C.uintptr_t) {
	releaseUserData(cgo.Handle(h))
}

//export hbgoBufferMessage
func hbgoBufferMessage(buffer *C.hb_buffer_t, font *C.hb_font_t, message *C.char, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(MessageFunc)
	var f *Font
	if font != nil {
		f = &Font{borrowHandle(font)}
	}
	return cBool(fn(&Buffer{borrowHandle(buffer)}, f, C.GoString(message)))
}

//export hbgoFontExtents
func hbgoFontExtents(font *C.hb_font_t, extents *C.hb_font_extents_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(FontExtentsFunc)
	e, ok := fn(&Font{borrowHandle(font)})
	if ok {
		*(*FontExtents)(unsafe.Pointer(extents)) = e
	}
	return cBool(ok)
}

//export hbgoNominalGlyph
func hbgoNominalGlyph(font *C.hb_font_t, unicode C.hb_codepoint_t, glyph *C.hb_codepoint_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(NominalGlyphFunc)
	g, ok := fn(&Font{borrowHandle(font)}, Codepoint(unicode))
	*glyph = C.hb_codepoint_t(g)
	return cBool(ok)
}

//export hbgoVariationGlyph
func hbgoVariationGlyph(font *C.hb_font_t, unicode, variationSelector C.hb_codepoint_t, glyph *C.hb_codepoint_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(VariationGlyphFunc)
	g, ok := fn(&Font{borrowHandle(font)}, Codepoint(unicode), Codepoint(variationSelector))
	*glyph = C.hb_codepoint_t(g)
	return cBool(ok)
}

//export hbgoGlyphAdvance
func hbgoGlyphAdvance(font *C.hb_font_t, glyph C.hb_codepoint_t, h C.uintptr_t) C.hb_position_t {
	fn := cgo.Handle(h).Value().(GlyphAdvanceFunc)
	return C.hb_position_t(fn(&Font{borrowHandle(font)}, Codepoint(glyph)))
}

//export hbgoGlyphOrigin
func hbgoGlyphOrigin(font *C.hb_font_t, glyph C.hb_codepoint_t, x, y *C.hb_position_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(GlyphOriginFunc)
	ox, oy, ok := fn(&Font{borrowHandle(font)}, Codepoint(glyph))
	*x, *y = C.hb_position_t(ox), C.hb_position_t(oy)
	return cBool(ok)
}

//export hbgoGlyphExtents
func hbgoGlyphExtents(font *C.hb_font_t, glyph C.hb_codepoint_t, extents *C.hb_glyph_extents_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(GlyphExtentsFunc)
	e, ok := fn(&Font{borrowHandle(font)}, Codepoint(glyph))
	if ok {
		*(*GlyphExtents)(unsafe.Pointer(extents)) = e
	}
	return cBool(ok)
}

//export hbgoGlyphContourPoint
func hbgoGlyphContourPoint(font *C.hb_font_t, glyph C.hb_codepoint_t, pointIndex C.uint, x, y *C.hb_position_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(GlyphContourPointFunc)
	px, py, ok := fn(&Font{borrowHandle(font)}, Codepoint(glyph), int(pointIndex))
	*x, *y = C.hb_position_t(px), C.hb_position_t(py)
	return cBool(ok)
}

//export hbgoGlyphName
func hbgoGlyphName(font *C.hb_font_t, glyph C.hb_codepoint_t, name *C.char, size C.uint, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(GlyphNameFunc)
	s, ok := fn(&Font{borrowHandle(font)}, Codepoint(glyph))
	if size == 0 {
		return cBool(ok)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(name)), int(size))
	n := 0
	if ok {
		n = copy(buf[:len(buf)-1], s)
	}
	buf[n] = 0
	return cBool(ok)
}

//export hbgoGlyphFromName
func hbgoGlyphFromName(font *C.hb_font_t, name *C.char, length C.int, glyph *C.hb_codepoint_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(GlyphFromNameFunc)
	var s string
	if length < 0 {
		s = C.GoString(name)
	} else {
		s = C.GoStringN(name, length)
	}
	g, ok := fn(&Font{borrowHandle(font)}, s)
	*glyph = C.hb_codepoint_t(g)
	return cBool(ok)
}

//export hbgoCombiningClass
func hbgoCombiningClass(unicode C.hb_codepoint_t, h C.uintptr_t) C.uint {
	fn := cgo.Handle(h).Value().(CombiningClassFunc)
	return C.uint(fn(Codepoint(unicode)))
}

//export hbgoEastAsianWidth
func hbgoEastAsianWidth(unicode C.hb_codepoint_t, h C.uintptr_t) C.uint {
	fn := cgo.Handle(h).Value().(EastAsianWidthFunc)
	return C.uint(fn(Codepoint(unicode)))
}

//export hbgoGeneralCategory
func hbgoGeneralCategory(unicode C.hb_codepoint_t, h C.uintptr_t) C.uint {
	fn := cgo.Handle(h).Value().(GeneralCategoryFunc)
	return C.uint(fn(Codepoint(unicode)))
}

//export hbgoMirroring
func hbgoMirroring(unicode C.hb_codepoint_t, h C.uintptr_t) C.hb_codepoint_t {
	fn := cgo.Handle(h).Value().(MirroringFunc)
	return C.hb_codepoint_t(fn(Codepoint(unicode)))
}

//export hbgoScript
func hbgoScript(unicode C.hb_codepoint_t, h C.uintptr_t) C.uint {
	fn := cgo.Handle(h).Value().(ScriptFunc)
	return C.uint(fn(Codepoint(unicode)))
}

//export hbgoCompose
func hbgoCompose(a, b C.hb_codepoint_t, ab *C.hb_codepoint_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(ComposeFunc)
	c, ok := fn(Codepoint(a), Codepoint(b))
	*ab = C.hb_codepoint_t(c)
	return cBool(ok)
}

//export hbgoDecompose
func hbgoDecompose(ab C.hb_codepoint_t, a, b *C.hb_codepoint_t, h C.uintptr_t) C.hb_bool_t {
	fn := cgo.Handle(h).Value().(DecomposeFunc)
	ca, cb, ok := fn(Codepoint(ab))
	*a, *b = C.hb_codepoint_t(ca), C.hb_codepoint_t(cb)
	return cBool(ok)
}

//export hbgoDecomposeCompatibility
func hbgoDecomposeCompatibility(u C.hb_codepoint_t, decomposed *C.hb_codepoint_t, h C.uintptr_t) C.uint {
	fn := cgo.Handle(h).Value().(DecomposeCompatibilityFunc)
	cps := fn(Codepoint(u))
	if MaxDecompositionLen < len(cps) {
		cps = cps[:MaxDecompositionLen]
	}
	out := unsafe.Slice(decomposed, MaxDecompositionLen)
	for i, cp := range cps {
		out[i] = C.hb_codepoint_t(cp)
	}
	return C.uint(len(cps))
}
