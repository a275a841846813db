//go:build freetype

package harfbuzz

/*
#cgo pkg-config: freetype2
#include <stdlib.h>
#include <hb-ft.h>

static void hbgo_ft_free_data(void *object) {
	free(((FT_Face)object)->generic.data);
}

// the face owns data from now on
static void hbgo_ft_set_data(FT_Face face, void *data) {
	face->generic.data = data;
	face->generic.finalizer = hbgo_ft_free_data;
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"golang.org/x/image/math/fixed"
)

// FTLibrary is a FreeType library instance. Faces created from it must be destroyed before the
// library.
type FTLibrary struct {
	h handle[C.FT_Library]
}

func NewFTLibrary() (*FTLibrary, error) {
	var lib C.FT_Library
	if err := C.FT_Init_FreeType(&lib); err != 0 {
		return nil, fmt.Errorf("freetype: init error %d", int(err))
	}
	return &FTLibrary{newHandle(lib, func(lib C.FT_Library) { C.FT_Done_FreeType(lib) })}, nil
}

func (lib *FTLibrary) Destroy() {
	lib.h.destroy()
}

// FTFace is a reference-counted FreeType face.
type FTFace struct {
	h handle[C.FT_Face]
}

func destroyFTFace(face C.FT_Face) {
	C.FT_Done_Face(face)
}

// NewFace opens the face at index of the font data. The data is copied and freed together with the
// face.
func (lib *FTLibrary) NewFace(data []byte, index int) (*FTFace, error) {
	cdata := C.CBytes(data)
	var face C.FT_Face
	if err := C.FT_New_Memory_Face(lib.h.get(), (*C.FT_Byte)(cdata), C.FT_Long(len(data)), C.FT_Long(index), &face); err != 0 {
		C.free(cdata)
		return nil, fmt.Errorf("freetype: open error %d", int(err))
	}
	C.hbgo_ft_set_data(face, cdata)
	return &FTFace{newHandle(face, destroyFTFace)}, nil
}

// LoadFace opens the face at index of the named font file.
func (lib *FTLibrary) LoadFace(filename string, index int) (*FTFace, error) {
	cfilename := C.CString(filename)
	defer C.free(unsafe.Pointer(cfilename))
	var face C.FT_Face
	if err := C.FT_New_Face(lib.h.get(), cfilename, C.FT_Long(index), &face); err != 0 {
		return nil, fmt.Errorf("freetype: %s: open error %d", filename, int(err))
	}
	return &FTFace{newHandle(face, destroyFTFace)}, nil
}

// Raw returns the native FT_Face without transferring ownership.
func (face *FTFace) Raw() unsafe.Pointer {
	return unsafe.Pointer(face.h.get())
}

// Destroy releases the reference held by the handle. The face is freed once the HarfBuzz objects
// created from it are destroyed as well.
func (face *FTFace) Destroy() {
	face.h.destroy()
}

// SetCharSize sets the nominal size in 26.6 points at the given resolution.
func (face *FTFace) SetCharSize(size fixed.Int26_6, dpi int) error {
	if err := C.FT_Set_Char_Size(face.h.get(), 0, C.FT_F26Dot6(size), C.FT_UInt(dpi), C.FT_UInt(dpi)); err != 0 {
		return fmt.Errorf("freetype: set size error %d", int(err))
	}
	return nil
}

// FaceFromFTFace returns a face backed by the FreeType face, which gains a reference.
func FaceFromFTFace(face *FTFace) *Face {
	return newFace(C.hb_ft_face_create_referenced(face.h.get()))
}

// FontFromFTFace returns a font backed by the FreeType face, which gains a reference. The font's
// metrics are taken from FreeType.
func FontFromFTFace(face *FTFace) *Font {
	return newFont(C.hb_ft_font_create_referenced(face.h.get()))
}

// FTSetFuncs routes the metric queries of the font through FreeType.
func (f *Font) FTSetFuncs() {
	C.hb_ft_font_set_funcs(f.h.get())
}

// FTFontChanged must be called after the size or variations of the FreeType face of the font were
// changed.
func (f *Font) FTFontChanged() {
	C.hb_ft_font_changed(f.h.get())
}

// FTFace returns a borrowed handle to the FreeType face of the font, or nil if the font is not
// backed by FreeType.
func (f *Font) FTFace() *FTFace {
	face := C.hb_ft_font_get_face(f.h.get())
	if face == nil {
		return nil
	}
	return &FTFace{borrowHandle(face)}
}

// SetFTLoadFlags sets the FT_LOAD_* flags used when loading glyphs.
func (f *Font) SetFTLoadFlags(flags int) {
	C.hb_ft_font_set_load_flags(f.h.get(), C.int(flags))
}
