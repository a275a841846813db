package harfbuzz

//#include "shim.h"
import "C"
import (
	"unsafe"
)

func featuresPtr(features []Feature) *C.hb_feature_t {
	if len(features) == 0 {
		return nil
	}
	return (*C.hb_feature_t)(unsafe.Pointer(&features[0]))
}

// Shape shapes the text in buf with font, replacing it by positioned glyphs. The direction, script,
// and language of the buffer must be set, for example by GuessSegmentProperties.
func Shape(font *Font, buf *Buffer, features []Feature) {
	C.hb_shape(font.h.get(), buf.h.get(), featuresPtr(features), C.uint(len(features)))
}

// ShapeFull is like Shape but tries the named shapers in order, or the default list if shapers is
// empty. It returns false if none of the shapers succeeded.
func ShapeFull(font *Font, buf *Buffer, features []Feature, shapers []string) bool {
	var cshapers **C.char
	if 0 < len(shapers) {
		list := make([]*C.char, len(shapers)+1)
		for i, shaper := range shapers {
			list[i] = C.CString(shaper)
			defer C.free(unsafe.Pointer(list[i]))
		}
		cshapers = &list[0]
	}
	return goBool(C.hb_shape_full(font.h.get(), buf.h.get(), featuresPtr(features), C.uint(len(features)), cshapers))
}

// Shapers returns the names of the shapers the library was built with.
func Shapers() []string {
	var shapers []string
	for p := C.hb_shape_list_shapers(); *p != nil; p = (**C.char)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		shapers = append(shapers, C.GoString(*p))
	}
	return shapers
}
