package harfbuzz

//#include "shim.h"
import "C"
import (
	"fmt"
	"strings"
	"unsafe"
)

// ReplacementCodepoint is the default codepoint that replaces invalid input.
const ReplacementCodepoint Codepoint = 0xFFFD

// ContentType is the state of a buffer: empty, holding Unicode text, or holding shaped glyphs.
type ContentType int

const (
	ContentTypeInvalid ContentType = iota
	ContentTypeUnicode
	ContentTypeGlyphs
)

func (t ContentType) String() string {
	switch t {
	case ContentTypeUnicode:
		return "unicode"
	case ContentTypeGlyphs:
		return "glyphs"
	}
	return "invalid"
}

// BufferFlags control the treatment of the text boundaries and default ignorables.
type BufferFlags uint32

const (
	BufferFlagDefault                    BufferFlags = 0
	BufferFlagBOT                        BufferFlags = 1 << 0
	BufferFlagEOT                        BufferFlags = 1 << 1
	BufferFlagPreserveDefaultIgnorables  BufferFlags = 1 << 2
	BufferFlagRemoveDefaultIgnorables    BufferFlags = 1 << 3
	BufferFlagDoNotInsertDottedCircle    BufferFlags = 1 << 4
	BufferFlagVerify                     BufferFlags = 1 << 5
	BufferFlagProduceUnsafeToConcat      BufferFlags = 1 << 6
	BufferFlagProduceSafeToInsertTatweel BufferFlags = 1 << 7
)

// ClusterLevel controls how clusters are merged during shaping.
type ClusterLevel int

const (
	ClusterLevelMonotoneGraphemes ClusterLevel = iota
	ClusterLevelMonotoneCharacters
	ClusterLevelCharacters
)

// Buffer holds the text to shape and, after shaping, the glyphs and their positions.
type Buffer struct {
	h handle[*C.hb_buffer_t]
}

func destroyBuffer(p *C.hb_buffer_t) {
	C.hb_buffer_destroy(p)
}

func newBuffer(p *C.hb_buffer_t) *Buffer {
	return &Buffer{newHandle(p, destroyBuffer)}
}

// NewBuffer returns an empty buffer. It panics if the buffer could not be allocated.
func NewBuffer() *Buffer {
	b := newBuffer(C.hb_buffer_create())
	if !goBool(C.hb_buffer_allocation_successful(b.h.get())) {
		b.Destroy()
		panic(ErrOutOfMemory)
	}
	return b
}

// NewBufferCapacity returns an empty buffer with room for n items. It panics if the memory could not
// be allocated.
func NewBufferCapacity(n int) *Buffer {
	b := NewBuffer()
	b.Reserve(n)
	return b
}

// EmptyBuffer returns the immutable empty buffer singleton.
func EmptyBuffer() *Buffer {
	return newBuffer(C.hb_buffer_get_empty())
}

// BufferFromRaw takes ownership of one reference to a native hb_buffer_t.
func BufferFromRaw(p unsafe.Pointer) *Buffer {
	return newBuffer((*C.hb_buffer_t)(p))
}

// Raw returns the native hb_buffer_t without transferring ownership.
func (b *Buffer) Raw() unsafe.Pointer {
	return unsafe.Pointer(b.h.get())
}

// Release returns the native hb_buffer_t and transfers its reference to the caller. It panics with
// ErrBorrowed for borrowed handles, call Reference first to obtain an owned one.
func (b *Buffer) Release() unsafe.Pointer {
	return unsafe.Pointer(b.h.release())
}

// Reference returns a new handle to the same buffer.
func (b *Buffer) Reference() *Buffer {
	return newBuffer(C.hb_buffer_reference(b.h.get()))
}

// Destroy releases the reference held by the handle. It is safe to call more than once. Destroy is
// a no-op for the buffers passed to message functions.
func (b *Buffer) Destroy() {
	b.h.destroy()
}

// Reserve preallocates room for n items. It panics if the memory could not be allocated.
func (b *Buffer) Reserve(n int) {
	if !goBool(C.hb_buffer_pre_allocate(b.h.get(), C.uint(n))) {
		panic(ErrOutOfMemory)
	}
}

// Reset returns the buffer to its initial state, including the Unicode functions, flags, and
// replacement codepoint.
func (b *Buffer) Reset() {
	C.hb_buffer_reset(b.h.get())
}

// ClearContents empties the buffer and its segment properties, but keeps the Unicode functions,
// flags, and replacement codepoint.
func (b *Buffer) ClearContents() {
	C.hb_buffer_clear_contents(b.h.get())
}

// Len returns the number of items in the buffer.
func (b *Buffer) Len() int {
	return int(C.hb_buffer_get_length(b.h.get()))
}

// SetLength truncates or extends the buffer to n items, new items are zeroed.
func (b *Buffer) SetLength(n int) error {
	if !goBool(C.hb_buffer_set_length(b.h.get(), C.uint(n))) {
		return ErrOutOfMemory
	}
	return nil
}

////////////////////////////////////////////////////////////////

func checkRange(start, end, n int) {
	if start < 0 || end < start || n < end {
		panic(fmt.Sprintf("harfbuzz: item range [%d:%d] out of range with length %d", start, end, n))
	}
}

// itemRange checks the item range [start,end) against the text length and returns the offset and
// length as expected by the native library. A negative end denotes the end of the text.
func (b *Buffer) itemRange(textLen, start, end int) (C.uint, C.int) {
	if end < 0 {
		end = textLen
	}
	checkRange(start, end, textLen)
	if ContentType(C.hb_buffer_get_content_type(b.h.get())) == ContentTypeGlyphs {
		panic("harfbuzz: adding text to a buffer holding glyphs")
	}
	return C.uint(start), C.int(end - start)
}

// AddUTF8 adds the item [start,end) of UTF-8 encoded text. The text around the item is used as
// context for shaping. Invalid sequences are replaced by the replacement codepoint.
func (b *Buffer) AddUTF8(text []byte, start, end int) {
	offset, length := b.itemRange(len(text), start, end)
	var p *C.char
	if 0 < len(text) {
		p = (*C.char)(unsafe.Pointer(&text[0]))
	}
	C.hb_buffer_add_utf8(b.h.get(), p, C.int(len(text)), offset, length)
}

// AddString adds the item [start,end) of text, see AddUTF8.
func (b *Buffer) AddString(text string, start, end int) {
	offset, length := b.itemRange(len(text), start, end)
	var p *C.char
	if 0 < len(text) {
		p = (*C.char)(unsafe.Pointer(unsafe.StringData(text)))
	}
	C.hb_buffer_add_utf8(b.h.get(), p, C.int(len(text)), offset, length)
}

// AddUTF16 adds the item [start,end) of UTF-16 encoded text, see AddUTF8.
func (b *Buffer) AddUTF16(text []uint16, start, end int) {
	offset, length := b.itemRange(len(text), start, end)
	var p *C.uint16_t
	if 0 < len(text) {
		p = (*C.uint16_t)(unsafe.Pointer(&text[0]))
	}
	C.hb_buffer_add_utf16(b.h.get(), p, C.int(len(text)), offset, length)
}

// AddUTF32 adds the item [start,end) of UTF-32 encoded text, see AddUTF8. Values that are not
// Unicode scalar values are replaced.
func (b *Buffer) AddUTF32(text []uint32, start, end int) {
	offset, length := b.itemRange(len(text), start, end)
	var p *C.uint32_t
	if 0 < len(text) {
		p = (*C.uint32_t)(unsafe.Pointer(&text[0]))
	}
	C.hb_buffer_add_utf32(b.h.get(), p, C.int(len(text)), offset, length)
}

// AddCodepoints adds the item [start,end) of codepoints without validating them.
func (b *Buffer) AddCodepoints(text []Codepoint, start, end int) {
	offset, length := b.itemRange(len(text), start, end)
	var p *C.hb_codepoint_t
	if 0 < len(text) {
		p = (*C.hb_codepoint_t)(unsafe.Pointer(&text[0]))
	}
	C.hb_buffer_add_codepoints(b.h.get(), p, C.int(len(text)), offset, length)
}

// AddLatin1 adds the item [start,end) of ISO-8859-1 encoded text.
func (b *Buffer) AddLatin1(text []byte, start, end int) {
	offset, length := b.itemRange(len(text), start, end)
	var p *C.uint8_t
	if 0 < len(text) {
		p = (*C.uint8_t)(unsafe.Pointer(&text[0]))
	}
	C.hb_buffer_add_latin1(b.h.get(), p, C.int(len(text)), offset, length)
}

// Add appends a single codepoint with the given cluster.
func (b *Buffer) Add(cp Codepoint, cluster uint32) {
	C.hb_buffer_add(b.h.get(), C.hb_codepoint_t(cp), C.uint(cluster))
}

// Append copies the items [start,end) of src to the end of b. A negative end denotes the end of src.
// It panics if the range does not lie within src or if both buffers hold items of different content
// types. Glyph positions are zeroed for whichever buffer has none.
func (b *Buffer) Append(src *Buffer, start, end int) {
	n := src.Len()
	if end < 0 {
		end = n
	}
	checkRange(start, end, n)
	if 0 < b.Len() && 0 < n {
		if dst, from := b.ContentType(), src.ContentType(); dst != from {
			panic(fmt.Sprintf("harfbuzz: appending %v to a buffer holding %v", from, dst))
		}
		// both must agree on having positions
		C.hb_buffer_get_glyph_positions(b.h.get(), nil)
		C.hb_buffer_get_glyph_positions(src.h.get(), nil)
	}
	C.hb_buffer_append(b.h.get(), src.h.get(), C.uint(start), C.uint(end))
}

////////////////////////////////////////////////////////////////

func (b *Buffer) ContentType() ContentType {
	return ContentType(C.hb_buffer_get_content_type(b.h.get()))
}

// SetContentType sets the content type, which is needed when filling a buffer with glyphs by hand.
func (b *Buffer) SetContentType(contentType ContentType) {
	C.hb_buffer_set_content_type(b.h.get(), C.hb_buffer_content_type_t(contentType))
}

func (b *Buffer) Direction() Direction {
	return Direction(C.hb_buffer_get_direction(b.h.get()))
}

func (b *Buffer) SetDirection(direction Direction) {
	C.hb_buffer_set_direction(b.h.get(), C.hb_direction_t(direction))
}

func (b *Buffer) Script() Script {
	return Script(C.hb_buffer_get_script(b.h.get()))
}

func (b *Buffer) SetScript(script Script) {
	C.hb_buffer_set_script(b.h.get(), C.hb_script_t(script))
}

func (b *Buffer) Language() Language {
	return Language{C.hb_buffer_get_language(b.h.get())}
}

func (b *Buffer) SetLanguage(language Language) {
	C.hb_buffer_set_language(b.h.get(), language.p)
}

func (b *Buffer) SegmentProperties() SegmentProperties {
	var props C.hb_segment_properties_t
	C.hb_buffer_get_segment_properties(b.h.get(), &props)
	return segmentPropertiesFromC(&props)
}

func (b *Buffer) SetSegmentProperties(props SegmentProperties) {
	cprops := props.c()
	C.hb_buffer_set_segment_properties(b.h.get(), &cprops)
}

// GuessSegmentProperties sets the unset segment properties from the contents: the script of the
// first character that is not common, inherited, or unknown, the horizontal direction of that
// script or else left-to-right, and the default language.
func (b *Buffer) GuessSegmentProperties() {
	C.hb_buffer_guess_segment_properties(b.h.get())
}

func (b *Buffer) Flags() BufferFlags {
	return BufferFlags(C.hb_buffer_get_flags(b.h.get()))
}

func (b *Buffer) SetFlags(flags BufferFlags) {
	C.hb_buffer_set_flags(b.h.get(), C.hb_buffer_flags_t(flags))
}

func (b *Buffer) ClusterLevel() ClusterLevel {
	return ClusterLevel(C.hb_buffer_get_cluster_level(b.h.get()))
}

func (b *Buffer) SetClusterLevel(level ClusterLevel) {
	C.hb_buffer_set_cluster_level(b.h.get(), C.hb_buffer_cluster_level_t(level))
}

func (b *Buffer) ReplacementCodepoint() Codepoint {
	return Codepoint(C.hb_buffer_get_replacement_codepoint(b.h.get()))
}

// SetReplacementCodepoint sets the codepoint that replaces invalid input, ReplacementCodepoint by
// default.
func (b *Buffer) SetReplacementCodepoint(cp Codepoint) {
	C.hb_buffer_set_replacement_codepoint(b.h.get(), C.hb_codepoint_t(cp))
}

func (b *Buffer) InvisibleGlyph() Codepoint {
	return Codepoint(C.hb_buffer_get_invisible_glyph(b.h.get()))
}

// SetInvisibleGlyph sets the glyph that replaces invisible characters, zero removes them.
func (b *Buffer) SetInvisibleGlyph(glyph Codepoint) {
	C.hb_buffer_set_invisible_glyph(b.h.get(), C.hb_codepoint_t(glyph))
}

// UnicodeFuncs returns a new handle to the Unicode functions of the buffer.
func (b *Buffer) UnicodeFuncs() *UnicodeFuncs {
	return newUnicodeFuncs(C.hb_unicode_funcs_reference(C.hb_buffer_get_unicode_funcs(b.h.get())))
}

// SetUnicodeFuncs sets the Unicode functions used for segmentation and normalization. The buffer
// takes its own reference to ufuncs.
func (b *Buffer) SetUnicodeFuncs(ufuncs *UnicodeFuncs) {
	C.hb_buffer_set_unicode_funcs(b.h.get(), ufuncs.h.get())
}

////////////////////////////////////////////////////////////////

// Infos returns the items of the buffer. The slice is valid until the buffer is modified.
func (b *Buffer) Infos() []GlyphInfo {
	var n C.uint
	p := C.hb_buffer_get_glyph_infos(b.h.get(), &n)
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*GlyphInfo)(unsafe.Pointer(p)), int(n))
}

// Positions returns the glyph positions of a shaped buffer, with the same length as Infos. The slice
// is valid until the buffer is modified.
func (b *Buffer) Positions() []GlyphPosition {
	var n C.uint
	p := C.hb_buffer_get_glyph_positions(b.h.get(), &n)
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*GlyphPosition)(unsafe.Pointer(p)), int(n))
}

// Reverse reverses the order of the items.
func (b *Buffer) Reverse() {
	C.hb_buffer_reverse(b.h.get())
}

// ReverseRange reverses the order of the items in [start,end). It panics if the range does not lie
// within the buffer.
func (b *Buffer) ReverseRange(start, end int) {
	checkRange(start, end, b.Len())
	C.hb_buffer_reverse_range(b.h.get(), C.uint(start), C.uint(end))
}

// ReverseClusters reverses the order of the clusters while keeping the order of the items within
// each cluster.
func (b *Buffer) ReverseClusters() {
	C.hb_buffer_reverse_clusters(b.h.get())
}

// NormalizeGlyphs reorders the glyphs of each cluster by their offsets so that they are in a
// canonical order.
func (b *Buffer) NormalizeGlyphs() {
	C.hb_buffer_normalize_glyphs(b.h.get())
}

// MessageFunc receives the debug messages of the shaper, returning false stops shaping the
// current stage.
type MessageFunc func(buf *Buffer, font *Font, msg string) bool

// SetMessageFunc sets the function that receives debug messages while shaping, nil removes it.
func (b *Buffer) SetMessageFunc(fn MessageFunc) {
	C.hbgo_buffer_set_message_func(b.h.get(), userData(fn, fn == nil))
}

////////////////////////////////////////////////////////////////

// SerializeFormat is the output format of Buffer.Serialize.
type SerializeFormat uint32

const (
	SerializeFormatInvalid SerializeFormat = 0
	SerializeFormatText    SerializeFormat = 'T'<<24 | 'E'<<16 | 'X'<<8 | 'T'
	SerializeFormatJSON    SerializeFormat = 'J'<<24 | 'S'<<16 | 'O'<<8 | 'N'
)

// ParseSerializeFormat parses "text" or "json".
func ParseSerializeFormat(s string) SerializeFormat {
	cs, n := cString(s)
	defer freeCString(cs)
	return SerializeFormat(C.hb_buffer_serialize_format_from_string(cs, n))
}

// SerializeFlags select the fields written by Buffer.Serialize.
type SerializeFlags uint32

const (
	SerializeFlagDefault      SerializeFlags = 0
	SerializeFlagNoClusters   SerializeFlags = 1 << 0
	SerializeFlagNoPositions  SerializeFlags = 1 << 1
	SerializeFlagNoGlyphNames SerializeFlags = 1 << 2
	SerializeFlagGlyphExtents SerializeFlags = 1 << 3
	SerializeFlagGlyphFlags   SerializeFlags = 1 << 4
	SerializeFlagNoAdvances   SerializeFlags = 1 << 5
)

// Serialize writes the glyphs of a shaped buffer in the format used by the hb-shape utility. The
// font is used for glyph names and extents and may be nil. Buffers not holding glyphs serialize to
// the empty string.
func (b *Buffer) Serialize(font *Font, format SerializeFormat, flags SerializeFlags) string {
	if b.ContentType() != ContentTypeGlyphs {
		return ""
	}

	var cfont *C.hb_font_t
	if font != nil {
		cfont = font.h.get()
	}

	var sb strings.Builder
	var out [4096]C.char
	for start, end := 0, b.Len(); start < end; {
		var consumed C.uint
		n := C.hb_buffer_serialize_glyphs(b.h.get(), C.uint(start), C.uint(end), &out[0], C.uint(len(out)), &consumed, cfont, C.hb_buffer_serialize_format_t(format), C.hb_buffer_serialize_flags_t(flags))
		if n == 0 {
			break
		}
		sb.WriteString(C.GoStringN(&out[0], C.int(consumed)))
		start += int(n)
	}
	return sb.String()
}

// Deserialize appends the glyphs in s, as written by Serialize, to the buffer. The buffer must be
// empty or hold glyphs.
func (b *Buffer) Deserialize(s string, font *Font, format SerializeFormat) error {
	if ct := b.ContentType(); ct == ContentTypeUnicode || (ct == ContentTypeInvalid && 0 < b.Len()) {
		return fmt.Errorf("deserializing glyphs into a buffer holding %v", ct)
	}

	var cfont *C.hb_font_t
	if font != nil {
		cfont = font.h.get()
	}

	cs, n := cString(s)
	defer freeCString(cs)
	var end *C.char
	if !goBool(C.hb_buffer_deserialize_glyphs(b.h.get(), cs, n, &end, cfont, C.hb_buffer_serialize_format_t(format))) {
		pos := uintptr(unsafe.Pointer(end)) - uintptr(unsafe.Pointer(cs))
		return fmt.Errorf("invalid glyphs at position %d", pos)
	}
	return nil
}

// DiffFlags describe the differences found by Buffer.Diff.
type DiffFlags uint32

const (
	DiffFlagEqual               DiffFlags = 0
	DiffFlagContentTypeMismatch DiffFlags = 1 << 0
	DiffFlagLengthMismatch      DiffFlags = 1 << 1
	DiffFlagNotdefPresent       DiffFlags = 1 << 2
	DiffFlagDottedCirclePresent DiffFlags = 1 << 3
	DiffFlagCodepointMismatch   DiffFlags = 1 << 4
	DiffFlagClusterMismatch     DiffFlags = 1 << 5
	DiffFlagGlyphFlagsMismatch  DiffFlags = 1 << 6
	DiffFlagPositionMismatch    DiffFlags = 1 << 7
)

// Diff compares b against a reference buffer. Positions are allowed to differ by at most
// positionFuzz.
func (b *Buffer) Diff(reference *Buffer, dottedCircleGlyph Codepoint, positionFuzz uint) DiffFlags {
	return DiffFlags(C.hb_buffer_diff(b.h.get(), reference.h.get(), C.hb_codepoint_t(dottedCircleGlyph), C.uint(positionFuzz)))
}
