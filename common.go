package harfbuzz

//#include "shim.h"
import "C"
import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// Tag is a four byte identifier packed big-endian, used for tables, scripts, languages, features,
// and variation axes.
type Tag uint32

// TagNone is the empty tag.
const TagNone Tag = 0

// MakeTag packs four bytes into a tag.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(binary.BigEndian.Uint32([]byte{a, b, c, d}))
}

// NewTag packs the first four bytes of s into a tag, padding with spaces when s is shorter.
func NewTag(s string) Tag {
	if s == "" {
		return TagNone
	}
	b := [4]byte{' ', ' ', ' ', ' '}
	copy(b[:], s)
	return Tag(binary.BigEndian.Uint32(b[:]))
}

func (t Tag) String() string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(t))
	return string(b[:])
}

// Codepoint is either a Unicode codepoint or a glyph index, depending on the content of the buffer.
type Codepoint = uint32

// Mask holds the feature bits and glyph flags of a GlyphInfo.
type Mask = uint32

// Position is a distance in font units scaled by the font's scale.
type Position int32

// Fixed interprets the position as 26.6 fixed point, which is the case for fonts whose scale was set
// by Font.SetSize.
func (p Position) Fixed() fixed.Int26_6 {
	return fixed.Int26_6(p)
}

////////////////////////////////////////////////////////////////

// Direction is the text direction of a buffer.
type Direction uint32

const (
	DirectionInvalid Direction = 0
	LeftToRight      Direction = 4
	RightToLeft      Direction = 5
	TopToBottom      Direction = 6
	BottomToTop      Direction = 7
)

// ParseDirection parses "ltr", "rtl", "ttb", or "btt". Only the first letter is significant.
func ParseDirection(s string) Direction {
	if s == "" {
		return DirectionInvalid
	}
	cs, n := cString(s)
	defer freeCString(cs)
	return Direction(C.hb_direction_from_string(cs, n))
}

func (d Direction) IsValid() bool {
	return d&^3 == 4
}

func (d Direction) IsHorizontal() bool {
	return d&^1 == 4
}

func (d Direction) IsVertical() bool {
	return d&^1 == 6
}

func (d Direction) IsForward() bool {
	return d&^2 == 4
}

func (d Direction) IsBackward() bool {
	return d&^2 == 5
}

// Reverse returns the opposite direction on the same axis.
func (d Direction) Reverse() Direction {
	if !d.IsValid() {
		return d
	}
	return d ^ 1
}

func (d Direction) String() string {
	return C.GoString(C.hb_direction_to_string(C.hb_direction_t(d)))
}

////////////////////////////////////////////////////////////////

// Language is an interned BCP 47 language. The zero value is the unset language.
type Language struct {
	p C.hb_language_t
}

// NewLanguage returns the interned language for a BCP 47 tag, case-insensitively.
func NewLanguage(s string) Language {
	if s == "" {
		return Language{}
	}
	cs, n := cString(s)
	defer freeCString(cs)
	return Language{C.hb_language_from_string(cs, n)}
}

// LanguageFromTag converts a language of golang.org/x/text/language.
func LanguageFromTag(tag language.Tag) Language {
	if tag == language.Und {
		return Language{}
	}
	return NewLanguage(tag.String())
}

// DefaultLanguage returns the language of the process locale.
func DefaultLanguage() Language {
	return Language{C.hb_language_get_default()}
}

func (l Language) IsValid() bool {
	return l.p != nil
}

// Tag parses the language with golang.org/x/text/language.
func (l Language) Tag() (language.Tag, error) {
	if !l.IsValid() {
		return language.Und, nil
	}
	return language.Parse(l.String())
}

func (l Language) String() string {
	if l.p == nil {
		return ""
	}
	return C.GoString(C.hb_language_to_string(l.p))
}

////////////////////////////////////////////////////////////////

// Feature is an OpenType feature applied to the cluster range [Start,End) of a buffer.
type Feature struct {
	Tag   Tag
	Value uint32
	Start uint32
	End   uint32
}

const (
	FeatureGlobalStart uint32 = 0
	FeatureGlobalEnd   uint32 = 0xFFFFFFFF
)

var _ [unsafe.Sizeof(Feature{})]byte = [C.sizeof_hb_feature_t]byte{}

// NewFeature returns a feature applied to the whole buffer.
func NewFeature(tag Tag, value uint32) Feature {
	return Feature{tag, value, FeatureGlobalStart, FeatureGlobalEnd}
}

// ParseFeature parses a feature in CSS-like syntax, such as "liga=0", "-kern", or "aalt[3:5]=2".
func ParseFeature(s string) (Feature, error) {
	cs, n := cString(s)
	defer freeCString(cs)
	var feature Feature
	if C.hb_feature_from_string(cs, n, (*C.hb_feature_t)(unsafe.Pointer(&feature))) == 0 {
		return Feature{}, fmt.Errorf("invalid feature: %q", s)
	}
	return feature, nil
}

// ParseFeatures parses a comma separated list of features.
func ParseFeatures(s string) ([]Feature, error) {
	var features []Feature
	for _, item := range splitList(s) {
		feature, err := ParseFeature(item)
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}
	return features, nil
}

func (f Feature) String() string {
	var buf [128]C.char
	C.hb_feature_to_string((*C.hb_feature_t)(unsafe.Pointer(&f)), &buf[0], C.uint(len(buf)))
	return C.GoString(&buf[0])
}

// Variation is a value on a variation axis of a variable font.
type Variation struct {
	Tag   Tag
	Value float32
}

var _ [unsafe.Sizeof(Variation{})]byte = [C.sizeof_hb_variation_t]byte{}

// ParseVariation parses a variation such as "wght=700".
func ParseVariation(s string) (Variation, error) {
	cs, n := cString(s)
	defer freeCString(cs)
	var variation Variation
	if C.hb_variation_from_string(cs, n, (*C.hb_variation_t)(unsafe.Pointer(&variation))) == 0 {
		return Variation{}, fmt.Errorf("invalid variation: %q", s)
	}
	return variation, nil
}

// ParseVariations parses a comma separated list of variations.
func ParseVariations(s string) ([]Variation, error) {
	var variations []Variation
	for _, item := range splitList(s) {
		variation, err := ParseVariation(item)
		if err != nil {
			return nil, err
		}
		variations = append(variations, variation)
	}
	return variations, nil
}

func (v Variation) String() string {
	var buf [128]C.char
	C.hb_variation_to_string((*C.hb_variation_t)(unsafe.Pointer(&v)), &buf[0], C.uint(len(buf)))
	return C.GoString(&buf[0])
}

////////////////////////////////////////////////////////////////

// GlyphInfo holds the codepoint (before shaping) or glyph index (after shaping) of a buffer item,
// together with the cluster it belongs to.
type GlyphInfo struct {
	Codepoint Codepoint
	Mask      Mask
	Cluster   uint32
	var1      uint32
	var2      uint32
}

var _ [unsafe.Sizeof(GlyphInfo{})]byte = [C.sizeof_hb_glyph_info_t]byte{}

// GlyphFlags are the flags stored in the mask of a shaped GlyphInfo.
type GlyphFlags uint32

const (
	GlyphFlagUnsafeToBreak GlyphFlags = 1 << iota
	GlyphFlagUnsafeToConcat
	GlyphFlagSafeToInsertTatweel
)

// Flags returns the glyph flags of a shaped item.
func (info *GlyphInfo) Flags() GlyphFlags {
	return GlyphFlags(C.hbgo_glyph_info_get_glyph_flags((*C.hb_glyph_info_t)(unsafe.Pointer(info))))
}

// GlyphPosition holds the advance and offset of a shaped glyph.
type GlyphPosition struct {
	XAdvance Position
	YAdvance Position
	XOffset  Position
	YOffset  Position
	var1     uint32
}

var _ [unsafe.Sizeof(GlyphPosition{})]byte = [C.sizeof_hb_glyph_position_t]byte{}

// FontExtents holds the line metrics of a font.
type FontExtents struct {
	Ascender  Position
	Descender Position
	LineGap   Position
	reserved  [9]Position
}

var _ [unsafe.Sizeof(FontExtents{})]byte = [C.sizeof_hb_font_extents_t]byte{}

// GlyphExtents holds the ink box of a glyph. YBearing is the top of the box and Height is usually
// negative.
type GlyphExtents struct {
	XBearing Position
	YBearing Position
	Width    Position
	Height   Position
}

var _ [unsafe.Sizeof(GlyphExtents{})]byte = [C.sizeof_hb_glyph_extents_t]byte{}

// SegmentProperties are the properties a buffer must have before shaping.
type SegmentProperties struct {
	Direction Direction
	Script    Script
	Language  Language
}

func (props SegmentProperties) c() C.hb_segment_properties_t {
	return C.hb_segment_properties_t{
		direction: C.hb_direction_t(props.Direction),
		script:    C.hb_script_t(props.Script),
		language:  props.Language.p,
	}
}

func segmentPropertiesFromC(props *C.hb_segment_properties_t) SegmentProperties {
	return SegmentProperties{
		Direction: Direction(props.direction),
		Script:    Script(props.script),
		Language:  Language{props.language},
	}
}

////////////////////////////////////////////////////////////////

// GeneralCategory is the Unicode general category of a codepoint.
type GeneralCategory uint32

const (
	Control GeneralCategory = iota
	Format
	Unassigned
	PrivateUse
	Surrogate
	LowercaseLetter
	ModifierLetter
	OtherLetter
	TitlecaseLetter
	UppercaseLetter
	SpacingMark
	EnclosingMark
	NonSpacingMark
	DecimalNumber
	LetterNumber
	OtherNumber
	ConnectPunctuation
	DashPunctuation
	ClosePunctuation
	FinalPunctuation
	InitialPunctuation
	OtherPunctuation
	OpenPunctuation
	CurrencySymbol
	ModifierSymbol
	MathSymbol
	OtherSymbol
	LineSeparator
	ParagraphSeparator
	SpaceSeparator
)

// CombiningClass is the Unicode canonical combining class of a codepoint.
type CombiningClass uint8

const (
	NotReordered CombiningClass = 0
	Overlay      CombiningClass = 1
	Nukta        CombiningClass = 7
	KanaVoicing  CombiningClass = 8
	Virama       CombiningClass = 9
	Above        CombiningClass = 230
	Below        CombiningClass = 220
)

////////////////////////////////////////////////////////////////

func cString(s string) (*C.char, C.int) {
	return C.CString(s), C.int(len(s))
}

func freeCString(cs *C.char) {
	C.free(unsafe.Pointer(cs))
}

func splitList(s string) []string {
	items := strings.FieldsFunc(s, func(r rune) bool { return r == ',' })
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}
