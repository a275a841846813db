package harfbuzz

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

func codepoints(buf *Buffer) []Codepoint {
	var cps []Codepoint
	for _, info := range buf.Infos() {
		cps = append(cps, info.Codepoint)
	}
	return cps
}

func clusters(buf *Buffer) []uint32 {
	var cs []uint32
	for _, info := range buf.Infos() {
		cs = append(cs, info.Cluster)
	}
	return cs
}

func TestBuffer(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	test.T(t, buf.Len(), 0)
	test.T(t, buf.ContentType(), ContentTypeInvalid)
	test.T(t, buf.Direction(), DirectionInvalid)
	test.T(t, buf.Script(), ScriptInvalid)
	test.That(t, !buf.Language().IsValid())
	test.T(t, buf.ReplacementCodepoint(), ReplacementCodepoint)
	test.T(t, buf.Flags(), BufferFlagDefault)
	test.T(t, buf.ClusterLevel(), ClusterLevelMonotoneGraphemes)
	test.T(t, len(buf.Infos()), 0)

	buf.AddString("A\xFFB", 0, -1)
	test.T(t, buf.ContentType(), ContentTypeUnicode)
	test.T(t, codepoints(buf), []Codepoint{'A', ReplacementCodepoint, 'B'})
	test.T(t, clusters(buf), []uint32{0, 1, 2})

	buf.SetFlags(BufferFlagBOT | BufferFlagEOT)
	buf.SetClusterLevel(ClusterLevelCharacters)
	buf.SetInvisibleGlyph(3)
	test.T(t, buf.Flags(), BufferFlagBOT|BufferFlagEOT)
	test.T(t, buf.ClusterLevel(), ClusterLevelCharacters)
	test.T(t, buf.InvisibleGlyph(), Codepoint(3))

	ref := buf.Reference()
	test.T(t, ref.Len(), 3)
	ref.Destroy()
	test.T(t, buf.Len(), 3)
}

func TestBufferAdd(t *testing.T) {
	var tests = []struct {
		name       string
		add        func(*Buffer)
		codepoints []Codepoint
		clusters   []uint32
	}{
		{"utf8", func(buf *Buffer) {
			buf.AddUTF8([]byte("héllo"), 0, -1)
		}, []Codepoint{'h', 0xE9, 'l', 'l', 'o'}, []uint32{0, 1, 3, 4, 5}},
		{"utf8 item", func(buf *Buffer) {
			buf.AddString("hello world", 6, -1)
		}, []Codepoint{'w', 'o', 'r', 'l', 'd'}, []uint32{6, 7, 8, 9, 10}},
		{"utf8 empty item", func(buf *Buffer) {
			buf.AddString("abc", 1, 1)
		}, nil, nil},
		{"utf16", func(buf *Buffer) {
			buf.AddUTF16(utf16.Encode([]rune("a😀b")), 0, -1)
		}, []Codepoint{'a', 0x1F600, 'b'}, []uint32{0, 1, 3}},
		{"utf16 unpaired surrogate", func(buf *Buffer) {
			buf.AddUTF16([]uint16{'a', 0xD800, 'b'}, 0, -1)
		}, []Codepoint{'a', ReplacementCodepoint, 'b'}, []uint32{0, 1, 2}},
		{"utf32", func(buf *Buffer) {
			buf.AddUTF32([]uint32{'a', 0xD800, 0x110000, 'b'}, 0, -1)
		}, []Codepoint{'a', ReplacementCodepoint, ReplacementCodepoint, 'b'}, []uint32{0, 1, 2, 3}},
		{"codepoints", func(buf *Buffer) {
			buf.AddCodepoints([]Codepoint{'a', 0xD800}, 0, -1)
		}, []Codepoint{'a', 0xD800}, []uint32{0, 1}},
		{"latin1", func(buf *Buffer) {
			buf.AddLatin1([]byte{'a', 0xE9}, 1, 2)
		}, []Codepoint{0xE9}, []uint32{1}},
		{"single", func(buf *Buffer) {
			buf.SetContentType(ContentTypeUnicode)
			buf.Add('x', 7)
			buf.Add('y', 9)
		}, []Codepoint{'x', 'y'}, []uint32{7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer()
			defer buf.Destroy()
			tt.add(buf)
			test.T(t, buf.Len(), len(tt.codepoints))
			test.T(t, codepoints(buf), tt.codepoints)
			test.T(t, clusters(buf), tt.clusters)
		})
	}
}

func TestBufferAddPanics(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	expectPanic(t, "harfbuzz: item range [2:1] out of range with length 3", func() { buf.AddString("abc", 2, 1) })
	expectPanic(t, "harfbuzz: item range [0:4] out of range with length 3", func() { buf.AddString("abc", 0, 4) })
	expectPanic(t, "harfbuzz: item range [-1:3] out of range with length 3", func() { buf.AddUTF32([]uint32{1, 2, 3}, -1, -1) })
	test.T(t, buf.Len(), 0)

	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	Shape(goRegularFont(t), buf, nil)
	expectPanic(t, "harfbuzz: adding text to a buffer holding glyphs", func() { buf.AddString("d", 0, -1) })
	test.T(t, buf.Len(), 3)
}

func TestBufferReplacement(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.SetReplacementCodepoint(0x2423)
	buf.AddString("a\xFF", 0, -1)
	test.T(t, codepoints(buf), []Codepoint{'a', 0x2423})

	buf.ClearContents()
	test.T(t, buf.Len(), 0)
	test.T(t, buf.ContentType(), ContentTypeInvalid)
	test.T(t, buf.ReplacementCodepoint(), Codepoint(0x2423))

	buf.SetFlags(BufferFlagBOT)
	buf.Reset()
	test.T(t, buf.ReplacementCodepoint(), ReplacementCodepoint)
	test.T(t, buf.Flags(), BufferFlagDefault)
}

func TestBufferSegmentProperties(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	test.T(t, buf.Direction(), LeftToRight)
	test.T(t, buf.Script(), ScriptLatin)
	test.That(t, buf.Language() == DefaultLanguage())

	buf.ClearContents()
	test.T(t, buf.Direction(), DirectionInvalid)
	buf.AddString("שלום", 0, -1)
	buf.GuessSegmentProperties()
	test.T(t, buf.Direction(), RightToLeft)
	test.T(t, buf.Script(), ScriptHebrew)

	// set properties are kept
	buf.ClearContents()
	buf.SetDirection(TopToBottom)
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	test.T(t, buf.Direction(), TopToBottom)

	props := SegmentProperties{RightToLeft, ScriptArabic, NewLanguage("ar")}
	buf.ClearContents()
	buf.SetSegmentProperties(props)
	test.T(t, buf.SegmentProperties(), props)
	test.T(t, buf.Language(), NewLanguage("ar"))
	buf.SetLanguage(NewLanguage("fa"))
	buf.SetScript(ScriptLatin)
	test.T(t, buf.SegmentProperties(), SegmentProperties{RightToLeft, ScriptLatin, NewLanguage("fa")})
}

func TestBufferReverse(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abcde", 0, -1)
	buf.Reverse()
	test.T(t, codepoints(buf), []Codepoint{'e', 'd', 'c', 'b', 'a'})
	buf.ReverseRange(1, 4)
	test.T(t, codepoints(buf), []Codepoint{'e', 'b', 'c', 'd', 'a'})
}

func TestBufferReverseRange(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abcde", 0, -1)
	buf.ReverseRange(3, 5)
	test.T(t, codepoints(buf), []Codepoint{'a', 'b', 'c', 'e', 'd'})
	buf.ReverseRange(2, 2)
	buf.ReverseRange(0, 0)
	test.T(t, codepoints(buf), []Codepoint{'a', 'b', 'c', 'e', 'd'})

	expectPanic(t, "harfbuzz: item range [1:100] out of range with length 5", func() { buf.ReverseRange(1, 100) })
	expectPanic(t, "harfbuzz: item range [0:10] out of range with length 5", func() { buf.ReverseRange(0, buf.Len()+5) })
	expectPanic(t, "harfbuzz: item range [-1:3] out of range with length 5", func() { buf.ReverseRange(-1, 3) })
	expectPanic(t, "harfbuzz: item range [4:2] out of range with length 5", func() { buf.ReverseRange(4, 2) })
	test.T(t, codepoints(buf), []Codepoint{'a', 'b', 'c', 'e', 'd'})
}

func TestBufferReverseClusters(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.SetContentType(ContentTypeUnicode)
	for i, cp := range "abcde" {
		buf.Add(Codepoint(cp), []uint32{0, 0, 1, 1, 2}[i])
	}
	buf.ReverseClusters()
	test.T(t, codepoints(buf), []Codepoint{'e', 'c', 'd', 'a', 'b'})
	test.T(t, clusters(buf), []uint32{2, 1, 1, 0, 0})
}

func TestBufferLength(t *testing.T) {
	buf := NewBufferCapacity(64)
	defer buf.Destroy()
	test.T(t, buf.Len(), 0)
	buf.Reserve(128)

	buf.AddString("abc", 0, -1)
	test.Error(t, buf.SetLength(1))
	test.T(t, codepoints(buf), []Codepoint{'a'})
	test.Error(t, buf.SetLength(3))
	test.T(t, codepoints(buf), []Codepoint{'a', 0, 0})
	test.Error(t, buf.SetLength(0))
	test.T(t, buf.Len(), 0)
}

func TestBufferAppend(t *testing.T) {
	src := NewBuffer()
	defer src.Destroy()
	src.AddString("hello", 0, -1)

	dst := NewBuffer()
	defer dst.Destroy()
	dst.AddString("ab", 0, -1)
	dst.Append(src, 1, 3)
	test.T(t, codepoints(dst), []Codepoint{'a', 'b', 'e', 'l'})
	dst.Append(src, 4, -1)
	test.T(t, codepoints(dst), []Codepoint{'a', 'b', 'e', 'l', 'o'})

	expectPanic(t, "harfbuzz: item range [2:9] out of range with length 5", func() { dst.Append(src, 2, 9) })
	expectPanic(t, "harfbuzz: item range [-1:5] out of range with length 5", func() { dst.Append(src, -1, -1) })
	test.T(t, dst.Len(), 5)
}

func TestBufferAppendContentType(t *testing.T) {
	font := goRegularFont(t)
	glyphs := NewBuffer()
	defer glyphs.Destroy()
	glyphs.AddString("ab", 0, -1)
	glyphs.GuessSegmentProperties()
	Shape(font, glyphs, nil)

	text := NewBuffer()
	defer text.Destroy()
	text.AddString("cd", 0, -1)
	expectPanic(t, "harfbuzz: appending glyphs to a buffer holding unicode", func() { text.Append(glyphs, 0, -1) })
	expectPanic(t, "harfbuzz: appending unicode to a buffer holding glyphs", func() { glyphs.Append(text, 0, -1) })
	test.T(t, text.Len(), 2)
	test.T(t, glyphs.Len(), 2)

	// an empty buffer takes the content type of its source
	empty := NewBuffer()
	defer empty.Destroy()
	empty.Append(glyphs, 0, -1)
	test.T(t, empty.ContentType(), ContentTypeGlyphs)
	test.T(t, codepoints(empty), codepoints(glyphs))

	// glyph buffers with and without positions
	manual := NewBuffer()
	defer manual.Destroy()
	manual.SetContentType(ContentTypeGlyphs)
	manual.Add(glyphs.Infos()[0].Codepoint, 0)
	manual.Append(glyphs, 0, -1)
	test.T(t, manual.Len(), 3)
	test.T(t, len(manual.Positions()), 3)
}

func TestBufferEmpty(t *testing.T) {
	a, b := EmptyBuffer(), EmptyBuffer()
	defer a.Destroy()
	defer b.Destroy()
	test.T(t, a.Raw(), b.Raw())
	a.AddString("abc", 0, -1)
	test.T(t, a.Len(), 0)
	test.T(t, b.Len(), 0)
}

func TestBufferMessage(t *testing.T) {
	font := goRegularFont(t)
	buf := NewBuffer()
	defer buf.Destroy()

	var msgs []string
	buf.SetMessageFunc(func(mbuf *Buffer, mfont *Font, msg string) bool {
		test.T(t, mbuf.Raw(), buf.Raw())
		test.T(t, mfont.Raw(), font.Raw())
		msgs = append(msgs, msg)
		return true
	})
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, nil)
	test.That(t, 0 < len(msgs), "no messages")
	test.T(t, buf.Len(), 3)

	n := len(msgs)
	buf.SetMessageFunc(nil)
	buf.ClearContents()
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, nil)
	test.T(t, len(msgs), n)
}

func TestBufferMessageRelease(t *testing.T) {
	live := liveUserData.Load()
	buf := NewBuffer()
	buf.SetMessageFunc(func(*Buffer, *Font, string) bool { return true })
	test.T(t, liveUserData.Load(), live+1)
	buf.SetMessageFunc(func(*Buffer, *Font, string) bool { return false })
	test.T(t, liveUserData.Load(), live+1)
	buf.Destroy()
	test.T(t, liveUserData.Load(), live)

	buf = NewBuffer()
	buf.SetMessageFunc(func(*Buffer, *Font, string) bool { return true })
	buf.SetMessageFunc(nil)
	test.T(t, liveUserData.Load(), live)
	buf.Destroy()
}

func TestBufferSerialize(t *testing.T) {
	font := goRegularFont(t)
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("ab", 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, nil)
	infos := buf.Infos()

	s := buf.Serialize(font, SerializeFormatText, SerializeFlagNoPositions|SerializeFlagNoGlyphNames)
	test.String(t, strings.Trim(s, "[]"), fmt.Sprintf("%d=0|%d=1", infos[0].Codepoint, infos[1].Codepoint))

	s = buf.Serialize(nil, SerializeFormatText, SerializeFlagNoGlyphNames|SerializeFlagNoClusters)
	pos := buf.Positions()
	test.String(t, strings.Trim(s, "[]"), fmt.Sprintf("%d+%d|%d+%d", infos[0].Codepoint, pos[0].XAdvance, infos[1].Codepoint, pos[1].XAdvance))

	json := buf.Serialize(font, SerializeFormatJSON, SerializeFlagNoGlyphNames)
	test.That(t, strings.Contains(json, fmt.Sprintf(`"g":%d`, infos[0].Codepoint)), json)

	test.T(t, ParseSerializeFormat("text"), SerializeFormatText)
	test.T(t, ParseSerializeFormat("json"), SerializeFormatJSON)
	test.T(t, ParseSerializeFormat("yaml"), SerializeFormatInvalid)

	empty := NewBuffer()
	defer empty.Destroy()
	test.String(t, empty.Serialize(font, SerializeFormatText, SerializeFlagDefault), "")

	text := NewBuffer()
	defer text.Destroy()
	text.AddString("abc", 0, -1)
	test.String(t, text.Serialize(font, SerializeFormatText, SerializeFlagDefault), "")
	test.String(t, text.Serialize(nil, SerializeFormatJSON, SerializeFlagDefault), "")
	test.T(t, text.Len(), 3)
}

func TestBufferSerializeLong(t *testing.T) {
	font := goRegularFont(t)
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString(strings.Repeat("abcdefghij", 100), 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, nil)

	s := buf.Serialize(font, SerializeFormatText, SerializeFlagDefault)
	test.T(t, strings.Count(s, "|"), buf.Len()-1)
}

func TestBufferDeserialize(t *testing.T) {
	font := goRegularFont(t)
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, nil)
	s := buf.Serialize(font, SerializeFormatText, SerializeFlagNoPositions)

	buf2 := NewBuffer()
	defer buf2.Destroy()
	test.Error(t, buf2.Deserialize(s, font, SerializeFormatText))
	test.T(t, buf2.ContentType(), ContentTypeGlyphs)
	if diff := cmp.Diff(codepoints(buf), codepoints(buf2)); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
	test.T(t, clusters(buf2), clusters(buf))
	test.T(t, buf2.Diff(buf, 0, 0)&(DiffFlagCodepointMismatch|DiffFlagClusterMismatch|DiffFlagLengthMismatch), DiffFlagEqual)

	buf3 := NewBuffer()
	defer buf3.Destroy()
	test.That(t, buf3.Deserialize("!!garbage!!", font, SerializeFormatText) != nil)

	text := NewBuffer()
	defer text.Destroy()
	text.AddString("abc", 0, -1)
	test.That(t, text.Deserialize(s, font, SerializeFormatText) != nil)
	test.T(t, text.ContentType(), ContentTypeUnicode)
	test.T(t, text.Len(), 3)

	// glyphs may be appended to a buffer holding glyphs
	test.Error(t, buf2.Deserialize(s, font, SerializeFormatText))
	test.T(t, buf2.Len(), 2*buf.Len())
}

func TestBufferDiff(t *testing.T) {
	font := goRegularFont(t)
	shape := func(s string) *Buffer {
		buf := NewBuffer()
		buf.AddString(s, 0, -1)
		buf.GuessSegmentProperties()
		Shape(font, buf, nil)
		return buf
	}
	a, b, c := shape("abc"), shape("abc"), shape("ab")
	defer a.Destroy()
	defer b.Destroy()
	defer c.Destroy()
	test.T(t, a.Diff(b, 0, 0), DiffFlagEqual)
	test.That(t, a.Diff(c, 0, 0)&DiffFlagLengthMismatch != 0)

	d := NewBuffer()
	defer d.Destroy()
	d.AddString("abc", 0, -1)
	test.That(t, a.Diff(d, 0, 0)&DiffFlagContentTypeMismatch != 0)

	e := shape("abd")
	defer e.Destroy()
	test.That(t, a.Diff(e, 0, 0)&DiffFlagCodepointMismatch != 0)

	a.NormalizeGlyphs()
	test.T(t, a.Diff(b, 0, 0), DiffFlagEqual)
}

func TestContentType(t *testing.T) {
	test.String(t, ContentTypeInvalid.String(), "invalid")
	test.String(t, ContentTypeUnicode.String(), "unicode")
	test.String(t, ContentTypeGlyphs.String(), "glyphs")
}
