package harfbuzz

import (
	"slices"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/test"
)

func shapeString(font *Font, s string, features []Feature) *Buffer {
	buf := NewBuffer()
	buf.AddString(s, 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, features)
	return buf
}

func TestShape(t *testing.T) {
	font := goRegularFont(t)
	buf := shapeString(font, "Hello, world!", nil)
	defer buf.Destroy()

	test.T(t, buf.ContentType(), ContentTypeGlyphs)
	test.T(t, buf.Direction(), LeftToRight)
	test.T(t, buf.Script(), ScriptLatin)
	infos, positions := buf.Infos(), buf.Positions()
	test.T(t, len(infos), buf.Len())
	test.T(t, len(positions), buf.Len())
	test.That(t, slices.IsSortedFunc(infos, func(a, b GlyphInfo) int { return int(a.Cluster) - int(b.Cluster) }), "clusters are monotone")

	for i, info := range infos {
		glyph, _ := font.NominalGlyph(Codepoint("Hello, world!"[info.Cluster]))
		test.T(t, info.Codepoint, glyph, i)
		test.T(t, positions[i].YAdvance, Position(0))
		test.That(t, 0 < positions[i].XAdvance)
		test.T(t, info.Flags()&^(GlyphFlagUnsafeToBreak|GlyphFlagUnsafeToConcat|GlyphFlagSafeToInsertTatweel), GlyphFlags(0))
	}
}

func TestShapeInvalidUTF8(t *testing.T) {
	buf := shapeString(goRegularFont(t), "A\xFFB", nil)
	defer buf.Destroy()
	test.T(t, buf.Len(), 3)
	test.T(t, clusters(buf), []uint32{0, 1, 2})
}

func TestShapeRTL(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abc", 0, -1)
	buf.SetDirection(RightToLeft)
	buf.GuessSegmentProperties()
	Shape(goRegularFont(t), buf, nil)
	test.T(t, buf.Direction(), RightToLeft)
	test.T(t, clusters(buf), []uint32{2, 1, 0})
}

func TestShapeVertical(t *testing.T) {
	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("ab", 0, -1)
	buf.SetDirection(TopToBottom)
	buf.GuessSegmentProperties()
	Shape(goRegularFont(t), buf, nil)
	for _, pos := range buf.Positions() {
		test.T(t, pos.XAdvance, Position(0))
		test.That(t, pos.YAdvance < 0)
	}
}

func TestShapeScale(t *testing.T) {
	font := goRegularFont(t)
	buf := shapeString(font, "a", nil)
	advance := buf.Positions()[0].XAdvance
	buf.Destroy()

	x, y := font.Scale()
	font.SetScale(2*x, 2*y)
	buf = shapeString(font, "a", nil)
	defer buf.Destroy()
	test.T(t, buf.Positions()[0].XAdvance, 2*advance)
}

func TestShapeLigature(t *testing.T) {
	font := NewFont(NewFace(NewBlob(lmroman10regular.TTF), 0))
	defer font.Destroy()

	var tests = []struct {
		features string
		n        int
	}{
		{"", 1},
		{"liga", 1},
		{"liga=0", 2},
		{"-liga", 2},
	}
	for _, tt := range tests {
		t.Run(tt.features, func(t *testing.T) {
			features, err := ParseFeatures(tt.features)
			test.Error(t, err)
			buf := shapeString(font, "fi", features)
			defer buf.Destroy()
			test.T(t, buf.Len(), tt.n)
			test.T(t, buf.Infos()[0].Cluster, uint32(0))
		})
	}
}

func TestShapeFull(t *testing.T) {
	shapers := Shapers()
	test.That(t, slices.Contains(shapers, "ot"), shapers)
	test.That(t, slices.Contains(shapers, "fallback"), shapers)

	font := goRegularFont(t)
	for _, shaper := range []string{"ot", "fallback"} {
		t.Run(shaper, func(t *testing.T) {
			buf := NewBuffer()
			defer buf.Destroy()
			buf.AddString("abc", 0, -1)
			buf.GuessSegmentProperties()
			test.That(t, ShapeFull(font, buf, nil, []string{shaper}))
			test.T(t, buf.ContentType(), ContentTypeGlyphs)
			test.T(t, buf.Len(), 3)
		})
	}

	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	test.That(t, !ShapeFull(font, buf, nil, []string{"bogus"}))

	buf.ClearContents()
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	test.That(t, ShapeFull(font, buf, nil, nil))
	test.T(t, buf.ContentType(), ContentTypeGlyphs)
}
