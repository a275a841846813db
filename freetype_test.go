//go:build freetype

package harfbuzz

import (
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestFreeType(t *testing.T) {
	lib, err := NewFTLibrary()
	test.Error(t, err)
	defer lib.Destroy()

	ftFace, err := lib.NewFace(goregular.TTF, 0)
	test.Error(t, err)
	test.Error(t, ftFace.SetCharSize(fixed.I(12), 72))

	font := FontFromFTFace(ftFace)
	ftFace.Destroy()
	defer font.Destroy()
	test.That(t, font.FTFace() != nil)

	ref := goRegularFont(t)
	gA, _ := ref.NominalGlyph('A')
	glyph, ok := font.NominalGlyph('A')
	test.That(t, ok)
	test.T(t, glyph, gA)

	// FreeType provides the contour points
	_, _, ok = font.GlyphContourPoint(glyph, 0)
	test.That(t, ok)

	buf := NewBuffer()
	defer buf.Destroy()
	buf.AddString("abc", 0, -1)
	buf.GuessSegmentProperties()
	Shape(font, buf, nil)
	test.T(t, buf.Len(), 3)
	for _, pos := range buf.Positions() {
		test.That(t, 0 < pos.XAdvance)
	}

	test.That(t, goRegularFont(t).FTFace() == nil)

	_, err = lib.NewFace([]byte("not a font"), 0)
	test.That(t, err != nil)
	_, err = lib.LoadFace("missing.ttf", 0)
	test.That(t, err != nil)
}

func TestFreeTypeFuncs(t *testing.T) {
	lib, err := NewFTLibrary()
	test.Error(t, err)
	defer lib.Destroy()

	ftFace, err := lib.NewFace(goregular.TTF, 0)
	test.Error(t, err)
	face := FaceFromFTFace(ftFace)
	ftFace.Destroy()

	font := NewFont(face)
	defer font.Destroy()
	font.FTSetFuncs()
	test.That(t, font.FTFace() != nil)
	font.SetFTLoadFlags(0)
	font.FTFontChanged()

	glyph, ok := font.NominalGlyph('a')
	test.That(t, ok)
	test.That(t, glyph != 0)
}
