package harfbuzz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

func TestTag(t *testing.T) {
	for _, s := range []string{"liga", "kern", "GSUB", "OS/2", "cmap", "DFLT", "wght", "1234"} {
		t.Run(s, func(t *testing.T) {
			tag := NewTag(s)
			test.T(t, tag, MakeTag(s[0], s[1], s[2], s[3]))
			test.String(t, tag.String(), s)
		})
	}

	test.T(t, NewTag("ab"), MakeTag('a', 'b', ' ', ' '))
	test.T(t, NewTag("abcdef"), NewTag("abcd"))
	test.T(t, NewTag(""), TagNone)
	test.T(t, uint32(NewTag("liga")), uint32(0x6C696761))
}

func TestPosition(t *testing.T) {
	test.T(t, Position(64).Fixed(), fixed.I(1))
	test.T(t, Position(-96).Fixed(), -fixed.I(1)-fixed.I(1)/2)
}

func TestDirection(t *testing.T) {
	var tests = []struct {
		s          string
		dir        Direction
		horizontal bool
		forward    bool
	}{
		{"ltr", LeftToRight, true, true},
		{"rtl", RightToLeft, true, false},
		{"ttb", TopToBottom, false, true},
		{"btt", BottomToTop, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			dir := ParseDirection(tt.s)
			test.T(t, dir, tt.dir)
			test.String(t, dir.String(), tt.s)
			test.That(t, dir.IsValid())
			test.T(t, dir.IsHorizontal(), tt.horizontal)
			test.T(t, dir.IsVertical(), !tt.horizontal)
			test.T(t, dir.IsForward(), tt.forward)
			test.T(t, dir.IsBackward(), !tt.forward)
			test.T(t, dir.Reverse().Reverse(), dir)
			test.T(t, dir.Reverse().IsHorizontal(), tt.horizontal)
			test.T(t, dir.Reverse().IsForward(), !tt.forward)
		})
	}

	test.T(t, ParseDirection(""), DirectionInvalid)
	test.T(t, ParseDirection("RightToLeft"), RightToLeft)
	test.T(t, ParseDirection("x"), DirectionInvalid)
	test.That(t, !DirectionInvalid.IsValid())
	test.That(t, !DirectionInvalid.IsHorizontal())
	test.That(t, !DirectionInvalid.IsVertical())
	test.T(t, DirectionInvalid.Reverse(), DirectionInvalid)
}

func TestLanguage(t *testing.T) {
	en := NewLanguage("en-US")
	test.That(t, en.IsValid())
	test.String(t, en.String(), "en-us")
	test.T(t, NewLanguage("EN_us"), en)
	test.T(t, LanguageFromTag(language.AmericanEnglish), en)

	tag, err := en.Tag()
	test.Error(t, err)
	test.String(t, tag.String(), "en-US")

	var unset Language
	test.That(t, !unset.IsValid())
	test.T(t, NewLanguage(""), unset)
	test.T(t, LanguageFromTag(language.Und), unset)
	test.String(t, unset.String(), "")
	tag, err = unset.Tag()
	test.Error(t, err)
	test.T(t, tag, language.Und)
}

func TestFeature(t *testing.T) {
	var tests = []struct {
		s       string
		feature Feature
		str     string
	}{
		{"liga", NewFeature(NewTag("liga"), 1), "liga"},
		{"liga=0", NewFeature(NewTag("liga"), 0), "-liga"},
		{"-kern", NewFeature(NewTag("kern"), 0), "-kern"},
		{"+smcp", NewFeature(NewTag("smcp"), 1), "smcp"},
		{"aalt=2", NewFeature(NewTag("aalt"), 2), "aalt=2"},
		{"aalt[3:5]=2", Feature{NewTag("aalt"), 2, 3, 5}, "aalt[3:5]=2"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			feature, err := ParseFeature(tt.s)
			test.Error(t, err)
			test.T(t, feature, tt.feature)
			test.String(t, feature.String(), tt.str)
		})
	}

	_, err := ParseFeature("")
	test.That(t, err != nil)
	_, err = ParseFeature("=1")
	test.That(t, err != nil)

	features, err := ParseFeatures("liga=0, kern ,-calt")
	test.Error(t, err)
	if diff := cmp.Diff([]Feature{
		NewFeature(NewTag("liga"), 0),
		NewFeature(NewTag("kern"), 1),
		NewFeature(NewTag("calt"), 0),
	}, features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}

	features, err = ParseFeatures("")
	test.Error(t, err)
	test.T(t, len(features), 0)
}

func TestVariation(t *testing.T) {
	variation, err := ParseVariation("wght=700")
	test.Error(t, err)
	test.T(t, variation.Tag, NewTag("wght"))
	test.Float(t, float64(variation.Value), 700.0)
	test.String(t, variation.String(), "wght=700")

	variations, err := ParseVariations("wght=700,wdth=87.5")
	test.Error(t, err)
	test.T(t, len(variations), 2)
	test.T(t, variations[1].Tag, NewTag("wdth"))
	test.Float(t, float64(variations[1].Value), 87.5)

	_, err = ParseVariation("wght")
	test.That(t, err != nil)
	_, err = ParseVariations("wght=1,ital")
	test.That(t, err != nil)
}

func TestScript(t *testing.T) {
	var tests = []struct {
		s      string
		script Script
		dir    Direction
	}{
		{"Latn", ScriptLatin, LeftToRight},
		{"latn", ScriptLatin, LeftToRight},
		{"Arab", ScriptArabic, RightToLeft},
		{"Hebr", ScriptHebrew, RightToLeft},
		{"Cyrl", ScriptCyrillic, LeftToRight},
		{"Zyyy", ScriptCommon, LeftToRight},
		{"Runr", ScriptRunic, DirectionInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			script := ParseScript(tt.s)
			test.T(t, script, tt.script)
			test.T(t, script.HorizontalDirection(), tt.dir)
			test.T(t, ScriptFromISO15924(script.ISO15924()), script)
		})
	}

	test.T(t, ParseScript(""), ScriptInvalid)
	test.T(t, ParseScript("1234"), ScriptUnknown)
	test.String(t, ScriptLatin.String(), "Latn")
	test.String(t, ScriptInvalid.String(), "")
	test.T(t, ScriptLatin.ISO15924(), NewTag("Latn"))

	// x/text scripts
	test.T(t, ScriptFromLanguage(language.MustParseScript("Arab")), ScriptArabic)
	script, err := ScriptHan.Language()
	test.Error(t, err)
	test.String(t, script.String(), "Hani")
}
