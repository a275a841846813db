// Package hbcmp shapes text with both the native library and the pure-Go port of go-text/typesetting
// and compares the results.
package hbcmp

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/fixed"

	"github.com/tdewolff/harfbuzz"
)

// Glyph is a shaped glyph with its metrics in font units. Cluster is the index of the first rune of
// its cluster.
type Glyph struct {
	ID      uint32
	Cluster int
	Advance int32
	XOffset int32
	YOffset int32
}

// Options are the shaping parameters. Unset properties are guessed from the text. Features apply
// to the whole text, their ranges are ignored.
type Options struct {
	Index     int
	Direction harfbuzz.Direction
	Language  string
	Features  []harfbuzz.Feature
}

// Native shapes text with the native library and returns the glyphs and the resolved segment
// properties.
func Native(data []byte, text string, opts Options) ([]Glyph, harfbuzz.SegmentProperties) {
	face := harfbuzz.NewFace(harfbuzz.NewBlob(data), opts.Index)
	f := harfbuzz.NewFont(face)
	defer f.Destroy()

	runes := []rune(text)
	codepoints := make([]harfbuzz.Codepoint, len(runes))
	for i, r := range runes {
		codepoints[i] = harfbuzz.Codepoint(r)
	}

	buf := harfbuzz.NewBuffer()
	defer buf.Destroy()
	buf.AddCodepoints(codepoints, 0, -1)
	buf.SetDirection(opts.Direction)
	if opts.Language != "" {
		buf.SetLanguage(harfbuzz.NewLanguage(opts.Language))
	}
	buf.GuessSegmentProperties()

	features := make([]harfbuzz.Feature, len(opts.Features))
	for i, feature := range opts.Features {
		features[i] = harfbuzz.NewFeature(feature.Tag, feature.Value)
	}
	harfbuzz.Shape(f, buf, features)

	infos, positions := buf.Infos(), buf.Positions()
	glyphs := make([]Glyph, len(infos))
	for i, info := range infos {
		advance := positions[i].XAdvance
		if buf.Direction().IsVertical() {
			advance = positions[i].YAdvance
		}
		glyphs[i] = Glyph{
			ID:      uint32(info.Codepoint),
			Cluster: int(info.Cluster),
			Advance: int32(advance),
			XOffset: int32(positions[i].XOffset),
			YOffset: int32(positions[i].YOffset),
		}
	}
	return glyphs, buf.SegmentProperties()
}

// Reference shapes text with go-text/typesetting using the given segment properties. Only
// horizontal directions are supported.
func Reference(data []byte, index int, text string, props harfbuzz.SegmentProperties, features []harfbuzz.Feature) ([]Glyph, error) {
	var dir di.Direction
	switch props.Direction {
	case harfbuzz.LeftToRight:
		dir = di.DirectionLTR
	case harfbuzz.RightToLeft:
		dir = di.DirectionRTL
	default:
		return nil, fmt.Errorf("unsupported direction %v", props.Direction)
	}

	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, err
	} else if index < 0 || len(faces) <= index {
		return nil, fmt.Errorf("face index %d out of range with %d faces", index, len(faces))
	}
	face := faces[index]
	upem := int(face.Upem())

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      fixed.I(upem),
		Script:    lookupScript(runes),
		Language:  language.NewLanguage(props.Language.String()),
	}
	for _, feature := range features {
		input.FontFeatures = append(input.FontFeatures, shaping.FontFeature{
			Tag:   ot.Tag(feature.Tag),
			Value: feature.Value,
		})
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)
	glyphs := make([]Glyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = Glyph{
			ID:      uint32(g.GlyphID),
			Cluster: g.ClusterIndex,
			Advance: int32(g.Advance.Round()),
			XOffset: int32(g.XOffset.Round()),
			YOffset: int32(g.YOffset.Round()),
		}
	}
	return glyphs, nil
}

// lookupScript returns the script of the first rune that is not common to all scripts.
func lookupScript(runes []rune) language.Script {
	for _, r := range runes {
		if script := language.LookupScript(r); script != language.Common {
			return script
		}
	}
	return language.Common
}

// visualOrder puts the glyphs in left-to-right order of their clusters.
func visualOrder(glyphs []Glyph) []Glyph {
	if 1 < len(glyphs) && glyphs[len(glyphs)-1].Cluster < glyphs[0].Cluster {
		glyphs = slices.Clone(glyphs)
		slices.Reverse(glyphs)
	}
	return glyphs
}

// Compare shapes text with both shapers and returns a human-readable diff of the glyphs, which is
// empty when they agree.
func Compare(data []byte, text string, opts Options) (string, error) {
	native, props := Native(data, text, opts)
	reference, err := Reference(data, opts.Index, text, props, opts.Features)
	if err != nil {
		return "", err
	}
	return cmp.Diff(visualOrder(native), visualOrder(reference)), nil
}
