package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"
	"github.com/tdewolff/harfbuzz"
	"golang.org/x/image/font/sfnt"
)

type Info struct {
	Font    string `short:"f" desc:"Font file"`
	Index   int    `short:"i" desc:"Face index for font collections"`
	System  string `short:"s" desc:"System font family or generic family, e.g. sans-serif"`
	Style   string `default:"Regular" desc:"System font style, e.g. Bold Italic"`
	Builtin string `short:"b" default:"goregular" desc:"Built-in font: goregular, gobold, goitalic, gomono, lmroman"`
	Char    string `short:"c" desc:"Show the glyph metrics of a Unicode character"`
	Trace   string `default:"Error" desc:"Trace level: Debug, Info, Error"`
}

func (cmd *Info) Run() error {
	if err := setTraceLevel(cmd.Trace); err != nil {
		return err
	}
	src := FontSource{
		Filename: cmd.Font,
		Index:    cmd.Index,
		System:   cmd.System,
		Style:    cmd.Style,
		Builtin:  cmd.Builtin,
	}
	data, index, name, err := src.load()
	if err != nil {
		return err
	}

	major, minor, micro := harfbuzz.Version()
	fmt.Printf("HarfBuzz: %d.%d.%d (headers %s)\n", major, minor, micro, harfbuzz.HeaderVersion())
	fmt.Printf("Shapers: %s\n\n", strings.Join(harfbuzz.Shapers(), ", "))

	n := harfbuzz.FaceCount(harfbuzz.NewBlob(data))
	if n <= index {
		return fmt.Errorf("face index %d out of range with %d faces", index, n)
	}
	face := harfbuzz.NewFace(harfbuzz.NewBlob(data), index)
	defer face.Destroy()

	fmt.Printf("Font: %s\n", name)
	fmt.Printf("Faces: %d\n", n)
	fmt.Printf("Units per em: %d\n", face.Upem())
	fmt.Printf("Glyphs: %d\n", face.GlyphCount())

	unicodes := harfbuzz.NewSet()
	defer unicodes.Destroy()
	face.CollectUnicodes(unicodes)
	selectors := harfbuzz.NewSet()
	defer selectors.Destroy()
	face.CollectVariationSelectors(selectors)
	fmt.Printf("Unicodes: %d\n", unicodes.Len())
	fmt.Printf("Variation selectors: %d\n", selectors.Len())

	// compare against an independent parser
	if c, err := sfnt.ParseCollection(data); err != nil {
		pterm.Error.Printf("sfnt: %v\n", err)
	} else if f, err := c.Font(index); err != nil {
		pterm.Error.Printf("sfnt: %v\n", err)
	} else if int(f.UnitsPerEm()) != face.Upem() || f.NumGlyphs() != face.GlyphCount() {
		pterm.Error.Printf("sfnt: units per em %d and %d glyphs\n", f.UnitsPerEm(), f.NumGlyphs())
	}

	tags := face.AllTableTags()
	var size int
	tables := make([]int, len(tags))
	for i, tag := range tags {
		table := face.ReferenceTable(tag)
		tables[i] = table.Len()
		size += table.Len()
		table.Destroy()
	}
	nLen := int(math.Log10(float64(size+1)) + 1)

	fmt.Printf("\nTables:\n")
	for i, tag := range tags {
		fmt.Printf("  %2d  %s  length=%*d\n", i, tag, nLen, tables[i])
	}

	if cmd.Char != "" {
		rs := []rune(cmd.Char)
		if len(rs) != 1 {
			return fmt.Errorf("char must be one Unicode character")
		}
		return printGlyph(face, rs[0])
	}
	return nil
}

func printGlyph(face *harfbuzz.Face, r rune) error {
	font := harfbuzz.NewFont(face.Reference())
	defer font.Destroy()

	glyph, ok := font.NominalGlyph(harfbuzz.Codepoint(r))
	if !ok {
		return fmt.Errorf("no glyph for %q", r)
	}
	extents, _ := font.GlyphExtents(glyph)
	data := [][]string{
		{"Glyph", "Name", "Advance", "X bearing", "Y bearing", "Width", "Height"},
		{
			fmt.Sprintf("%d", glyph),
			font.GlyphToString(glyph),
			fmt.Sprintf("%d", font.GlyphHAdvance(glyph)),
			fmt.Sprintf("%d", extents.XBearing),
			fmt.Sprintf("%d", extents.YBearing),
			fmt.Sprintf("%d", extents.Width),
			fmt.Sprintf("%d", extents.Height),
		},
	}
	fmt.Println()
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}
