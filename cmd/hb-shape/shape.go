package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/harfbuzz"
	"github.com/tdewolff/harfbuzz/internal/hbcmp"
	"golang.org/x/image/math/fixed"
)

type Shape struct {
	Font         string  `short:"f" desc:"Font file"`
	Index        int     `short:"i" desc:"Face index for font collections"`
	System       string  `short:"s" desc:"System font family or generic family, e.g. sans-serif"`
	Style        string  `default:"Regular" desc:"System font style, e.g. Bold Italic"`
	Builtin      string  `short:"b" default:"goregular" desc:"Built-in font: goregular, gobold, goitalic, gomono, lmroman"`
	Size         float64 `desc:"Font size in points, output is in font units if zero"`
	Direction    string  `short:"d" desc:"Text direction: ltr, rtl, ttb, btt"`
	Script       string  `desc:"ISO 15924 script tag, e.g. Latn"`
	Language     string  `short:"l" desc:"BCP 47 language tag"`
	Features     string  `desc:"Comma-separated font features, e.g. liga=0,+smcp"`
	Variations   string  `desc:"Comma-separated font variations, e.g. wght=700"`
	Shapers      string  `desc:"Comma-separated list of shapers to try"`
	Format       string  `short:"o" default:"text" desc:"Output format: text, json, table"`
	NoGlyphNames bool    `desc:"Output glyph indices instead of names"`
	NoPositions  bool    `desc:"Do not output glyph positions"`
	NoClusters   bool    `desc:"Do not output cluster indices"`
	Extents      bool    `desc:"Output glyph extents"`
	GlyphFlags   bool    `desc:"Output glyph flags"`
	Compare      bool    `short:"c" desc:"Compare against the pure-Go shaper"`
	Interactive  bool    `short:"I" desc:"Shape lines of text interactively"`
	Trace        string  `default:"Error" desc:"Trace level: Debug, Info, Error"`
	Text         string  `index:"0" desc:"Text to shape"`
}

func (cmd *Shape) Run() error {
	if err := setTraceLevel(cmd.Trace); err != nil {
		return err
	} else if cmd.Text == "" && !cmd.Interactive {
		return argp.ShowUsage
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
	s, err := newShaper(cmd, data, index)
	if err != nil {
		return err
	}
	defer s.Close()
	tracer().Infof("shaping with %s", name)

	if cmd.Interactive {
		return s.REPL()
	}
	return s.Shape(os.Stdout, cmd.Text)
}

type shaper struct {
	font     *harfbuzz.Font
	data     []byte
	index    int
	props    harfbuzz.SegmentProperties
	features []harfbuzz.Feature
	shapers  []string
	format   string
	flags    harfbuzz.SerializeFlags
	compare  bool
}

func newShaper(cmd *Shape, data []byte, index int) (*shaper, error) {
	if harfbuzz.FaceCount(harfbuzz.NewBlob(data)) <= index {
		return nil, fmt.Errorf("face index %d out of range", index)
	}
	s := &shaper{
		data:    data,
		index:   index,
		format:  cmd.Format,
		compare: cmd.Compare,
	}

	var err error
	if s.features, err = harfbuzz.ParseFeatures(cmd.Features); err != nil {
		return nil, err
	}
	variations, err := harfbuzz.ParseVariations(cmd.Variations)
	if err != nil {
		return nil, err
	}
	if err := s.setDirection(cmd.Direction); err != nil {
		return nil, err
	}
	if cmd.Script != "" {
		if s.props.Script = harfbuzz.ParseScript(cmd.Script); s.props.Script == harfbuzz.ScriptInvalid {
			return nil, fmt.Errorf("invalid script: %s", cmd.Script)
		}
	}
	if cmd.Language != "" {
		s.props.Language = harfbuzz.NewLanguage(cmd.Language)
	}
	if cmd.Shapers != "" {
		s.shapers = strings.Split(cmd.Shapers, ",")
	}
	switch s.format {
	case "text", "json", "table":
	default:
		return nil, fmt.Errorf("invalid output format: %s", s.format)
	}

	if cmd.NoGlyphNames {
		s.flags |= harfbuzz.SerializeFlagNoGlyphNames
	}
	if cmd.NoPositions {
		s.flags |= harfbuzz.SerializeFlagNoPositions
	}
	if cmd.NoClusters {
		s.flags |= harfbuzz.SerializeFlagNoClusters
	}
	if cmd.Extents {
		s.flags |= harfbuzz.SerializeFlagGlyphExtents
	}
	if cmd.GlyphFlags {
		s.flags |= harfbuzz.SerializeFlagGlyphFlags
	}

	s.font = harfbuzz.NewFont(harfbuzz.NewFace(harfbuzz.NewBlob(data), index))
	if cmd.Size != 0.0 {
		s.font.SetSize(fixed.Int26_6(cmd.Size*64.0 + 0.5))
		s.font.SetPtem(float32(cmd.Size))
	}
	if 0 < len(variations) {
		s.font.SetVariations(variations)
	}
	return s, nil
}

func (s *shaper) Close() {
	s.font.Destroy()
}

func (s *shaper) setDirection(direction string) error {
	s.props.Direction = harfbuzz.DirectionInvalid
	if direction != "" {
		if s.props.Direction = harfbuzz.ParseDirection(direction); s.props.Direction == harfbuzz.DirectionInvalid {
			return fmt.Errorf("invalid direction: %s", direction)
		}
	}
	return nil
}

func (s *shaper) setFeatures(features string) error {
	fs, err := harfbuzz.ParseFeatures(features)
	if err != nil {
		return err
	}
	s.features = fs
	return nil
}

// Shape shapes a line of text and writes the glyphs to w.
func (s *shaper) Shape(w io.Writer, text string) error {
	buf := harfbuzz.NewBuffer()
	defer buf.Destroy()
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		buf.SetMessageFunc(func(_ *harfbuzz.Buffer, _ *harfbuzz.Font, msg string) bool {
			tracer().Debugf("%s", msg)
			return true
		})
	}

	buf.AddString(text, 0, -1)
	buf.SetDirection(s.props.Direction)
	buf.SetScript(s.props.Script)
	buf.SetLanguage(s.props.Language)
	buf.GuessSegmentProperties()
	props := buf.SegmentProperties()
	tracer().Infof("direction=%v script=%v language=%v", props.Direction, props.Script, props.Language)

	if !harfbuzz.ShapeFull(s.font, buf, s.features, s.shapers) {
		return fmt.Errorf("shaping failed with shapers %v", s.shapers)
	}

	switch s.format {
	case "table":
		s.printTable(buf)
	case "json":
		fmt.Fprintln(w, buf.Serialize(s.font, harfbuzz.SerializeFormatJSON, s.flags))
	default:
		fmt.Fprintln(w, buf.Serialize(s.font, harfbuzz.SerializeFormatText, s.flags))
	}

	if s.compare {
		diff, err := hbcmp.Compare(s.data, text, hbcmp.Options{
			Index:     s.index,
			Direction: s.props.Direction,
			Language:  s.props.Language.String(),
			Features:  s.features,
		})
		if err != nil {
			return err
		} else if diff != "" {
			pterm.Error.Printf("pure-Go shaper differs (-native +reference):\n%s", diff)
		} else {
			pterm.Info.Println("pure-Go shaper agrees")
		}
	}
	return nil
}

func (s *shaper) printTable(buf *harfbuzz.Buffer) {
	data := [][]string{
		{"Glyph", "Name", "Cluster", "X advance", "Y advance", "X offset", "Y offset"},
	}
	positions := buf.Positions()
	for i, info := range buf.Infos() {
		pos := positions[i]
		data = append(data, []string{
			fmt.Sprintf("%d", info.Codepoint),
			s.font.GlyphToString(info.Codepoint),
			fmt.Sprintf("%d", info.Cluster),
			fmt.Sprintf("%d", pos.XAdvance),
			fmt.Sprintf("%d", pos.YAdvance),
			fmt.Sprintf("%d", pos.XOffset),
			fmt.Sprintf("%d", pos.YOffset),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
