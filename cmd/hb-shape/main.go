// Command hb-shape shapes text with HarfBuzz and prints the resulting glyphs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/harfbuzz/sysfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer traces with key 'harfbuzz.shape'
func tracer() tracing.Trace {
	return tracing.Select("harfbuzz.shape")
}

var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"goitalic":  goitalic.TTF,
	"gomono":    gomono.TTF,
	"lmroman":   lmroman10regular.TTF,
}

func main() {
	initDisplay()
	if err := initTracing(); err != nil {
		pterm.Error.Println("configuring tracing:", err)
		os.Exit(1)
	}

	root := argp.NewCmd(&Shape{}, "Shape text with HarfBuzz")
	root.AddCmd(&Info{}, "info", "Show font and library information")
	root.Parse()
	root.PrintHelp()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.harfbuzz.shape": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	return nil
}

// FontSource selects the font by file, system family, or built-in name, in that order.
type FontSource struct {
	Filename string
	Index    int
	System   string
	Style    string
	Builtin  string
}

// load returns the font data and the face index within it.
func (src FontSource) load() ([]byte, int, string, error) {
	if src.Filename != "" {
		data, err := os.ReadFile(src.Filename)
		if err != nil {
			return nil, 0, "", err
		}
		return data, src.Index, filepath.Base(src.Filename), nil
	} else if src.System != "" {
		style := sysfont.ParseStyle(src.Style)
		if style == sysfont.UnknownStyle {
			return nil, 0, "", fmt.Errorf("unknown font style: %s", src.Style)
		}
		fonts, err := systemFonts()
		if err != nil {
			return nil, 0, "", err
		}
		metadata, ok := fonts.Match(src.System, style)
		if !ok {
			return nil, 0, "", fmt.Errorf("system font not found: %s %v", src.System, style)
		}
		tracer().Infof("using system font %s", metadata.Filename)
		data, err := os.ReadFile(metadata.Filename)
		if err != nil {
			return nil, 0, "", err
		}
		return data, metadata.Index, metadata.Family + " " + metadata.Style.String(), nil
	}

	name := strings.ToLower(src.Builtin)
	data, ok := builtinFonts[name]
	if !ok {
		return nil, 0, "", fmt.Errorf("unknown built-in font: %s", src.Builtin)
	}
	return data, 0, name, nil
}

// systemFonts returns the installed fonts, cached in the user's cache directory.
func systemFonts() (*sysfont.SystemFonts, error) {
	var cache string
	if dir, err := os.UserCacheDir(); err == nil {
		cache = filepath.Join(dir, "hb-shape", "fonts.gob")
		if fonts, err := sysfont.LoadSystemFonts(cache); err == nil {
			return fonts, nil
		}
	}

	tracer().Infof("scanning system fonts")
	fonts, err := sysfont.FindSystemFonts(sysfont.DefaultFontDirs())
	if err != nil {
		return nil, err
	}
	if cache != "" {
		if err := os.MkdirAll(filepath.Dir(cache), 0o755); err == nil {
			if err := fonts.Save(cache); err != nil {
				tracer().Errorf("caching system fonts: %v", err)
			}
		}
	}
	return fonts, nil
}
