// Package sysfont finds the fonts installed on the system by family and style.
package sysfont

import (
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/tdewolff/harfbuzz"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// fontDirs lists the font directories per GOOS. Directories referring to an unset environment
// variable are skipped.
var fontDirs = map[string][]string{
	"linux":   {"/usr/share/fonts", "/usr/local/share/fonts", "$HOME/.fonts", "$HOME/.local/share/fonts", "$XDG_DATA_HOME/fonts"},
	"freebsd": {"/usr/local/share/fonts", "$HOME/.fonts", "$XDG_DATA_HOME/fonts"},
	"darwin":  {"/System/Library/Fonts", "/Library/Fonts", "$HOME/Library/Fonts"},
	"windows": {"$SYSTEMROOT/Fonts", "$LOCALAPPDATA/Microsoft/Windows/Fonts"},
}

// genericFamilies maps the generic family names accepted by Match to the families tried in order.
var genericFamilies = map[string][]string{
	"sans-serif": {"DejaVu Sans", "Noto Sans", "Liberation Sans", "Arial", "Helvetica"},
	"serif":      {"DejaVu Serif", "Noto Serif", "Liberation Serif", "Times New Roman", "Times"},
	"monospace":  {"DejaVu Sans Mono", "Noto Sans Mono", "Liberation Mono", "Courier New", "Courier"},
}

// DefaultFontDirs returns the font directories of the current operating system.
func DefaultFontDirs() []string {
	var dirs []string
	for _, dir := range fontDirs[runtime.GOOS] {
		unset := false
		dir = os.Expand(dir, func(key string) string {
			val := os.Getenv(key)
			unset = unset || val == ""
			return val
		})
		if !unset {
			dirs = append(dirs, filepath.FromSlash(dir))
		}
	}
	return dirs
}

// DefaultSystemFonts returns the families tried in order for the generic family names.
func DefaultSystemFonts() map[string][]string {
	fonts := make(map[string][]string, len(genericFamilies))
	for generic, families := range genericFamilies {
		fonts[generic] = slices.Clone(families)
	}
	return fonts
}

// Style defines the font style to be used for the font. It specifies a boldness with optionally
// italic, e.g. Black | Italic will specify a black boldness (a font-weight of 800 in CSS) and italic.
type Style int

// see Style
const (
	UnknownStyle Style = -1
	Regular      Style = iota // 400
	Thin                      // 100
	ExtraLight                // 200
	Light                     // 300
	Medium                    // 500
	SemiBold                  // 600
	Bold                      // 700
	ExtraBold                 // 800
	Black                     // 900
	Italic       Style = 1 << 8
)

func ParseStyle(s string) Style {
	style := Regular
	if strings.HasSuffix(s, "Italic") {
		s = strings.TrimSuffix(s[:len(s)-6], " ")
		style = Italic
	} else if strings.HasSuffix(s, "Oblique") {
		s = strings.TrimSuffix(s[:len(s)-7], " ")
		style = Italic
	}

	switch strings.ReplaceAll(s, " ", "") {
	case "", "Regular", "Book", "Roman":
		return style | Regular
	case "Thin":
		return style | Thin
	case "ExtraLight", "UltraLight":
		return style | ExtraLight
	case "Light":
		return style | Light
	case "Medium":
		return style | Medium
	case "SemiBold", "DemiBold":
		return style | SemiBold
	case "Bold":
		return style | Bold
	case "ExtraBold", "UltraBold":
		return style | ExtraBold
	case "Black", "Heavy":
		return style | Black
	}
	return UnknownStyle
}

// Weight returns the font weight (Regular, Bold, ...)
func (style Style) Weight() Style {
	return style & 0xFF
}

// Italic returns true if italic.
func (style Style) Italic() bool {
	return style&Italic != 0
}

func (style Style) String() string {
	var s string
	switch style.Weight() {
	case Thin:
		s = "Thin"
	case ExtraLight:
		s = "ExtraLight"
	case Light:
		s = "Light"
	case Medium:
		s = "Medium"
	case SemiBold:
		s = "SemiBold"
	case Bold:
		s = "Bold"
	case ExtraBold:
		s = "ExtraBold"
	case Black:
		s = "Black"
	}
	if style.Italic() {
		return strings.TrimSpace(s + " Italic")
	} else if s == "" {
		return "Regular"
	}
	return s
}

type FontMetadata struct {
	Filename string
	Index    int
	Family   string
	Style
}

type SystemFonts struct {
	Defaults map[string][]string
	Fonts    map[string]map[Style]FontMetadata
}

func LoadSystemFonts(filename string) (*SystemFonts, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fonts := &SystemFonts{}
	if err = gob.NewDecoder(f).Decode(fonts); err != nil {
		return nil, err
	}
	return fonts, nil
}

func (s *SystemFonts) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = gob.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *SystemFonts) Add(metadata FontMetadata) {
	if _, ok := s.Fonts[metadata.Family]; !ok {
		s.Fonts[metadata.Family] = map[Style]FontMetadata{}
	}
	if _, ok := s.Fonts[metadata.Family][metadata.Style]; !ok {
		s.Fonts[metadata.Family][metadata.Style] = metadata
	}
}

// Match returns the font of the family or generic family name with the given style, falling back
// to the regular style.
func (s *SystemFonts) Match(name string, style Style) (FontMetadata, bool) {
	var metadatas map[Style]FontMetadata
	if names, ok := s.Defaults[name]; ok {
		for _, name := range names {
			if metadatas, ok = s.Fonts[name]; ok {
				break
			}
		}
	} else if metadatas, ok = s.Fonts[name]; !ok {
		return FontMetadata{}, false
	}

	if metadata, ok := metadatas[style]; ok {
		return metadata, true
	} else if metadata, ok := metadatas[Regular]; ok {
		return metadata, true
	}
	return FontMetadata{}, false
}

// Face loads the matched font as a HarfBuzz face.
func (s *SystemFonts) Face(name string, style Style) (*harfbuzz.Face, error) {
	metadata, ok := s.Match(name, style)
	if !ok {
		return nil, fmt.Errorf("font not found: %s %v", name, style)
	}
	return harfbuzz.LoadFace(metadata.Filename, metadata.Index)
}

func FindSystemFonts(dirs []string) (*SystemFonts, error) {
	fonts := &SystemFonts{
		Fonts: map[string]map[Style]FontMetadata{},
	}
	walkedDirs := map[string]bool{}
	walkDir := func(dir string) error {
		return fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
			path = filepath.Join(dir, path)
			if err != nil {
				return err
			} else if d.IsDir() {
				if walkedDirs[path] {
					return filepath.SkipDir
				}
				walkedDirs[path] = true
				return nil
			} else if !d.Type().IsRegular() {
				return nil
			}

			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf", ".ttc", ".otc":
				metadatas, err := sfntMetadata(path)
				if err != nil {
					return nil
				}
				for _, metadata := range metadatas {
					fonts.Add(metadata)
				}
			}
			return nil
		})
	}

	var Err error
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := walkDir(dir); err != nil && Err == nil {
			Err = err
		}
	}
	if Err != nil {
		return nil, Err
	}
	fonts.Defaults = DefaultSystemFonts()
	return fonts, nil
}

// sfntMetadata returns the metadata of every face in a font file or collection.
func sfntMetadata(filename string) ([]FontMetadata, error) {
	blob, err := harfbuzz.LoadBlob(filename)
	if err != nil {
		return nil, err
	}
	n := harfbuzz.FaceCount(blob.Reference())
	if n == 0 {
		blob.Destroy()
		return nil, fmt.Errorf("%s: not a font", filename)
	}

	var metadatas []FontMetadata
	for i := 0; i < n; i++ {
		face := harfbuzz.NewFace(blob.Reference(), i)
		name := face.ReferenceTable(harfbuzz.NewTag("name"))
		family, subfamily, err := parseNameTable(name.Data())
		name.Destroy()
		face.Destroy()
		if err != nil {
			continue
		}

		style := ParseStyle(subfamily)
		if style == UnknownStyle {
			continue
		}
		metadatas = append(metadatas, FontMetadata{
			Filename: filename,
			Index:    i,
			Family:   family,
			Style:    style,
		})
	}
	blob.Destroy()
	return metadatas, nil
}

const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3

	nameFontFamily         = 1
	nameFontSubfamily      = 2
	namePreferredFamily    = 16
	namePreferredSubfamily = 17
)

// parseNameTable returns the English family and subfamily names, preferring the typographic names
// over the legacy ones.
func parseNameTable(b []byte) (string, string, error) {
	if len(b) < 6 {
		return "", "", fmt.Errorf("name table not found")
	}
	count := int(binary.BigEndian.Uint16(b[2:]))
	storageOffset := int(binary.BigEndian.Uint16(b[4:]))
	if len(b) < 6+12*count {
		return "", "", fmt.Errorf("invalid name table")
	}

	names := map[uint16]string{}
	decodeUTF16 := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	for i := 0; i < count; i++ {
		record := b[6+12*i:]
		platform := binary.BigEndian.Uint16(record)
		language := binary.BigEndian.Uint16(record[4:])
		nameID := binary.BigEndian.Uint16(record[6:])
		length := int(binary.BigEndian.Uint16(record[8:]))
		offset := storageOffset + int(binary.BigEndian.Uint16(record[10:]))
		if nameID != nameFontFamily && nameID != nameFontSubfamily && nameID != namePreferredFamily && nameID != namePreferredSubfamily {
			continue
		} else if len(b) < offset+length {
			return "", "", fmt.Errorf("invalid name record")
		}

		var val string
		switch platform {
		case platformUnicode, platformWindows:
			if platform == platformWindows && language&0x00FF != 0x0009 {
				continue // not English
			}
			s, _, err := transform.Bytes(decodeUTF16, b[offset:offset+length])
			if err != nil {
				return "", "", err
			}
			val = string(s)
		case platformMacintosh:
			if language != 0 {
				continue // not English
			} else if _, ok := names[nameID]; ok {
				continue
			}
			val = string(b[offset : offset+length])
		default:
			continue
		}
		names[nameID] = val
	}

	family, subfamily := names[namePreferredFamily], names[namePreferredSubfamily]
	if family == "" {
		family = names[nameFontFamily]
	}
	if subfamily == "" {
		subfamily = names[nameFontSubfamily]
	}
	if family == "" {
		return "", "", fmt.Errorf("font family not found")
	}
	return family, subfamily, nil
}
