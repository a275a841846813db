package harfbuzz

import (
	"fmt"
	"testing"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func goRegularFont(t *testing.T) *Font {
	t.Helper()
	font := NewFont(NewFace(NewBlob(goregular.TTF), 0))
	t.Cleanup(font.Destroy)
	return font
}

func lmRomanFont(t *testing.T) *Font {
	t.Helper()
	font := NewFont(NewFace(NewBlob(lmroman10regular.TTF), 0))
	t.Cleanup(font.Destroy)
	return font
}

func parseSFNT(t *testing.T, b []byte) *sfnt.Font {
	t.Helper()
	f, err := sfnt.Parse(b)
	test.Error(t, err)
	return f
}

// countingBlob returns a blob over a copy of b and a pointer to the number of times its memory
// was released.
func countingBlob(b []byte) (*Blob, *int) {
	n := 0
	blob := NewBlobMode(b, MemoryModeReadOnly, func() { n++ })
	return blob, &n
}

func TestVersion(t *testing.T) {
	major, minor, micro := Version()
	test.That(t, 2 <= major && major < 8, "major version", major)
	test.String(t, VersionString(), fmt.Sprintf("%d.%d.%d", major, minor, micro))
	test.That(t, VersionAtLeast(2, 0, 0))
	test.That(t, VersionAtLeast(major, minor, micro))
	test.That(t, !VersionAtLeast(major+1, 0, 0))
	test.That(t, HeaderVersion() != "")
}

func TestBool(t *testing.T) {
	test.That(t, goBool(cBool(true)))
	test.That(t, !goBool(cBool(false)))
}
