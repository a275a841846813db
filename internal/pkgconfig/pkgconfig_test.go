package pkgconfig

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/tdewolff/test"
)

func TestCheck(t *testing.T) {
	var tests = []struct {
		version string
		err     error
	}{
		{"1.9.0", ErrUnsupported},
		{"1.9.99", ErrUnsupported},
		{"2.0.0", nil},
		{"2.6.4", nil},
		{"5.3", nil},
		{"7.3.0", nil},
		{"7.99.99", nil},
		{"8.0.0", ErrUnsupported},
		{"10.2.0", ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			v, err := Check(tt.version)
			test.That(t, errors.Is(err, tt.err), err)
			test.That(t, v != nil)
		})
	}

	_, err := Check("two")
	test.That(t, err != nil)
	test.That(t, !errors.Is(err, ErrUnsupported))
}

func TestVersion(t *testing.T) {
	if _, err := exec.LookPath("pkg-config"); err != nil {
		t.Skip("pkg-config is not installed")
	}
	ctx := context.Background()

	_, err := Version(ctx, "no-such-package-xyz")
	test.That(t, errors.Is(err, ErrNotFound), err)

	version, err := Version(ctx, Package)
	if errors.Is(err, ErrNotFound) {
		t.Skip("HarfBuzz is not installed")
	}
	test.Error(t, err)
	_, err = semver.NewVersion(version)
	test.Error(t, err)

	_, libs, err := Flags(ctx, Package)
	test.Error(t, err)
	test.That(t, libs != "")
}
