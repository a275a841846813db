// Package pkgconfig probes the installed native HarfBuzz library through pkg-config and checks that
// its version is supported by the binding.
package pkgconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Package is the pkg-config name of the native library.
const Package = "harfbuzz"

// Constraint is the range of supported native versions.
const Constraint = ">= 2.0.0, < 8.0.0"

var supported = func() *semver.Constraints {
	c, err := semver.NewConstraint(Constraint)
	if err != nil {
		panic(err)
	}
	return c
}()

// ErrNotFound is returned when pkg-config is not installed or does not know the package.
var ErrNotFound = errors.New("pkg-config: package not found")

// ErrUnsupported is returned when the installed version lies outside Constraint.
var ErrUnsupported = errors.New("unsupported version")

func run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "pkg-config", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: pkg-config is not installed", ErrNotFound)
		} else if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = exitErr.Error()
			}
			return "", fmt.Errorf("%w: %s", ErrNotFound, msg)
		}
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Version returns the version of pkg as reported by pkg-config.
func Version(ctx context.Context, pkg string) (string, error) {
	return run(ctx, "--modversion", pkg)
}

// Flags returns the compiler and linker flags of pkg.
func Flags(ctx context.Context, pkg string) (cflags, libs string, err error) {
	if cflags, err = run(ctx, "--cflags", pkg); err != nil {
		return "", "", err
	}
	if libs, err = run(ctx, "--libs", pkg); err != nil {
		return "", "", err
	}
	return cflags, libs, nil
}

// Check parses a version string and checks it against Constraint.
func Check(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", version, err)
	}
	if ok, errs := supported.Validate(v); !ok {
		return v, fmt.Errorf("%w: HarfBuzz %s, require %s: %w", ErrUnsupported, v, Constraint, errors.Join(errs...))
	}
	return v, nil
}

// Probe returns the version of the installed library and an error if it is missing or
// unsupported.
func Probe(ctx context.Context) (*semver.Version, error) {
	version, err := Version(ctx, Package)
	if err != nil {
		return nil, err
	}
	return Check(version)
}
