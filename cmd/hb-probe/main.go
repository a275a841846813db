// Command hb-probe checks that the installed HarfBuzz library is supported by the binding.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/harfbuzz/internal/pkgconfig"
)

type Probe struct {
	Flags   bool   `desc:"Print the compiler and linker flags"`
	Quiet   bool   `short:"q" desc:"Only report errors"`
	Version string `desc:"Check the given version instead of the installed one"`
}

func main() {
	root := argp.NewCmd(&Probe{}, "Check the installed HarfBuzz version, requires "+pkgconfig.Constraint)
	root.Parse()
	root.PrintHelp()
}

func (cmd *Probe) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	version := cmd.Version
	if version == "" {
		var err error
		if version, err = pkgconfig.Version(ctx, pkgconfig.Package); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(1)
		}
	}
	v, err := pkgconfig.Check(version)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	} else if !cmd.Quiet {
		fmt.Printf("HarfBuzz %s: ok\n", v)
	}

	if cmd.Flags {
		cflags, libs, err := pkgconfig.Flags(ctx, pkgconfig.Package)
		if err != nil {
			return err
		}
		fmt.Println("CFLAGS:", cflags)
		fmt.Println("LIBS:", libs)
	}
	return nil
}
