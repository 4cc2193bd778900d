package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/builtin"
	"github.com/signadot/opreg/manifest"
	"github.com/signadot/opreg/opreg"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one manifest", cli.ErrUsage)
	}
	p := cfg.palette(cc.Out)
	bad := 0
	for _, path := range args {
		r := opreg.New()
		if cfg.Builtin {
			builtin.Install(r)
		}
		if err := checkManifest(r, path); err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s %s\n", p.bad("FAIL"), path)
			for _, e := range unjoin(err) {
				fmt.Fprintf(cc.Out, "  %v\n", e)
			}
			continue
		}
		fmt.Fprintf(cc.Out, "%s %s\n", p.good("ok"), path)
	}
	if bad != 0 {
		return fmt.Errorf("%d of %d manifests failed", bad, len(args))
	}
	return nil
}

func checkManifest(r *opreg.Registry, path string) error {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}
	ops, err := m.Operators()
	if err != nil {
		return err
	}
	return manifest.RegisterAll(r, ops)
}

func unjoin(err error) []error {
	if _, ok := err.(*opreg.NotFoundError); ok {
		return []error{err}
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
