package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/manifest"
	"github.com/signadot/opreg/opreg"
)

func opregMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	if err := registerManifests(opreg.Default(), cfg.Manifests); err != nil {
		return err
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func registerManifests(r *opreg.Registry, paths []string) error {
	for _, p := range paths {
		m, err := manifest.LoadFile(p)
		if err != nil {
			return err
		}
		ops, err := m.Operators()
		if err != nil {
			return err
		}
		if err := manifest.RegisterAll(r, ops); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
