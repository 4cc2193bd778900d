package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/format"
	"github.com/signadot/opreg/manifest"
	"github.com/signadot/opreg/opreg"
	"github.com/signadot/opreg/query"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: dump takes no arguments", cli.ErrUsage)
	}
	var f *query.Filter
	if cfg.Where != "" {
		f, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	ops, err := query.Select(opreg.GetAllOperators(), f)
	if err != nil {
		return err
	}
	m := manifest.FromOperators(ops)
	if cfg.Out == "" {
		return m.WriteFormat(cc.Out, cfg.OutFormat)
	}
	return writeManifestFile(m, cfg.Out, cfg.OutFormat)
}

func writeManifestFile(m *manifest.Manifest, path string, f format.Format) (err error) {
	if f.IsText() {
		f = format.FromPath(path)
	}
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return m.WriteFormat(w, f)
}
