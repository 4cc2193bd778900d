package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/opreg"
	"github.com/signadot/opreg/query"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", cli.ErrUsage)
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
	return writeOps(cfg.MainConfig, cc.Out, ops, cfg.Canon)
}
