package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/opreg"
	"github.com/signadot/opreg/symbol"
)

type similarRecord struct {
	Symbol  string   `json:"symbol" yaml:"symbol"`
	Similar []string `json:"similar" yaml:"similar"`
}

func similar(cfg *SimilarConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Similar.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: similar requires at least one symbol", cli.ErrUsage)
	}
	reg := similarRegistry(cfg.Distance)
	recs := make([]similarRecord, len(args))
	for i, arg := range args {
		sym, err := symbol.Parse(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		recs[i] = similarRecord{Symbol: arg, Similar: quals(reg.FindSimilarOperators(sym))}
		if recs[i].Similar == nil {
			recs[i].Similar = []string{}
		}
	}
	if done, err := writeStructured(cfg.OutFormat, cc.Out, recs); done {
		return err
	}
	p := cfg.palette(cc.Out)
	for _, rec := range recs {
		fmt.Fprintf(cc.Out, "%s:", p.name("%s", rec.Symbol))
		for _, s := range rec.Similar {
			fmt.Fprintf(cc.Out, " %s", s)
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

// similarRegistry returns the default registry, or a copy of it bounded by
// dist when dist is set.
func similarRegistry(dist *int) *opreg.Registry {
	if dist == nil {
		return opreg.Default()
	}
	reg := opreg.New(opreg.WithMaxEditDistance(*dist))
	for _, op := range opreg.GetAllOperators() {
		reg.Register(op)
	}
	return reg
}
