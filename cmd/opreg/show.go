package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/opreg"
	"github.com/signadot/opreg/parse"
	"github.com/signadot/opreg/symbol"
)

func show(cfg *ShowConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Show.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: show requires at least one symbol", cli.ErrUsage)
	}
	var ops []*opreg.Operator
	for _, arg := range args {
		sym, err := symbol.Parse(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		found := opreg.GetOperators(sym)
		if len(found) == 0 {
			return noOperators(sym)
		}
		ops = append(ops, found...)
	}
	return writeOps(cfg.MainConfig, cc.Out, ops, false)
}

func noOperators(sym symbol.Symbol) error {
	sims := opreg.FindSimilarOperators(sym)
	if len(sims) == 0 {
		return fmt.Errorf("no operators registered for %s", sym)
	}
	strs := make([]string, len(sims))
	for i, s := range sims {
		strs[i] = s.QualString()
	}
	return fmt.Errorf("no operators registered for %s; did you mean %s?", sym, strings.Join(strs, ", "))
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires at least one name", cli.ErrUsage)
	}
	var ops []*opreg.Operator
	for _, arg := range args {
		name, err := parse.OperatorName(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		op := opreg.FindOperator(name)
		if op == nil {
			return fmt.Errorf("no operator %s", name)
		}
		ops = append(ops, op)
	}
	return writeOps(cfg.MainConfig, cc.Out, ops, false)
}
