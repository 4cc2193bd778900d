package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/opreg"
	"github.com/signadot/opreg/symbol"
)

type lookupRecord struct {
	Signature   string    `json:"signature" yaml:"signature"`
	Operator    *opRecord `json:"operator,omitempty" yaml:"operator,omitempty"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	Closest     string    `json:"closest,omitempty" yaml:"closest,omitempty"`
	Diff        string    `json:"diff,omitempty" yaml:"diff,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

func lookup(cfg *LookupConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lookup.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lookup requires at least one signature", cli.ErrUsage)
	}
	recs := make([]lookupRecord, len(args))
	failed := 0
	for i, arg := range args {
		recs[i] = lookupOne(arg)
		if recs[i].Operator == nil {
			failed++
		}
	}
	if done, err := writeStructured(cfg.OutFormat, cc.Out, recs); done {
		if err != nil {
			return err
		}
	} else {
		p := cfg.palette(cc.Out)
		for i := range recs {
			writeLookupText(p, cc, &recs[i])
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d signatures did not resolve", failed, len(args))
	}
	return nil
}

func lookupOne(sig string) lookupRecord {
	rec := lookupRecord{Signature: sig}
	op, err := opreg.LookupSignature(sig)
	if err == nil {
		r := recordOf(op)
		rec.Operator = &r
		return rec
	}
	var nf *opreg.NotFoundError
	if !errors.As(err, &nf) {
		rec.Error = err.Error()
		return rec
	}
	if nf.ParseErr != nil {
		rec.Error = nf.ParseErr.Error()
		return rec
	}
	rec.Error = "no operator with this signature"
	if nf.Closest != nil {
		rec.Closest = nf.Closest.Canonical()
		rec.Diff = opreg.SignatureDiff(nf.Canonical, rec.Closest)
	}
	rec.Suggestions = quals(nf.Suggestions)
	return rec
}

func quals(syms []symbol.Symbol) []string {
	if len(syms) == 0 {
		return nil
	}
	res := make([]string, len(syms))
	for i, s := range syms {
		res[i] = s.QualString()
	}
	return res
}

func writeLookupText(p *palette, cc *cli.Context, rec *lookupRecord) {
	if rec.Operator != nil {
		fmt.Fprintf(cc.Out, "%s %s -> %s\n", p.good("ok"), rec.Signature, p.name("%s", rec.Operator.Schema))
		return
	}
	fmt.Fprintf(cc.Out, "%s %s: %s\n", p.bad("not found"), rec.Signature, rec.Error)
	if rec.Closest != "" {
		fmt.Fprintf(cc.Out, "  %s %s\n", p.faint("closest:"), rec.Closest)
		fmt.Fprintf(cc.Out, "  %s %s\n", p.faint("diff:   "), rec.Diff)
	}
	for _, s := range rec.Suggestions {
		fmt.Fprintf(cc.Out, "  %s %s\n", p.faint("did you mean"), s)
	}
}
