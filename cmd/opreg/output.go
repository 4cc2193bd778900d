package main

import (
	"fmt"
	"io"

	"github.com/signadot/opreg/format"
	"github.com/signadot/opreg/opreg"
)

type opRecord struct {
	Name          string `json:"name" yaml:"name"`
	Overload      string `json:"overload,omitempty" yaml:"overload,omitempty"`
	Schema        string `json:"schema" yaml:"schema"`
	Canonical     string `json:"canonical" yaml:"canonical"`
	AliasAnalysis string `json:"alias_analysis" yaml:"alias_analysis"`
}

func recordOf(op *opreg.Operator) opRecord {
	s := op.Schema()
	return opRecord{
		Name:          s.Name,
		Overload:      s.OverloadName,
		Schema:        s.String(),
		Canonical:     op.Canonical(),
		AliasAnalysis: op.AliasAnalysisKind().String(),
	}
}

// writeStructured encodes v in f.  It reports false for text output,
// which callers render themselves.
func writeStructured(f format.Format, w io.Writer, v any) (bool, error) {
	if f.IsText() {
		return false, nil
	}
	return true, f.Encode(w, v)
}

func writeOps(cfg *MainConfig, w io.Writer, ops []*opreg.Operator, canonical bool) error {
	recs := make([]opRecord, len(ops))
	for i, op := range ops {
		recs[i] = recordOf(op)
	}
	if done, err := writeStructured(cfg.OutFormat, w, recs); done {
		return err
	}
	p := cfg.palette(w)
	for _, op := range ops {
		if _, err := fmt.Fprintln(w, formatOp(p, op, canonical)); err != nil {
			return err
		}
	}
	return nil
}

func formatOp(p *palette, op *opreg.Operator, canonical bool) string {
	s := op.Schema()
	if canonical {
		return p.name("%s", op.Canonical())
	}
	head := p.name("%s", s.Name)
	if s.OverloadName != "" {
		head += "." + p.overload("%s", s.OverloadName)
	}
	sig := op.String()
	rest := sig[len(s.OperatorName().String()):]
	return head + rest + "  " + p.kind("# %s", op.AliasAnalysisKind())
}
