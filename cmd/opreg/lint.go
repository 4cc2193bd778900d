package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/lint"
	"github.com/signadot/opreg/opreg"
)

func lintPackages(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"./..."}
	}
	c := lint.NewChecker(opreg.Default(), lint.NewLoader(cfg.Dir))
	findings, err := c.Check(args...)
	if err != nil {
		return err
	}
	p := cfg.palette(cc.Out)
	bad := 0
	for i := range findings {
		f := &findings[i]
		if f.OK() {
			if cfg.All {
				fmt.Fprintf(cc.Out, "%s %s\n", p.good("ok"), f)
			}
			continue
		}
		bad++
		fmt.Fprintf(cc.Out, "%s %s\n", p.bad("bad"), f)
	}
	if bad != 0 {
		return fmt.Errorf("%d of %d literals did not resolve", bad, len(findings))
	}
	return nil
}
