package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/parse"
	"github.com/signadot/opreg/schema"
)

func canon(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		sc := bufio.NewScanner(cc.In)
		for sc.Scan() {
			ln := strings.TrimSpace(sc.Text())
			if ln == "" || strings.HasPrefix(ln, "#") {
				continue
			}
			args = append(args, ln)
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}
	for _, arg := range args {
		s, err := parse.Schema(arg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cc.Out, schema.Canonical(s)); err != nil {
			return err
		}
	}
	return nil
}
