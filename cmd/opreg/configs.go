package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/opreg/format"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color output'"`
	NoColor bool `cli:"name=no-color desc='never color output'"`

	OutFormat format.Format
	Manifests []string

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(cc *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = f
	return f, nil
}

func (cfg *MainConfig) manifestFunc(cc *cli.Context, v string) (any, error) {
	cfg.Manifests = append(cfg.Manifests, v)
	return v, nil
}

type palette struct {
	name     func(string, ...any) string
	overload func(string, ...any) string
	kind     func(string, ...any) string
	good     func(string, ...any) string
	bad      func(string, ...any) string
	faint    func(string, ...any) string
}

func plain(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

func (cfg *MainConfig) palette(w io.Writer) *palette {
	if !cfg.useColor(w) {
		return &palette{
			name:     plain,
			overload: plain,
			kind:     plain,
			good:     plain,
			bad:      plain,
			faint:    plain,
		}
	}
	mk := func(c *color.Color) func(string, ...any) string {
		c.EnableColor()
		return c.SprintfFunc()
	}
	return &palette{
		name:     mk(color.RGB(196, 96, 16)),
		overload: mk(color.RGB(128, 168, 196)),
		kind:     mk(color.RGB(74, 92, 138)),
		good:     mk(color.New(color.FgGreen)),
		bad:      mk(color.New(color.FgRed, color.Bold)),
		faint:    mk(color.RGB(96, 96, 96)),
	}
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where aliases=w desc='only list operators matching an expression'"`
	Canon bool   `cli:"name=canon desc='print canonical signatures'"`

	List *cli.Command
}

type ShowConfig struct {
	*MainConfig
	Show *cli.Command
}

type FindConfig struct {
	*MainConfig
	Find *cli.Command
}

type LookupConfig struct {
	*MainConfig
	Lookup *cli.Command
}

type SimilarConfig struct {
	*MainConfig
	// Distance is nil unless -d was given.
	Distance *int

	Similar *cli.Command
}

func (cfg *SimilarConfig) distFunc(cc *cli.Context, v string) (any, error) {
	d, err := strconv.Atoi(v)
	if err != nil || d < 0 {
		return nil, fmt.Errorf("%w: -d wants a non-negative integer, got %q", cli.ErrUsage, v)
	}
	cfg.Distance = &d
	return d, nil
}

type CanonConfig struct {
	*MainConfig
	Canon *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Builtin bool `cli:"name=builtin desc='check against the builtin operators as well'"`

	Check *cli.Command
}

type LintConfig struct {
	*MainConfig
	Dir string `cli:"name=C desc='directory to resolve packages in'"`
	All bool   `cli:"name=all desc='report resolved literals too'"`

	Lint *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Where string `cli:"name=where aliases=w desc='only dump operators matching an expression'"`
	Out   string `cli:"name=o desc='write to a file; json when it ends in .json'"`

	Dump *cli.Command
}
