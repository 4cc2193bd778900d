package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.fmtFunc), "(format)"),
		},
		&cli.Opt{
			Name:        "m",
			Aliases:     []string{"manifest"},
			Description: "register the operators of a manifest before running the command",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.manifestFunc), "(file)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "opreg").
		WithSynopsis("opreg [opts] command [opts]").
		WithDescription("opreg inspects the operator registry.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return opregMain(cfg, cc, args)
		}).
		WithSubs(
			ListCommand(cfg),
			ShowCommand(cfg),
			FindCommand(cfg),
			LookupCommand(cfg),
			SimilarCommand(cfg),
			CanonCommand(cfg),
			CheckCommand(cfg),
			DumpCommand(cfg),
			LintCommand(cfg))
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where expr] [-canon]").
		WithDescription("list registered operators, grouped by symbol in registration order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShowConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Show, "show").
		WithAliases("s").
		WithSynopsis("show <symbol>...").
		WithDescription("show the overloads registered for each symbol").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find <ns::name[.overload]>...").
		WithDescription("find operators by name and overload name").
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func LookupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LookupConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Lookup, "lookup").
		WithSynopsis("lookup <signature>...").
		WithDescription("resolve full signatures, explaining the ones that do not resolve").
		WithRun(func(cc *cli.Context, args []string) error {
			return lookup(cfg, cc, args)
		})
}

func SimilarCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SimilarConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "d",
			Description: "maximum edit distance; 0 asks for exact matches only",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.distFunc), "(n)"),
		},
	}
	return cli.NewCommandAt(&cfg.Similar, "similar").
		WithAliases("sim").
		WithSynopsis("similar [-d n] <symbol>...").
		WithDescription("suggest registered symbols close to the given ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return similar(cfg, cc, args)
		})
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Canon, "canon").
		WithSynopsis("canon [signature...]").
		WithDescription("print canonical signatures, one per line; reads stdin when no signature is given").
		WithRun(func(cc *cli.Context, args []string) error {
			return canon(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [-builtin] <manifest>...").
		WithDescription("check that manifests parse and satisfy the registration rules").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lint, "lint").
		WithSynopsis("lint [-C dir] [-all] <packages>...").
		WithDescription("check the constant signatures passed to opreg.Lit in Go packages").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lintPackages(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-where expr] [-o file]").
		WithDescription("write registered operators as a manifest").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
