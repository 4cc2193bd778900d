// Package lint checks the signatures passed to opreg.Lit in Go source.
//
// A literal that names no registered operator makes
// GetOperatorForLiteral panic the first time it runs.  The checker finds
// every such call statically, resolves its signature against a registry and
// reports the ones which do not resolve, along with the nearest registered
// signature.  Calls whose argument is not a constant are reported too: a
// handle built from a computed string defeats the literal cache.
package lint

import (
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"

	"github.com/signadot/opreg/opreg"
	"golang.org/x/tools/go/packages"
)

// LitFunc is the full name of the function whose calls are checked.
const LitFunc = "github.com/signadot/opreg/opreg.Lit"

var (
	ErrLoad        = errors.New("could not load")
	ErrNotConstant = errors.New("signature is not a constant")
)

// Finding is one call to opreg.Lit.
type Finding struct {
	Pos token.Position
	// Signature is empty if the argument is not a constant.
	Signature string
	// Operator is the resolved operator, nil if Err is set.
	Operator *opreg.Operator
	Err      error
}

func (f *Finding) OK() bool { return f.Err == nil }

func (f *Finding) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Pos, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Pos, f.Operator.Schema().OperatorName())
}

type Checker struct {
	reg    *opreg.Registry
	loader *Loader
}

func NewChecker(reg *opreg.Registry, loader *Loader) *Checker {
	return &Checker{reg: reg, loader: loader}
}

// Check loads the packages matching patterns and checks each of them.
func (c *Checker) Check(patterns ...string) ([]Finding, error) {
	pkgs, err := c.loader.Load(patterns...)
	if err != nil {
		return nil, err
	}
	var res []Finding
	for _, pkg := range pkgs {
		res = append(res, c.CheckPackage(pkg)...)
	}
	return res, nil
}

// CheckPackage returns a finding for every call to opreg.Lit in pkg,
// ordered by position.
func (c *Checker) CheckPackage(pkg *packages.Package) []Finding {
	var res []Finding
	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) != 1 || !isLit(pkg.TypesInfo, call.Fun) {
				return true
			}
			f := Finding{Pos: pkg.Fset.Position(call.Pos())}
			tv := pkg.TypesInfo.Types[call.Args[0]]
			if tv.Value == nil || tv.Value.Kind() != constant.String {
				f.Err = ErrNotConstant
				res = append(res, f)
				return true
			}
			f.Signature = constant.StringVal(tv.Value)
			f.Operator, f.Err = c.reg.LookupSignature(f.Signature)
			res = append(res, f)
			return true
		})
	}
	slices.SortFunc(res, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
		)
	})
	return res
}

func isLit(info *types.Info, fun ast.Expr) bool {
	var id *ast.Ident
	switch x := fun.(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	default:
		return false
	}
	fn, ok := info.Uses[id].(*types.Func)
	return ok && fn.FullName() == LitFunc
}
