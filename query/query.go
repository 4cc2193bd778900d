// Package query filters operators with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) and see one
// operator at a time through the fields of [Env]:
//
//	Namespace == "aten" && "Tensor" in ArgTypes && !Mutable
//	Varret || Alias == "conservative"
//	Glob("aten::add*") && len(Returns) > 1
package query

import (
	"errors"
	"fmt"
	"path"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/opreg/opreg"
)

var ErrBadQuery = errors.New("bad query")

// Env is what an expression sees of an operator.
type Env struct {
	// Name is the qualified name, e.g. "aten::add".
	Name      string
	Namespace string
	Unqual    string
	Overload  string
	Args      []string
	ArgTypes  []string
	// Returns holds the return types.
	Returns   []string
	Vararg    bool
	Varret    bool
	Mutable   bool
	Alias     string
	Signature string
	Canonical string
}

func EnvOf(op *opreg.Operator) Env {
	s := op.Schema()
	env := Env{
		Name:      s.Name,
		Namespace: op.Symbol().DomainString(),
		Unqual:    op.Symbol().UnqualString(),
		Overload:  s.OverloadName,
		Args:      make([]string, len(s.Arguments)),
		ArgTypes:  make([]string, len(s.Arguments)),
		Returns:   make([]string, len(s.Returns)),
		Vararg:    s.IsVararg,
		Varret:    s.IsVarret,
		Mutable:   s.IsMutable(),
		Alias:     op.AliasAnalysisKind().String(),
		Signature: s.String(),
		Canonical: op.Canonical(),
	}
	for i := range s.Arguments {
		env.Args[i] = s.Arguments[i].Name
		env.ArgTypes[i] = s.Arguments[i].Type.String()
	}
	for i := range s.Returns {
		env.Returns[i] = s.Returns[i].Type.String()
	}
	return env
}

// Glob reports whether the qualified name matches pattern, using the
// syntax of path.Match.
func (e Env) Glob(pattern string) bool {
	ok, _ := path.Match(pattern, e.Name)
	return ok
}

// HasArg reports whether an argument is named name.
func (e Env) HasArg(name string) bool {
	for _, a := range e.Args {
		if a == name {
			return true
		}
	}
	return false
}

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadQuery, src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string { return f.src }

func (f *Filter) Match(op *opreg.Operator) (bool, error) {
	res, err := vm.Run(f.prg, EnvOf(op))
	if err != nil {
		return false, fmt.Errorf("%w: running %q on %s: %w", ErrBadQuery, f.src, op.Schema().OperatorName(), err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Select returns the operators of ops matched by f, in order.  A nil f
// selects everything.
func Select(ops []*opreg.Operator, f *Filter) ([]*opreg.Operator, error) {
	if f == nil {
		return ops, nil
	}
	var res []*opreg.Operator
	for _, op := range ops {
		ok, err := f.Match(op)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, op)
		}
	}
	return res, nil
}
