package opreg

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/opreg/symbol"
)

func registerErr(r *Registry, op *Operator) (err error) {
	defer func() {
		if x := recover(); x != nil {
			err = x.(error)
		}
	}()
	r.Register(op)
	return nil
}

func TestVarretChecks(t *testing.T) {
	all := func(symbol.Symbol) bool { return true }
	none := func(symbol.Symbol) bool { return false }
	tests := []struct {
		name   string
		policy ExemptionPolicy
		sig    string
		kind   AliasAnalysisKind
		err    error
	}{
		{"allowed", PolicyFuncs{Printer: all}, "prim::Thing(...) -> ...", InternalSpecialCase, nil},
		{"no printer case", PolicyFuncs{AliasAnalysis: all}, "prim::Thing(...) -> ...", InternalSpecialCase, ErrMissingPrinterCase},
		{"conservative without alias case", PolicyFuncs{Printer: all, AliasAnalysis: none}, "prim::Thing(...) -> ...", Conservative, ErrMissingAliasCase},
		{"conservative with alias case", PolicyFuncs{Printer: all, AliasAnalysis: all}, "prim::Thing(...) -> ...", Conservative, nil},
		{"from schema but special cased", PolicyFuncs{Printer: all, AliasAnalysis: all}, "prim::Thing(...) -> ...", FromSchema, ErrContradictoryAlias},
		{"from schema not special cased", PolicyFuncs{Printer: all}, "prim::Thing(...) -> ...", FromSchema, nil},
		{"pure not special cased", PolicyFuncs{Printer: all}, "prim::Thing(...) -> ...", PureFunction, nil},
		{"schematized skips checks", PolicyFuncs{}, "prim::Thing(int a) -> int", Conservative, nil},
		{"vararg alone is schematized", PolicyFuncs{}, "prim::Thing(...) -> int", FromSchema, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(WithPolicy(tt.policy))
			op := MustOperator(tt.sig, tt.kind)
			err := registerErr(r, op)
			if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
				t.Fatalf("Register() error = %v, want %v", err, tt.err)
			}
			n := len(r.GetOperators(op.Symbol()))
			if tt.err == nil && n != 1 {
				t.Errorf("registered operator not found")
			}
			if tt.err != nil {
				if n != 0 {
					t.Errorf("rejected operator was registered")
				}
				if !strings.Contains(err.Error(), "prim::Thing") {
					t.Errorf("error %q does not name the operator", err)
				}
			}
		})
	}
}

func TestDefaultPolicyChecks(t *testing.T) {
	tests := []struct {
		sig  string
		kind AliasAnalysisKind
		err  error
	}{
		{"prim::Constant(...) -> ...", InternalSpecialCase, nil},
		{"prim::ListConstruct(...) -> ...", Conservative, nil},
		{"prim::Load(...) -> ...", InternalSpecialCase, nil},
		{"prim::If(...) -> ...", InternalSpecialCase, ErrMissingPrinterCase},
		{"prim::Mystery(...) -> ...", InternalSpecialCase, ErrMissingPrinterCase},
		{"custom::Mystery(...) -> ...", Conservative, ErrMissingAliasCase},
		{"custom::Mystery(...) -> ...", FromSchema, nil},
		{"prim::TupleIndex(...) -> ...", FromSchema, ErrContradictoryAlias},
		{"aten::add(Tensor self, Tensor other) -> Tensor", Conservative, nil},
	}
	for _, tt := range tests {
		t.Run(tt.sig+"/"+tt.kind.String(), func(t *testing.T) {
			err := New().TryRegister(MustOperator(tt.sig, tt.kind))
			if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
				t.Errorf("TryRegister() error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestPolicyFuncsNil(t *testing.T) {
	var p PolicyFuncs
	s := symbol.FromQualString("prim::Constant")
	if p.PrinterHandles(s) || p.AliasAnalysisHandles(s) {
		t.Errorf("zero PolicyFuncs handles %s", s)
	}
}
