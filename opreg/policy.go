package opreg

import (
	"fmt"

	"github.com/signadot/opreg/symbol"
)

// ExemptionPolicy decides which un-schematized operators the printer and
// alias analysis handle.  See package exempt for the default tables.
type ExemptionPolicy interface {
	PrinterHandles(symbol.Symbol) bool
	AliasAnalysisHandles(symbol.Symbol) bool
}

// PolicyFuncs adapts a pair of functions to ExemptionPolicy.  A nil
// function handles nothing.
type PolicyFuncs struct {
	Printer       func(symbol.Symbol) bool
	AliasAnalysis func(symbol.Symbol) bool
}

func (p PolicyFuncs) PrinterHandles(s symbol.Symbol) bool {
	return p.Printer != nil && p.Printer(s)
}

func (p PolicyFuncs) AliasAnalysisHandles(s symbol.Symbol) bool {
	return p.AliasAnalysis != nil && p.AliasAnalysis(s)
}

// checkVarret validates a variadic-return operator against p.  Operators
// with a schema are not checked.
func checkVarret(p ExemptionPolicy, op *Operator) error {
	if !op.schema.IsVarret {
		return nil
	}
	s := op.sym
	if !p.PrinterHandles(s) {
		return fmt.Errorf("%w: non-schematized operator %s has no printer case; add one before registering it", ErrMissingPrinterCase, s)
	}
	handled := p.AliasAnalysisHandles(s)
	switch {
	case !handled && op.kind == Conservative:
		return fmt.Errorf("%w: non-schematized operator %s is conservative but alias analysis has no case for it", ErrMissingAliasCase, s)
	case handled && op.kind == FromSchema:
		return fmt.Errorf("%w: operator %s is special cased by alias analysis and cannot use %s", ErrContradictoryAlias, s, FromSchema)
	}
	return nil
}
