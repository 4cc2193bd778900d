package opreg

import (
	"sync"

	"github.com/signadot/opreg/schema"
	"github.com/signadot/opreg/symbol"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// Register registers op with the default registry.
func Register(op *Operator) { Default().Register(op) }

func TryRegister(op *Operator) error { return Default().TryRegister(op) }

func GetOperators(sym symbol.Symbol) []*Operator { return Default().GetOperators(sym) }

func FindOperator(name schema.OperatorName) *Operator { return Default().FindOperator(name) }

func GetOperatorForLiteral(lit *Literal) *Operator { return Default().GetOperatorForLiteral(lit) }

func LookupSignature(sig string) (*Operator, error) { return Default().LookupSignature(sig) }

func FindSimilarOperators(sym symbol.Symbol) []symbol.Symbol {
	return Default().FindSimilarOperators(sym)
}

func GetAllOperators() []*Operator { return Default().GetAllOperators() }

func Symbols() []symbol.Symbol { return Default().Symbols() }
