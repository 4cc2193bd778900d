package opreg

import (
	"fmt"

	"github.com/signadot/opreg/parse"
	"github.com/signadot/opreg/schema"
	"github.com/signadot/opreg/symbol"
)

// AliasAnalysisKind says how alias analysis treats an operator.
type AliasAnalysisKind int

const (
	// InternalSpecialCase operators are modelled by hand inside alias
	// analysis.
	InternalSpecialCase AliasAnalysisKind = iota
	// Conservative operators may alias and write anything.
	Conservative
	// FromSchema operators are described by the alias annotations of their
	// schema.
	FromSchema
	// PureFunction operators neither alias nor write their inputs.
	PureFunction
)

var aliasKindNames = map[AliasAnalysisKind]string{
	InternalSpecialCase: "internal_special_case",
	Conservative:        "conservative",
	FromSchema:          "from_schema",
	PureFunction:        "pure_function",
}

func (k AliasAnalysisKind) String() string {
	if s, ok := aliasKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("AliasAnalysisKind(%d)", int(k))
}

func ParseAliasAnalysisKind(s string) (AliasAnalysisKind, error) {
	for k, name := range aliasKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrBadAliasKind, s)
}

func (k AliasAnalysisKind) MarshalText() ([]byte, error) {
	if _, ok := aliasKindNames[k]; !ok {
		return nil, fmt.Errorf("%w %d", ErrBadAliasKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *AliasAnalysisKind) UnmarshalText(d []byte) error {
	v, err := ParseAliasAnalysisKind(string(d))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Operator is an immutable operator descriptor.  Operators are shared by
// pointer.
type Operator struct {
	schema *schema.FunctionSchema
	kind   AliasAnalysisKind
	sym    symbol.Symbol
}

// NewOperator makes an operator from a parsed schema.  It panics if the
// schema is nil or its name is not a valid qualified symbol.
func NewOperator(s *schema.FunctionSchema, kind AliasAnalysisKind) *Operator {
	if s == nil {
		panic(fmt.Errorf("%w: nil schema", ErrNilOperator))
	}
	return &Operator{schema: s, kind: kind, sym: symbol.FromQualString(s.Name)}
}

// MustOperator parses sig and makes an operator from it, panicking on
// error.  It is meant for tables of operators built at init time.
func MustOperator(sig string, kind AliasAnalysisKind) *Operator {
	s, err := parse.Schema(sig)
	if err != nil {
		panic(err)
	}
	return NewOperator(s, kind)
}

func (o *Operator) Schema() *schema.FunctionSchema { return o.schema }

func (o *Operator) AliasAnalysisKind() AliasAnalysisKind { return o.kind }

// Symbol is the symbol of the schema name.
func (o *Operator) Symbol() symbol.Symbol { return o.sym }

// Canonical returns the canonical signature of the schema.
func (o *Operator) Canonical() string { return schema.Canonical(o.schema) }

func (o *Operator) String() string { return o.schema.String() }
