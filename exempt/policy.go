package exempt

import "github.com/signadot/opreg/symbol"

// Tables configures a Policy.
type Tables struct {
	// Printer sets list operators with a printer case, or that need none.
	Printer []Set
	// PrinterRequiredNamespaces restricts the printer requirement to these
	// namespaces.
	PrinterRequiredNamespaces Set
	// AliasAnalysis sets list operators alias analysis handles.
	AliasAnalysis []Set
}

// Policy answers whether the printer and alias analysis handle a symbol.
type Policy struct {
	printer  Set
	required Set
	alias    Set
}

func NewPolicy(t Tables) *Policy {
	return &Policy{
		printer:  Union(t.Printer...),
		required: Union(t.PrinterRequiredNamespaces),
		alias:    Union(t.AliasAnalysis...),
	}
}

var defaultPolicy = NewPolicy(Tables{
	Printer:                   []Set{PrinterHandled, PrinterUnneeded},
	PrinterRequiredNamespaces: PrinterRequiredNamespaces,
	AliasAnalysis:             []Set{AliasHandled, AliasNotHandled},
})

// Default returns the policy built from the package tables.
func Default() *Policy {
	return defaultPolicy
}

func (p *Policy) PrinterHandles(sym symbol.Symbol) bool {
	if !p.required.Has(sym.NS()) {
		return true
	}
	return p.printer.Has(sym)
}

func (p *Policy) AliasAnalysisHandles(sym symbol.Symbol) bool {
	return p.alias.Has(sym)
}
