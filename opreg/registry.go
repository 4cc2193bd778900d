package opreg

import (
	"sync"

	"github.com/signadot/opreg/debug"
	"github.com/signadot/opreg/exempt"
	"github.com/signadot/opreg/parse"
	"github.com/signadot/opreg/schema"
	"github.com/signadot/opreg/symbol"
)

// DefaultMaxEditDistance bounds FindSimilarOperators.
const DefaultMaxEditDistance = 2

// ParseFunc parses a signature into a schema.
type ParseFunc func(string) (*schema.FunctionSchema, error)

// Registry holds registered operators.  The zero value is not usable; use
// New or Default.
type Registry struct {
	mu sync.Mutex

	// registered but not yet indexed
	pending []*Operator

	bySymbol map[symbol.Symbol][]*Operator
	// symbols in the order their first operator was indexed
	order []symbol.Symbol

	// canonical signature -> last operator registered with it
	bySig map[string]*Operator

	literals map[*Literal]*Operator

	policy  ExemptionPolicy
	maxDist int
	parse   ParseFunc
}

type Option func(*Registry)

// WithPolicy sets the policy used to check variadic-return operators.  The
// default is exempt.Default().
func WithPolicy(p ExemptionPolicy) Option {
	return func(r *Registry) { r.policy = p }
}

// WithMaxEditDistance sets the distance bound of FindSimilarOperators.
func WithMaxEditDistance(n int) Option {
	return func(r *Registry) { r.maxDist = n }
}

// WithParser replaces the signature parser used for literal and signature
// lookups.
func WithParser(f ParseFunc) Option {
	return func(r *Registry) { r.parse = f }
}

func New(opts ...Option) *Registry {
	r := &Registry{
		bySymbol: map[symbol.Symbol][]*Operator{},
		bySig:    map[string]*Operator{},
		literals: map[*Literal]*Operator{},
		policy:   exempt.Default(),
		maxDist:  DefaultMaxEditDistance,
		parse:    defaultParse,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func defaultParse(sig string) (*schema.FunctionSchema, error) {
	return parse.Schema(sig)
}

// Register queues op.  It panics if op is nil or if op has a variadic
// return and the registry's policy does not allow it.
func (r *Registry) Register(op *Operator) {
	if err := r.TryRegister(op); err != nil {
		panic(err)
	}
}

// TryRegister is like Register but returns the error instead of panicking.
func (r *Registry) TryRegister(op *Operator) error {
	if op == nil {
		return ErrNilOperator
	}
	if err := checkVarret(r.policy, op); err != nil {
		return err
	}
	if debug.Register() {
		debug.Logf("register %s (%s)\n", op, op.kind)
	}
	r.mu.Lock()
	r.pending = append(r.pending, op)
	r.mu.Unlock()
	return nil
}

// caller must hold r.mu
func (r *Registry) flushLocked() {
	if len(r.pending) == 0 {
		return
	}
	for _, op := range r.pending {
		sym := op.sym
		ops, present := r.bySymbol[sym]
		if !present {
			r.order = append(r.order, sym)
		}
		r.bySymbol[sym] = append(ops, op)
		canon := op.Canonical()
		r.bySig[canon] = op
		if debug.Flush() {
			debug.Logf("flush %s as %q\n", sym, canon)
		}
	}
	clear(r.pending)
	r.pending = r.pending[:0]
}

// GetOperators returns the operators registered for sym in registration
// order, or nil if there are none.
func (r *Registry) GetOperators(sym symbol.Symbol) []*Operator {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	ops := r.bySymbol[sym]
	if len(ops) == 0 {
		return nil
	}
	res := make([]*Operator, len(ops))
	copy(res, ops)
	return res
}

// FindOperator returns the first operator registered under name.Name whose
// overload name is name.OverloadName, or nil.
func (r *Registry) FindOperator(name schema.OperatorName) *Operator {
	sym, err := symbol.Parse(name.Name)
	if err != nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	for _, op := range r.bySymbol[sym] {
		if op.schema.OverloadName == name.OverloadName {
			return op
		}
	}
	return nil
}

// GetAllOperators returns every registered operator, grouped by symbol in
// the order symbols were first seen.
func (r *Registry) GetAllOperators() []*Operator {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	var res []*Operator
	for _, sym := range r.order {
		res = append(res, r.bySymbol[sym]...)
	}
	return res
}

// Symbols returns the registered symbols in the order they were first seen.
func (r *Registry) Symbols() []symbol.Symbol {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	res := make([]symbol.Symbol, len(r.order))
	copy(res, r.order)
	return res
}
