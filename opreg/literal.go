package opreg

import (
	"github.com/signadot/opreg/debug"
	"github.com/signadot/opreg/schema"
)

// Literal is a handle for a signature fixed in the program text.  Lookups
// through a handle are memoized on the handle's identity, so a handle
// should be created once, typically as a package level variable, and
// reused.
type Literal struct {
	text string
}

func Lit(text string) *Literal {
	return &Literal{text: text}
}

func (l *Literal) String() string { return l.text }

// GetOperatorForLiteral returns the operator whose canonical signature
// matches lit.  It panics with an error wrapping ErrOperatorNotFound if no
// such operator is registered or the signature does not parse; a literal
// which names no operator is a bug in the program.
func (r *Registry) GetOperatorForLiteral(lit *Literal) *Operator {
	r.mu.Lock()
	r.flushLocked()
	op, ok := r.literals[lit]
	r.mu.Unlock()
	if ok {
		return op
	}
	s, err := r.parse(lit.text)
	if err != nil {
		panic(&NotFoundError{Signature: lit.text, ParseErr: err})
	}
	canon := schema.Canonical(s)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	op = r.bySig[canon]
	if op == nil {
		panic(r.notFoundLocked(lit.text, s, canon))
	}
	if debug.Lookup() {
		debug.Logf("literal %q -> %s\n", lit.text, op)
	}
	r.literals[lit] = op
	return op
}

// LookupSignature resolves a signature like GetOperatorForLiteral, but
// bypasses the literal cache and returns an error instead of panicking.
func (r *Registry) LookupSignature(sig string) (*Operator, error) {
	s, err := r.parse(sig)
	if err != nil {
		return nil, &NotFoundError{Signature: sig, ParseErr: err}
	}
	canon := schema.Canonical(s)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	if op := r.bySig[canon]; op != nil {
		return op, nil
	}
	return nil, r.notFoundLocked(sig, s, canon)
}
