package opreg

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/opreg/schema"
	"github.com/signadot/opreg/symbol"
)

// NotFoundError reports a signature which resolves to no operator.
type NotFoundError struct {
	Signature string
	// Canonical is empty when the signature does not parse.
	Canonical string
	// Closest is the operator of the same symbol whose canonical signature
	// is nearest to Canonical.
	Closest *Operator
	// Suggestions are similar symbols, filled in when the symbol has no
	// operators at all.
	Suggestions []symbol.Symbol
	// ParseErr is the parse error, if any.
	ParseErr error
}

func (e *NotFoundError) Error() string {
	buf := &strings.Builder{}
	buf.WriteString(ErrOperatorNotFound.Error())
	if e.ParseErr != nil {
		fmt.Fprintf(buf, ": couldn't parse %q: %v", e.Signature, e.ParseErr)
		return buf.String()
	}
	fmt.Fprintf(buf, ": couldn't find an operator for %q; is a hardcoded signature out of date?", e.Signature)
	if e.Closest != nil {
		have := e.Closest.Canonical()
		fmt.Fprintf(buf, "\n  closest: %s\n  diff:    %s", have, SignatureDiff(e.Canonical, have))
	}
	if len(e.Suggestions) > 0 {
		strs := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			strs[i] = s.QualString()
		}
		fmt.Fprintf(buf, "\n  did you mean: %s", strings.Join(strs, ", "))
	}
	return buf.String()
}

func (e *NotFoundError) Unwrap() []error {
	if e.ParseErr != nil {
		return []error{ErrOperatorNotFound, e.ParseErr}
	}
	return []error{ErrOperatorNotFound}
}

// caller must hold r.mu
func (r *Registry) notFoundLocked(sig string, s *schema.FunctionSchema, canon string) error {
	e := &NotFoundError{Signature: sig, Canonical: canon}
	sym, err := symbol.Parse(s.Name)
	if err != nil {
		return e
	}
	best := -1
	for _, op := range r.bySymbol[sym] {
		d := levenshtein.Distance(canon, op.Canonical(), levenshtein.NewParams())
		if best == -1 || d < best {
			best = d
			e.Closest = op
		}
	}
	if e.Closest == nil {
		e.Suggestions = r.similarLocked(sym)
	}
	return e
}

// SignatureDiff renders the changes turning from into to, with deletions
// as [-text-] and insertions as {+text+}.
func SignatureDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		}
	}
	return buf.String()
}
