// Package symbol provides interned, namespaced identifiers for operators.
//
// A Symbol is a small integer handle into a process-wide intern table. It is
// cheap to copy, totally ordered and usable as a map key. Every symbol has a
// namespace component (itself a symbol of the form "namespaces::<ns>") and a
// qualified string form "ns::name".
//
//	add := symbol.FromQualString("aten::add")
//	add.NS() == symbol.Aten              // true
//	add.QualString() == "aten::add"      // true
//	add.UnqualString() == "add"          // true
package symbol

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type Symbol uint32

const sep = "::"

var ErrBadSymbol = errors.New("bad symbol")

type entry struct {
	qual   string
	unqual string
	ns     Symbol
}

var (
	mu      sync.RWMutex
	byQual  = map[string]Symbol{}
	entries []entry
)

// well-known namespaces, interned in init order
var (
	Namespaces = FromQualString("namespaces::namespaces")
	Prim       = FromQualString("namespaces::prim")
	Aten       = FromQualString("namespaces::aten")
	Onnx       = FromQualString("namespaces::onnx")
	Attr       = FromQualString("namespaces::attr")
)

// Parse interns a qualified string "ns::name".
func Parse(qual string) (Symbol, error) {
	ns, unqual, err := split(qual)
	if err != nil {
		return 0, err
	}
	mu.RLock()
	s, ok := byQual[qual]
	mu.RUnlock()
	if ok {
		return s, nil
	}
	return intern(qual, ns, unqual), nil
}

// FromQualString is like Parse but panics on malformed input.  It is meant for
// names which are fixed in the program text.
func FromQualString(qual string) Symbol {
	s, err := Parse(qual)
	if err != nil {
		panic(err)
	}
	return s
}

// FromDomainAndUnqual interns ns::name.  ns may be given with or without the
// "namespaces::" prefix.
func FromDomainAndUnqual(ns, unqual string) Symbol {
	ns = strings.TrimPrefix(ns, "namespaces"+sep)
	return FromQualString(ns + sep + unqual)
}

func split(qual string) (string, string, error) {
	i := strings.Index(qual, sep)
	if i == -1 {
		return "", "", fmt.Errorf("%w: %q has no namespace", ErrBadSymbol, qual)
	}
	ns, unqual := qual[:i], qual[i+len(sep):]
	if ns == "" || unqual == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadSymbol, qual)
	}
	if strings.Contains(unqual, sep) {
		return "", "", fmt.Errorf("%w: %q has more than one namespace", ErrBadSymbol, qual)
	}
	return ns, unqual, nil
}

func intern(qual, ns, unqual string) Symbol {
	mu.Lock()
	defer mu.Unlock()
	return internLocked(qual, ns, unqual)
}

const metaQual = "namespaces" + sep + "namespaces"

// caller must hold mu
func internLocked(qual, ns, unqual string) Symbol {
	if s, ok := byQual[qual]; ok {
		return s
	}
	s := Symbol(len(entries))
	entries = append(entries, entry{qual: qual, unqual: unqual})
	byQual[qual] = s
	if qual == metaQual {
		entries[s].ns = s
		return s
	}
	nsSym := internLocked("namespaces"+sep+ns, "namespaces", ns)
	entries[s].ns = nsSym
	return s
}

func (s Symbol) entry() entry {
	mu.RLock()
	defer mu.RUnlock()
	if int(s) >= len(entries) {
		panic(fmt.Sprintf("symbol: unknown symbol %d", uint32(s)))
	}
	return entries[s]
}

// QualString returns "ns::name".
func (s Symbol) QualString() string { return s.entry().qual }

// UnqualString returns the name without its namespace.
func (s Symbol) UnqualString() string { return s.entry().unqual }

// NS returns the namespace symbol "namespaces::<ns>".
func (s Symbol) NS() Symbol { return s.entry().ns }

// DomainString returns the bare namespace, e.g. "aten".
func (s Symbol) DomainString() string { return s.NS().UnqualString() }

func (s Symbol) Is(ns Symbol) bool { return s.NS() == ns }

func (s Symbol) String() string { return s.QualString() }
