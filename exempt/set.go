package exempt

import (
	"slices"

	"github.com/signadot/opreg/symbol"
)

// Set is an immutable set of symbols.
type Set struct {
	m map[symbol.Symbol]struct{}
}

func NewSet(syms ...symbol.Symbol) Set {
	m := make(map[symbol.Symbol]struct{}, len(syms))
	for _, s := range syms {
		m[s] = struct{}{}
	}
	return Set{m: m}
}

// SetOf interns each qualified string and returns the resulting set.
func SetOf(quals ...string) Set {
	syms := make([]symbol.Symbol, len(quals))
	for i, q := range quals {
		syms[i] = symbol.FromQualString(q)
	}
	return NewSet(syms...)
}

func (s Set) Has(sym symbol.Symbol) bool {
	_, ok := s.m[sym]
	return ok
}

func (s Set) Len() int {
	return len(s.m)
}

// Symbols returns the members ordered by qualified string.
func (s Set) Symbols() []symbol.Symbol {
	res := make([]symbol.Symbol, 0, len(s.m))
	for sym := range s.m {
		res = append(res, sym)
	}
	slices.SortFunc(res, func(a, b symbol.Symbol) int {
		switch {
		case a.QualString() < b.QualString():
			return -1
		case a.QualString() > b.QualString():
			return 1
		}
		return 0
	})
	return res
}

// Union returns a new set holding the members of all of ss.
func Union(ss ...Set) Set {
	n := 0
	for _, s := range ss {
		n += s.Len()
	}
	m := make(map[symbol.Symbol]struct{}, n)
	for _, s := range ss {
		for sym := range s.m {
			m[sym] = struct{}{}
		}
	}
	return Set{m: m}
}
