package opreg

import (
	"sort"

	"github.com/agext/levenshtein"
	"github.com/signadot/opreg/debug"
	"github.com/signadot/opreg/symbol"
)

// FindSimilarOperators returns registered symbols whose qualified string is
// within the registry's edit distance bound of sym's, closest first.
// Symbols at the same distance keep the order they were first registered
// in.
func (r *Registry) FindSimilarOperators(sym symbol.Symbol) []symbol.Symbol {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	return r.similarLocked(sym)
}

type candidate struct {
	sym  symbol.Symbol
	dist int
}

// caller must hold r.mu
func (r *Registry) similarLocked(sym symbol.Symbol) []symbol.Symbol {
	q := sym.QualString()
	params := levenshtein.NewParams()
	if r.maxDist > 0 {
		params = params.MaxCost(r.maxDist)
	}
	var cands []candidate
	for _, s := range r.order {
		d := levenshtein.Distance(q, s.QualString(), params)
		if d > r.maxDist {
			continue
		}
		cands = append(cands, candidate{sym: s, dist: d})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist < cands[j].dist
	})
	res := make([]symbol.Symbol, len(cands))
	for i := range cands {
		res[i] = cands[i].sym
	}
	if debug.Similar() {
		debug.Logf("similar %s: %v\n", sym, res)
	}
	return res
}
