package schema

import "strings"

// Canonical returns the canonical signature string of s.
//
// The format is
//
//	name(T1 a1, T2 a2, *, T3 a3) -> R
//	name(T1 a1) -> (R1, R2)
//	name() ->
//
// with "*, " written once before the first keyword-only argument and the
// return part left empty when there are no returns.
func Canonical(s *FunctionSchema) string {
	buf := &strings.Builder{}
	buf.WriteString(s.Name)
	buf.WriteByte('(')
	kw := false
	for i := range s.Arguments {
		if i > 0 {
			buf.WriteString(", ")
		}
		a := &s.Arguments[i]
		if a.KwargOnly && !kw {
			buf.WriteString("*, ")
			kw = true
		}
		buf.WriteString(a.Type.String())
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
	}
	buf.WriteString(") -> ")
	switch len(s.Returns) {
	case 0:
	case 1:
		buf.WriteString(s.Returns[0].Type.String())
	default:
		buf.WriteByte('(')
		for i := range s.Returns {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(s.Returns[i].Type.String())
		}
		buf.WriteByte(')')
	}
	return buf.String()
}

// Canonical is shorthand for Canonical(s).
func (s *FunctionSchema) Canonical() string {
	return Canonical(s)
}
