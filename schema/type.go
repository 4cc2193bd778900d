package schema

import "strings"

type Kind int

const (
	NamedKind Kind = iota
	OptionalKind
	ListKind
	TupleKind
	DictKind
	FutureKind
	VarKind
)

func (k Kind) String() string {
	return map[Kind]string{
		NamedKind:    "named",
		OptionalKind: "optional",
		ListKind:     "list",
		TupleKind:    "tuple",
		DictKind:     "dict",
		FutureKind:   "future",
		VarKind:      "var",
	}[k]
}

// Type is an argument or return type.  Named and Var types carry Name;
// the others carry their element types in Elems.
type Type struct {
	Kind  Kind
	Name  string
	Elems []*Type
}

func Named(name string) *Type { return &Type{Kind: NamedKind, Name: name} }

func Var(name string) *Type { return &Type{Kind: VarKind, Name: name} }

func Optional(t *Type) *Type { return &Type{Kind: OptionalKind, Elems: []*Type{t}} }

func List(t *Type) *Type { return &Type{Kind: ListKind, Elems: []*Type{t}} }

func Tuple(ts ...*Type) *Type { return &Type{Kind: TupleKind, Elems: ts} }

func Dict(k, v *Type) *Type { return &Type{Kind: DictKind, Elems: []*Type{k, v}} }

func Future(t *Type) *Type { return &Type{Kind: FutureKind, Elems: []*Type{t}} }

// Elem returns the element type of an optional, list or future type.
func (t *Type) Elem() *Type {
	if len(t.Elems) == 0 {
		return nil
	}
	return t.Elems[0]
}

// String renders the canonical type string.
func (t *Type) String() string {
	buf := &strings.Builder{}
	t.write(buf)
	return buf.String()
}

func (t *Type) write(buf *strings.Builder) {
	switch t.Kind {
	case NamedKind, VarKind:
		buf.WriteString(t.Name)
	case OptionalKind:
		t.Elem().write(buf)
		buf.WriteByte('?')
	case ListKind:
		t.Elem().write(buf)
		buf.WriteString("[]")
	case TupleKind:
		buf.WriteByte('(')
		writeTypes(buf, t.Elems)
		buf.WriteByte(')')
	case DictKind:
		buf.WriteString("Dict(")
		writeTypes(buf, t.Elems)
		buf.WriteByte(')')
	case FutureKind:
		buf.WriteString("Future(")
		writeTypes(buf, t.Elems)
		buf.WriteByte(')')
	}
}

func writeTypes(buf *strings.Builder, ts []*Type) {
	for i, e := range ts {
		if i > 0 {
			buf.WriteString(", ")
		}
		e.write(buf)
	}
}

// Equal reports structural equality.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || t.Name != o.Name || len(t.Elems) != len(o.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}
