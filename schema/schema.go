package schema

import (
	"strconv"
	"strings"
)

// AliasInfo is an alias annotation such as the "(a!)" in "Tensor(a!)".
// Sets lists the alias sets ("a", or "a|b"); IsWrite is set by "!".
// Contained holds the annotation of list elements, as in "Tensor(a)[]".
type AliasInfo struct {
	Sets      []string
	IsWrite   bool
	Contained *AliasInfo
}

func (a *AliasInfo) String() string {
	buf := &strings.Builder{}
	buf.WriteByte('(')
	buf.WriteString(strings.Join(a.Sets, "|"))
	if a.IsWrite {
		buf.WriteByte('!')
	}
	buf.WriteByte(')')
	return buf.String()
}

type Argument struct {
	Name string
	Type *Type
	// N is the declared size of a fixed size list, as in "int[2]".
	N *int
	// Default is the default value as written in the declaration.
	Default   *string
	KwargOnly bool
	Alias     *AliasInfo
}

type FunctionSchema struct {
	Name         string
	OverloadName string
	Arguments    []Argument
	Returns      []Argument
	IsVararg     bool
	IsVarret     bool
}

// OperatorName is the full name of one overload.
type OperatorName struct {
	Name         string
	OverloadName string
}

func (n OperatorName) String() string {
	if n.OverloadName == "" {
		return n.Name
	}
	return n.Name + "." + n.OverloadName
}

func (s *FunctionSchema) OperatorName() OperatorName {
	return OperatorName{Name: s.Name, OverloadName: s.OverloadName}
}

// Namespace returns the part of the name before "::".
func (s *FunctionSchema) Namespace() string {
	i := strings.Index(s.Name, "::")
	if i == -1 {
		return ""
	}
	return s.Name[:i]
}

// String renders the full declaration, including the overload name,
// alias annotations, list sizes and defaults.
func (s *FunctionSchema) String() string {
	buf := &strings.Builder{}
	buf.WriteString(s.OperatorName().String())
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
		writeDecl(buf, a, true)
	}
	if s.IsVararg {
		if len(s.Arguments) > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString("...")
	}
	buf.WriteString(") -> ")
	switch {
	case s.IsVarret:
		buf.WriteString("...")
	case len(s.Returns) == 1 && s.Returns[0].Name == "":
		writeDecl(buf, &s.Returns[0], false)
	default:
		buf.WriteByte('(')
		for i := range s.Returns {
			if i > 0 {
				buf.WriteString(", ")
			}
			writeDecl(buf, &s.Returns[i], false)
		}
		buf.WriteByte(')')
	}
	return buf.String()
}

func writeDecl(buf *strings.Builder, a *Argument, withDefault bool) {
	writeAnnotatedType(buf, a.Type, a.Alias, a.N)
	if a.Name != "" {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
	}
	if withDefault && a.Default != nil {
		buf.WriteByte('=')
		buf.WriteString(*a.Default)
	}
}

// writeAnnotatedType writes t with its alias annotation where the parser
// expects it: on the element of an optional, as in "Tensor(a)?", and
// around the brackets of a list, as in "Tensor(a)[](b!)".
func writeAnnotatedType(buf *strings.Builder, t *Type, alias *AliasInfo, n *int) {
	switch t.Kind {
	case OptionalKind:
		writeAnnotatedType(buf, t.Elem(), alias, nil)
		buf.WriteByte('?')
		return
	case ListKind:
	default:
		buf.WriteString(t.String())
		if alias != nil {
			buf.WriteString(alias.String())
		}
		return
	}
	var elemAlias *AliasInfo
	if alias != nil {
		elemAlias = alias.Contained
	}
	writeAnnotatedType(buf, t.Elem(), elemAlias, nil)
	buf.WriteByte('[')
	if n != nil {
		buf.WriteString(strconv.Itoa(*n))
	}
	buf.WriteByte(']')
	if alias != nil && len(alias.Sets) > 0 {
		top := *alias
		top.Contained = nil
		buf.WriteString(top.String())
	}
}

// KwargOnly returns the keyword-only arguments.
func (s *FunctionSchema) KwargOnly() []Argument {
	for i := range s.Arguments {
		if s.Arguments[i].KwargOnly {
			return s.Arguments[i:]
		}
	}
	return nil
}

// IsMutable reports whether any argument is written to.
func (s *FunctionSchema) IsMutable() bool {
	for i := range s.Arguments {
		if a := s.Arguments[i].Alias; a != nil && a.IsWrite {
			return true
		}
	}
	return false
}
