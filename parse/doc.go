// Package parse parses operator declarations into schemas.
//
// # Usage
//
//	s, err := parse.Schema("aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor")
//	if err != nil {
//	    return err
//	}
//	s.Name         // "aten::add"
//	s.OverloadName // "Tensor"
//
//	t, err := parse.Type("Dict(str, Tensor?[])")
//
//	n, err := parse.OperatorName("aten::add.Tensor")
//
// # Grammar
//
//	schema   := name '(' [arg {',' arg}] ')' '->' returns
//	name     := ns '::' ident ['.' overload]
//	arg      := '*' | '...' | type ident ['=' default]
//	returns  := '...' | type [ident] | '(' [type [ident] {',' type [ident]}] ')'
//	type     := base [alias] {'?' | '[' [int] ']' [alias]}
//	base     := ident | 'Dict' '(' type ',' type ')' | 'Future' '(' type ')' | '(' type {',' type} ')'
//	alias    := '(' set {'|' set} ['!'] ')'
//
// A lone "*" marks every following argument as keyword-only.  "..." as the
// last argument marks a vararg schema; "..." as the returns marks a
// variadic-return schema.
//
// # Related Packages
//
//   - github.com/signadot/opreg/schema - schema representation
//   - github.com/signadot/opreg/token - tokenization
package parse
