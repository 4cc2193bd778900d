// Package token provides tokenization of operator signatures.
//
// [Tokenize] splits a signature such as
//
//	aten::add.Tensor(Tensor(a!) self, Tensor other, *, Scalar alpha=1) -> Tensor(a!)
//
// into a flat sequence of [Token]s.  Qualified names ("aten::add.Tensor") are
// returned as a single [TName] token; the parser splits off the overload
// name.  Every token records its [Pos] so that parse errors can point at the
// offending byte.
package token
