// Package schema describes operator signatures.
//
// A [FunctionSchema] records the namespace-qualified name of an operator, its
// overload name, its ordered arguments and its ordered returns.  Schemas are
// normally produced by the parse package from declarations such as
//
//	aten::add.Tensor(Tensor self, Tensor other, *, Scalar alpha=1) -> Tensor
//
// # Canonical strings
//
// [Canonical] serializes the semantic shape of a schema into a string:
//
//	aten::add(Tensor self, Tensor other, *, Scalar alpha) -> Tensor
//
// Overload names, defaults, fixed list sizes and alias annotations are left
// out, so two schemas describing the same call shape produce byte-identical
// canonical strings no matter how they were built.  The canonical string is
// the key used to join a signature written at a call site with a registered
// operator.
//
// # Un-schematized operators
//
// A schema whose returns are declared as "..." is variadic-return
// ([FunctionSchema.IsVarret]).  Such operators have no fixed output shape and
// need special handling in the printer and in alias analysis.
package schema
