// Package opreg is a registry of operators keyed by symbol and by signature.
//
// Operators are registered at program start, usually from init functions,
// and looked up later by a compiler or runtime.  Registration only queues
// an operator; the indices are built on the first read that follows, so
// registering thousands of operators costs little until something asks for
// one.
//
// There are four ways to find an operator:
//
//   - [Registry.GetOperators] returns every overload registered for a symbol.
//   - [Registry.FindOperator] picks one overload by name and overload name.
//   - [Registry.GetOperatorForLiteral] resolves a full signature written as
//     a constant in the program.  The result is memoized on the identity of
//     the [Literal] handle, so repeated lookups through the same handle do
//     not parse the signature again.
//   - [Registry.FindSimilarOperators] suggests symbols within a small edit
//     distance of a misspelled one.
//
// A process-wide registry is available through [Default] and the package
// level functions which forward to it.
//
//	var addTensor = opreg.Lit("aten::add(Tensor self, Tensor other) -> Tensor")
//
//	func init() {
//		opreg.Register(opreg.MustOperator("aten::add(Tensor self, Tensor other) -> Tensor", opreg.FromSchema))
//	}
//
//	op := opreg.GetOperatorForLiteral(addTensor)
//
// # Variadic returns
//
// An operator whose schema returns "..." has no schema the rest of the
// system can reason about, so it must be special cased by the printer and,
// depending on its [AliasAnalysisKind], by alias analysis.  Register checks
// this against the registry's [ExemptionPolicy] and panics when the check
// fails.
package opreg
