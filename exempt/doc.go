// Package exempt holds the tables of un-schematized operators that the
// printer and alias analysis handle with special cases.
//
// Registering a variadic-return operator is only allowed when the printer
// knows how to print it, and when alias analysis either handles it or the
// operator is declared conservative.  The tables here are the default answer
// to those questions; [Policy] exposes them through the two predicates the
// registry consults.
package exempt
