// Package vals implements the polymorphic operations shared by the value
// algebra and the expression evaluator: truthiness, equality, indexing,
// member access, invocation, arithmetic and representation.
//
// Each operation is a single dispatch over the concrete type of its
// operand, extensible through a small interface (Booler, Equaler, Indexer,
// Attrer, Callable, Reprer) that external values may satisfy.
package vals
