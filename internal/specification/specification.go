// Package specification provides composable boolean business rules.
//
// A Specification wraps one predicate over an entity type and can be
// combined with And/Or/Not into arbitrarily nested rules without duplicating
// logic. Combinators always return new specifications; the originals are
// never mutated. Specifications are pure: no side effects, no I/O.
package specification

// Specification is a single business predicate over T
type Specification[T any] interface {
	IsSatisfiedBy(entity T) bool
	And(other Specification[T]) Specification[T]
	Or(other Specification[T]) Specification[T]
	Not() Specification[T]
}

// Func adapts a plain predicate function into a Specification
func Func[T any](predicate func(T) bool) Specification[T] {
	return funcSpec[T]{predicate: predicate}
}

type funcSpec[T any] struct {
	predicate func(T) bool
}

func (s funcSpec[T]) IsSatisfiedBy(entity T) bool      { return s.predicate(entity) }
func (s funcSpec[T]) And(o Specification[T]) Specification[T] { return andSpec[T]{left: s, right: o} }
func (s funcSpec[T]) Or(o Specification[T]) Specification[T]  { return orSpec[T]{left: s, right: o} }
func (s funcSpec[T]) Not() Specification[T]            { return notSpec[T]{inner: s} }

type andSpec[T any] struct {
	left, right Specification[T]
}

func (s andSpec[T]) IsSatisfiedBy(entity T) bool {
	return s.left.IsSatisfiedBy(entity) && s.right.IsSatisfiedBy(entity)
}
func (s andSpec[T]) And(o Specification[T]) Specification[T] { return andSpec[T]{left: s, right: o} }
func (s andSpec[T]) Or(o Specification[T]) Specification[T]  { return orSpec[T]{left: s, right: o} }
func (s andSpec[T]) Not() Specification[T]                   { return notSpec[T]{inner: s} }

type orSpec[T any] struct {
	left, right Specification[T]
}

func (s orSpec[T]) IsSatisfiedBy(entity T) bool {
	return s.left.IsSatisfiedBy(entity) || s.right.IsSatisfiedBy(entity)
}
func (s orSpec[T]) And(o Specification[T]) Specification[T] { return andSpec[T]{left: s, right: o} }
func (s orSpec[T]) Or(o Specification[T]) Specification[T]  { return orSpec[T]{left: s, right: o} }
func (s orSpec[T]) Not() Specification[T]                   { return notSpec[T]{inner: s} }

type notSpec[T any] struct {
	inner Specification[T]
}

func (s notSpec[T]) IsSatisfiedBy(entity T) bool {
	return !s.inner.IsSatisfiedBy(entity)
}
func (s notSpec[T]) And(o Specification[T]) Specification[T] { return andSpec[T]{left: s, right: o} }
func (s notSpec[T]) Or(o Specification[T]) Specification[T]  { return orSpec[T]{left: s, right: o} }
func (s notSpec[T]) Not() Specification[T]                   { return notSpec[T]{inner: s} }
