// predicate defines logical predicates used in select and join

package rel

// Pred is a predicate on a single row, used for Select.  Any func(T) bool
// can be converted to a Pred to get at the combinators.
type Pred[T any] func(T) bool

// Pred2 is a predicate on a pair of rows, used for Join.
type Pred2[L, R any] func(L, R) bool

// True is a predicate which always holds.
func True[T any](T) bool { return true }

// False is a predicate which never holds.
func False[T any](T) bool { return false }

// And predicate
func (p1 Pred[T]) And(p2 Pred[T]) Pred[T] {
	return func(tup T) bool { return p1(tup) && p2(tup) }
}

// Or predicate
func (p1 Pred[T]) Or(p2 Pred[T]) Pred[T] {
	return func(tup T) bool { return p1(tup) || p2(tup) }
}

// Xor predicate
func (p1 Pred[T]) Xor(p2 Pred[T]) Pred[T] {
	return func(tup T) bool { return p1(tup) != p2(tup) }
}

// Not predicate.  Prefix not is a lot more comprehensible than postfix, so
// it is a function and not a method.
func Not[T any](p Pred[T]) Pred[T] {
	return func(tup T) bool { return !p(tup) }
}

// And predicate
func (p1 Pred2[L, R]) And(p2 Pred2[L, R]) Pred2[L, R] {
	return func(tup1 L, tup2 R) bool { return p1(tup1, tup2) && p2(tup1, tup2) }
}

// Or predicate
func (p1 Pred2[L, R]) Or(p2 Pred2[L, R]) Pred2[L, R] {
	return func(tup1 L, tup2 R) bool { return p1(tup1, tup2) || p2(tup1, tup2) }
}

// Xor predicate
func (p1 Pred2[L, R]) Xor(p2 Pred2[L, R]) Pred2[L, R] {
	return func(tup1 L, tup2 R) bool { return p1(tup1, tup2) != p2(tup1, tup2) }
}

// Not2 negates a join predicate.
func Not2[L, R any](p Pred2[L, R]) Pred2[L, R] {
	return func(tup1 L, tup2 R) bool { return !p(tup1, tup2) }
}

// On makes an equi join predicate, which holds when both rows have the same
// key.
func On[L, R any, K comparable](k1 func(L) K, k2 func(R) K) Pred2[L, R] {
	return func(tup1 L, tup2 R) bool { return k1(tup1) == k2(tup2) }
}
