package rel

// Builder chains relational operations together.  Every step wraps the
// current expression in a new one and returns a new Builder, so a Builder
// can be shared and extended in different directions without interference.
//
// The zero Builder holds no expression and must not be evaluated.
type Builder[T Relation] struct {
	e Expr[T]
}

// New starts a Builder from an arbitrary expression.
func New[T Relation](e Expr[T]) Builder[T] {
	return Builder[T]{e}
}

// From starts a Builder from literal rows.  It is shorthand for
// New(NewTerminal(rows)).
func From[T Relation](rows []T) Builder[T] {
	return New[T](NewTerminal(rows))
}

// Expr returns the expression built so far.
func (b Builder[T]) Expr() Expr[T] {
	return b.e
}

// Eval evaluates the expression built so far.
func (b Builder[T]) Eval() []T {
	return b.e.Eval()
}

// String returns a text representation of the expression built so far
func (b Builder[T]) String() string {
	return b.e.String()
}

// Select keeps the rows which satisfy p.
func (b Builder[T]) Select(p func(T) bool) Builder[T] {
	return New[T](NewSelect(b.e, p))
}

// Union appends rows to the result.
func (b Builder[T]) Union(rows []T) Builder[T] {
	return New[T](NewUnion[T](b.e, NewTerminal(rows)))
}

// Intersect keeps the rows which also occur in rows.
func (b Builder[T]) Intersect(rows []T) Builder[T] {
	return New[T](NewIntersect[T](b.e, NewTerminal(rows)))
}

// Difference keeps the rows which do not occur in rows.
func (b Builder[T]) Difference(rows []T) Builder[T] {
	return New[T](NewDifference[T](b.e, NewTerminal(rows)))
}

// Distinct removes duplicate rows.
func (b Builder[T]) Distinct() Builder[T] {
	return New[T](NewDistinct(b.e))
}

// The rest of the steps change the row type.  Go methods cannot have their
// own type parameters, so they are functions which take the Builder first.

// Project maps every row with m.
func Project[S, T Relation](b Builder[S], m func(S) T) Builder[T] {
	return New[T](NewProject(b.e, m))
}

// Join joins the rows built so far with rows, keeping the pairs that satisfy
// p and combining them with m.
func Join[S, R, Res Relation](b Builder[S], rows []R, p func(S, R) bool, m func(S, R) Res) Builder[Res] {
	return New[Res](NewJoin[S, R, Res](b.e, NewTerminal(rows), p, m))
}

// CartesianProduct pairs every row built so far with every one of rows,
// combining them with m.
func CartesianProduct[S, R, Res Relation](b Builder[S], rows []R, m func(S, R) Res) Builder[Res] {
	return New[Res](NewProduct[S, R, Res](b.e, NewTerminal(rows), m))
}

// GroupBy groups the rows built so far by key, and aggregates every group
// into a single row with agg.
func GroupBy[S, K, Res Relation](b Builder[S], key func(S) K, agg func(K, []S) Res) Builder[Res] {
	return New[Res](NewGroupBy(b.e, key, agg))
}
