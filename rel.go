package rel

// Relation is the constraint on row types.  Rows have to support equality and
// they are always copied by value, which comparable types in go do.
//
// A struct or array type with interface fields satisfies comparable, but
// comparing two of its values panics when the dynamic types of those fields
// are not comparable.  Intersect, Difference and Distinct compare rows, so
// they panic on such rows.
type Relation interface {
	comparable
}

// Expr is a relational expression that produces rows of type T.
type Expr[T Relation] interface {
	// Eval evaluates any sub expressions and then applies its own
	// transformation, returning a newly allocated slice of rows.  It never
	// modifies the expression, and it can be called any number of times.
	Eval() []T

	// these are not relational but they are sure nice to have
	GoString() string
	String() string
}

// Card returns the cardinality of the expression.
// note: this evaluates the whole expression.
func Card[T Relation](e Expr[T]) int {
	return len(e.Eval())
}

// always is the predicate of a cartesian product.
func always[L, R any](L, R) bool {
	return true
}
