// restrict implements a selection expression in relational algebra

package rel

// SelectExpr keeps the rows of its source that satisfy a predicate.
type SelectExpr[T Relation] struct {
	// the input expression
	source1 Expr[T]

	// the restriction predicate
	p func(T) bool
}

// NewSelect creates a new expression with less than or equal cardinality.
// p has to be defined for every row; a predicate that panics takes the Eval
// down with it.
func NewSelect[T Relation](e1 Expr[T], p func(T) bool) *SelectExpr[T] {
	return &SelectExpr[T]{e1, p}
}

// Eval returns the rows of the source for which the predicate holds, in the
// order the source produced them.
func (e *SelectExpr[T]) Eval() []T {
	rows1 := e.source1.Eval()
	rows2 := make([]T, 0, len(rows1))
	for _, tup := range rows1 {
		if e.p(tup) {
			rows2 = append(rows2, tup)
		}
	}
	return rows2
}

// GoString returns a text representation of the expression
func (e *SelectExpr[T]) GoString() string {
	return "rel.NewSelect(" + e.source1.GoString() + ", " + funcName(e.p) + ")"
}

// String returns a text representation of the expression
func (e *SelectExpr[T]) String() string {
	return "σ{" + funcName(e.p) + "}(" + e.source1.String() + ")"
}
