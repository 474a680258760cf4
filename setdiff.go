//setdiff implements a difference expression in relational algebra

package rel

// DifferenceExpr keeps the rows of its first source which are not equal to
// any row of its second source.  Like IntersectExpr it does not count
// multiplicities, so it is an anti semi join rather than a multiset minus.
type DifferenceExpr[T Relation] struct {
	source1 Expr[T]
	source2 Expr[T]
}

// NewDifference creates a new expression which removes the rows of e2 from
// e1.
func NewDifference[T Relation](e1, e2 Expr[T]) *DifferenceExpr[T] {
	return &DifferenceExpr[T]{e1, e2}
}

// Eval returns the rows of the first source that do not occur in the second,
// in the order of the first.  No rows can be produced before the second
// source is entirely in memory.
func (e *DifferenceExpr[T]) Eval() []T {
	rows1 := e.source1.Eval()
	mem := memory(e.source2.Eval())

	rows3 := make([]T, 0, len(rows1))
	for _, tup := range rows1 {
		if _, rem := mem[tup]; !rem {
			rows3 = append(rows3, tup)
		}
	}
	return rows3
}

// GoString returns a text representation of the expression
func (e *DifferenceExpr[T]) GoString() string {
	return "rel.NewDifference(" + e.source1.GoString() + ", " + e.source2.GoString() + ")"
}

// String returns a text representation of the expression
func (e *DifferenceExpr[T]) String() string {
	return e.source1.String() + " − " + e.source2.String()
}
