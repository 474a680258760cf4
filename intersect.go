// intersect implements an intersection expression in relational algebra

package rel

// IntersectExpr keeps the rows of its first source which are equal to some
// row of its second source.  It is a membership test and not a multiset
// intersection: if the first source has a row twice and the row is anywhere
// in the second source, both copies are kept.
type IntersectExpr[T Relation] struct {
	source1 Expr[T]
	source2 Expr[T]
}

// NewIntersect creates a new expression which probes e2 for every row of e1.
func NewIntersect[T Relation](e1, e2 Expr[T]) *IntersectExpr[T] {
	return &IntersectExpr[T]{e1, e2}
}

// Eval returns the rows of the first source which occur in the second, in
// the order of the first.  This consumes memory proportional to the number
// of distinct rows in the second source.
func (e *IntersectExpr[T]) Eval() []T {
	rows1 := e.source1.Eval()
	mem := memory(e.source2.Eval())

	rows3 := make([]T, 0)
	for _, tup := range rows1 {
		if _, ok := mem[tup]; ok {
			rows3 = append(rows3, tup)
		}
	}
	return rows3
}

// GoString returns a text representation of the expression
func (e *IntersectExpr[T]) GoString() string {
	return "rel.NewIntersect(" + e.source1.GoString() + ", " + e.source2.GoString() + ")"
}

// String returns a text representation of the expression
func (e *IntersectExpr[T]) String() string {
	return e.source1.String() + " ∩ " + e.source2.String()
}

// memory builds a set of the rows, for membership tests
func memory[T Relation](rows []T) map[T]struct{} {
	mem := make(map[T]struct{}, len(rows))
	for _, tup := range rows {
		mem[tup] = struct{}{}
	}
	return mem
}
