// project implements a generalized projection in relational algebra

package rel

// ProjectExpr maps every row of its source to a new row.  The new rows do not
// need to have any relation to the old ones, which is how the row type
// changes in the middle of an expression.
type ProjectExpr[S, T Relation] struct {
	// the input expression
	source1 Expr[S]

	// the mapping from source rows to output rows
	m func(S) T
}

// NewProject creates a new expression with equal cardinality.  Projection
// never drops or duplicates rows; use Select or Distinct for that.
func NewProject[S, T Relation](e1 Expr[S], m func(S) T) *ProjectExpr[S, T] {
	return &ProjectExpr[S, T]{e1, m}
}

// Eval applies the mapper to every row of the source, in order.
func (e *ProjectExpr[S, T]) Eval() []T {
	rows1 := e.source1.Eval()
	rows2 := make([]T, len(rows1))
	for i, tup := range rows1 {
		rows2[i] = e.m(tup)
	}
	return rows2
}

// GoString returns a text representation of the expression
func (e *ProjectExpr[S, T]) GoString() string {
	return "rel.NewProject(" + e.source1.GoString() + ", " + funcName(e.m) + ")"
}

// String returns a text representation of the expression
func (e *ProjectExpr[S, T]) String() string {
	return "π{" + funcName(e.m) + "}(" + e.source1.String() + ")"
}
