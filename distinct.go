package rel

// DistinctExpr removes duplicate rows.  It is the only expression which does
// not follow bag semantics.
type DistinctExpr[T Relation] struct {
	source1 Expr[T]
}

// NewDistinct creates a new expression with the unique rows of e1.
func NewDistinct[T Relation](e1 Expr[T]) *DistinctExpr[T] {
	return &DistinctExpr[T]{e1}
}

// Eval returns the first occurrence of every row of the source, in order.
func (e *DistinctExpr[T]) Eval() []T {
	rows1 := e.source1.Eval()
	mem := make(map[T]struct{}, len(rows1))
	rows2 := make([]T, 0, len(rows1))
	for _, tup := range rows1 {
		if _, dup := mem[tup]; !dup {
			mem[tup] = struct{}{}
			rows2 = append(rows2, tup)
		}
	}
	return rows2
}

// GoString returns a text representation of the expression
func (e *DistinctExpr[T]) GoString() string {
	return "rel.NewDistinct(" + e.source1.GoString() + ")"
}

// String returns a text representation of the expression
func (e *DistinctExpr[T]) String() string {
	return "δ(" + e.source1.String() + ")"
}
