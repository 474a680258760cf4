// union implements a union expression in relational algebra

package rel

// UnionExpr represents a union of two expressions of the same type.  This
// union keeps duplicates, both within and across its sources.
type UnionExpr[T Relation] struct {
	source1 Expr[T]
	source2 Expr[T]
}

// NewUnion creates a new expression with the rows of e1 followed by the rows
// of e2.
func NewUnion[T Relation](e1, e2 Expr[T]) *UnionExpr[T] {
	return &UnionExpr[T]{e1, e2}
}

// Eval returns the rows of the first source followed by the rows of the
// second.
func (e *UnionExpr[T]) Eval() []T {
	rows1 := e.source1.Eval()
	rows2 := e.source2.Eval()
	res := make([]T, 0, len(rows1)+len(rows2))
	res = append(res, rows1...)
	return append(res, rows2...)
}

// GoString returns a text representation of the expression
func (e *UnionExpr[T]) GoString() string {
	return "rel.NewUnion(" + e.source1.GoString() + ", " + e.source2.GoString() + ")"
}

// String returns a text representation of the expression
func (e *UnionExpr[T]) String() string {
	return e.source1.String() + " ∪ " + e.source2.String()
}
