// product implements a cartesian product expression in relational algebra

package rel

// ProductExpr is the cartesian product of two expressions.  It is a join
// whose predicate always holds, and it is evaluated by that join.
type ProductExpr[L, R, Res Relation] struct {
	join *JoinExpr[L, R, Res]
}

// NewProduct creates a new expression which pairs every row of e1 with every
// row of e2.
func NewProduct[L, R, Res Relation](e1 Expr[L], e2 Expr[R], m func(L, R) Res) *ProductExpr[L, R, Res] {
	return &ProductExpr[L, R, Res]{NewJoin(e1, e2, always[L, R], m)}
}

// Eval returns m(tup1, tup2) for every pair of rows, left major.
func (e *ProductExpr[L, R, Res]) Eval() []Res {
	return e.join.Eval()
}

// GoString returns a text representation of the expression
func (e *ProductExpr[L, R, Res]) GoString() string {
	return "rel.NewProduct(" + e.join.source1.GoString() + ", " + e.join.source2.GoString() + ", " + funcName(e.join.m) + ")"
}

// String returns a text representation of the expression
func (e *ProductExpr[L, R, Res]) String() string {
	return e.join.source1.String() + " × " + e.join.source2.String()
}
