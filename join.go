// join implements a theta join expression in relational algebra

package rel

// JoinExpr combines rows from two expressions.  Go has no way of taking the
// product of two struct types, so the caller supplies the mapper which builds
// the combined row.
type JoinExpr[L, R, Res Relation] struct {
	source1 Expr[L]
	source2 Expr[R]

	// p decides which pairs of rows are joined, and m combines them
	p func(L, R) bool
	m func(L, R) Res
}

// NewJoin creates a new expression which joins e1 and e2 on p.
func NewJoin[L, R, Res Relation](e1 Expr[L], e2 Expr[R], p func(L, R) bool, m func(L, R) Res) *JoinExpr[L, R, Res] {
	return &JoinExpr[L, R, Res]{e1, e2, p, m}
}

// This implementation of join uses a nested loop join.  Each source is
// evaluated exactly once, and the output is left major: every match for the
// first left row comes before any match for the second one.

// Eval returns m(tup1, tup2) for every pair where p(tup1, tup2) holds.
func (e *JoinExpr[L, R, Res]) Eval() []Res {
	rows1 := e.source1.Eval()
	rows2 := e.source2.Eval()

	rows3 := make([]Res, 0)
	for _, tup1 := range rows1 {
		for _, tup2 := range rows2 {
			if e.p(tup1, tup2) {
				rows3 = append(rows3, e.m(tup1, tup2))
			}
		}
	}
	return rows3
}

// GoString returns a text representation of the expression
func (e *JoinExpr[L, R, Res]) GoString() string {
	return "rel.NewJoin(" + e.source1.GoString() + ", " + e.source2.GoString() + ", " + funcName(e.p) + ", " + funcName(e.m) + ")"
}

// String returns a text representation of the expression
func (e *JoinExpr[L, R, Res]) String() string {
	return e.source1.String() + " ⋈{" + funcName(e.p) + "} " + e.source2.String()
}
