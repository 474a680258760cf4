package dyn

// setExpr implements union, intersect and difference, which only differ in
// how they combine the rows of their sources.
type setExpr struct {
	source1 Expr
	source2 Expr

	op      string
	combine func(rows1, rows2 []interface{}) []interface{}
}

func newSetExpr(e1, e2 Expr, op string, combine func(rows1, rows2 []interface{}) []interface{}) Expr {
	if e, ok := sourceErr(e1, e2); ok {
		return e
	}
	if err := ensureSameType(e1, e2); err != nil {
		return &errorExpr{e1.Zero(), err}
	}
	return &setExpr{e1, e2, op, combine}
}

// Union creates a new expression with the rows of e1 followed by the rows of
// e2, keeping duplicates.  Both have to have the same row type.
func Union(e1, e2 Expr) Expr {
	return newSetExpr(e1, e2, "∪", func(rows1, rows2 []interface{}) []interface{} {
		rows3 := make([]interface{}, 0, len(rows1)+len(rows2))
		return append(append(rows3, rows1...), rows2...)
	})
}

// Intersect creates a new expression with the rows of e1 which are equal to
// some row of e2, in the order of e1 and with the multiplicity of e1.  Both
// have to have the same row type.
func Intersect(e1, e2 Expr) Expr {
	return newSetExpr(e1, e2, "∩", func(rows1, rows2 []interface{}) []interface{} {
		return probe(rows1, rows2, true)
	})
}

// Difference creates a new expression with the rows of e1 which are not
// equal to any row of e2, in the order of e1.  Both have to have the same
// row type.
func Difference(e1, e2 Expr) Expr {
	return newSetExpr(e1, e2, "−", func(rows1, rows2 []interface{}) []interface{} {
		return probe(rows1, rows2, false)
	})
}

// probe keeps the rows of rows1 whose membership in rows2 is keep.
func probe(rows1, rows2 []interface{}, keep bool) []interface{} {
	mem := make(map[interface{}]struct{}, len(rows2))
	for _, tup := range rows2 {
		mem[tup] = struct{}{}
	}
	rows3 := make([]interface{}, 0)
	for _, tup := range rows1 {
		if _, ok := mem[tup]; ok == keep {
			rows3 = append(rows3, tup)
		}
	}
	return rows3
}

func (r *setExpr) Zero() interface{} {
	return r.source1.Zero()
}

func (r *setExpr) Eval() ([]interface{}, error) {
	rows1, err := r.source1.Eval()
	if err != nil {
		return nil, err
	}
	rows2, err := r.source2.Eval()
	if err != nil {
		return nil, err
	}
	return r.combine(rows1, rows2), nil
}

func (r *setExpr) Err() error {
	return nil
}

func (r *setExpr) String() string {
	return r.source1.String() + " " + r.op + " " + r.source2.String()
}

type distinctExpr struct {
	source1 Expr
}

// Distinct creates a new expression with the first occurrence of every row of
// e1.
func Distinct(e1 Expr) Expr {
	if e, ok := sourceErr(e1); ok {
		return e
	}
	return &distinctExpr{e1}
}

func (r *distinctExpr) Zero() interface{} {
	return r.source1.Zero()
}

func (r *distinctExpr) Eval() ([]interface{}, error) {
	rows1, err := r.source1.Eval()
	if err != nil {
		return nil, err
	}
	mem := make(map[interface{}]struct{}, len(rows1))
	rows2 := make([]interface{}, 0, len(rows1))
	for _, tup := range rows1 {
		if _, dup := mem[tup]; !dup {
			mem[tup] = struct{}{}
			rows2 = append(rows2, tup)
		}
	}
	return rows2, nil
}

func (r *distinctExpr) Err() error {
	return nil
}

func (r *distinctExpr) String() string {
	return "δ(" + r.source1.String() + ")"
}
