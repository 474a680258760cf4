// group implements a group by expression in relational algebra

package rel

// GroupByExpr represents a grouping of the rows of an expression.
type GroupByExpr[T, K, Res Relation] struct {
	source1 Expr[T]

	// key is the attribute (or attributes, as a struct) rows are grouped by
	key func(T) K

	// agg turns the rows of a group into a single row of the result
	agg func(K, []T) Res
}

// NewGroupBy creates a new expression with one row per distinct key, made by
// agg from the key and the rows with that key.  Groups come out in the order
// their first row appears in the source, and the rows of each group keep
// their source order.
func NewGroupBy[T, K, Res Relation](e1 Expr[T], key func(T) K, agg func(K, []T) Res) *GroupByExpr[T, K, Res] {
	return &GroupByExpr[T, K, Res]{e1, key, agg}
}

// Eval returns one aggregated row per group.
func (e *GroupByExpr[T, K, Res]) Eval() []Res {
	rows1 := e.source1.Eval()

	// map from the key to its position in keys
	groupMap := make(map[K]int)
	var keys []K
	var groups [][]T
	for _, tup := range rows1 {
		k := e.key(tup)
		i, exists := groupMap[k]
		if !exists {
			i = len(keys)
			groupMap[k] = i
			keys = append(keys, k)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], tup)
	}

	rows2 := make([]Res, len(keys))
	for i, k := range keys {
		rows2[i] = e.agg(k, groups[i])
	}
	return rows2
}

// GoString returns a text representation of the expression
func (e *GroupByExpr[T, K, Res]) GoString() string {
	return "rel.NewGroupBy(" + e.source1.GoString() + ", " + funcName(e.key) + ", " + funcName(e.agg) + ")"
}

// String returns a text representation of the expression
func (e *GroupByExpr[T, K, Res]) String() string {
	return "γ{" + funcName(e.key) + "}(" + e.source1.String() + ")"
}
