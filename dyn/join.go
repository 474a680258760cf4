package dyn

import (
	"reflect"

	"github.com/jonlawlor/rel/internal/typeinfo"
)

type joinExpr struct {
	source1 Expr
	source2 Expr

	// p is a func(L, R) bool and m is a func(L, R) Res
	p reflect.Value
	m reflect.Value

	zero interface{}
}

// Join creates a new expression which combines every pair of rows of e1 and
// e2 that satisfy p with m.  p has to be a func taking a row of e1 and a row
// of e2 and returning bool; m takes the same arguments and returns the row
// type of the new expression.
func Join(e1, e2 Expr, p, m interface{}) Expr {
	if e, ok := sourceErr(e1, e2); ok {
		return e
	}
	in := []reflect.Type{rowType(e1), rowType(e2)}
	rp, err := ensureFunc(p, in, boolType)
	if err != nil {
		return &errorExpr{nil, err}
	}
	rm, err := ensureFunc(m, in, nil)
	if err != nil {
		return &errorExpr{nil, err}
	}
	return &joinExpr{e1, e2, rp, rm, reflect.Zero(rm.Type().Out(0)).Interface()}
}

func (r *joinExpr) Zero() interface{} {
	return r.zero
}

// Eval evaluates each source once and then performs a nested loop join,
// left major.
func (r *joinExpr) Eval() ([]interface{}, error) {
	rows1, err := r.source1.Eval()
	if err != nil {
		return nil, err
	}
	rows2, err := r.source2.Eval()
	if err != nil {
		return nil, err
	}
	rows3 := make([]interface{}, 0)
	for _, tup1 := range rows1 {
		for _, tup2 := range rows2 {
			if call2(r.p, tup1, tup2).Bool() {
				rows3 = append(rows3, call2(r.m, tup1, tup2).Interface())
			}
		}
	}
	return rows3, nil
}

func (r *joinExpr) Err() error {
	return nil
}

func (r *joinExpr) String() string {
	return r.source1.String() + " ⋈{" + typeinfo.FuncName(r.p) + "} " + r.source2.String()
}

type productExpr struct {
	join *joinExpr
}

// CartesianProduct creates a new expression which combines every pair of rows
// of e1 and e2 with m.  It is evaluated as a Join with a predicate that
// always holds.
func CartesianProduct(e1, e2 Expr, m interface{}) Expr {
	if e, ok := sourceErr(e1, e2); ok {
		return e
	}
	pt := reflect.FuncOf([]reflect.Type{rowType(e1), rowType(e2)}, []reflect.Type{boolType}, false)
	p := reflect.MakeFunc(pt, func([]reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(true)}
	})
	j := Join(e1, e2, p.Interface(), m)
	if j.Err() != nil {
		return j
	}
	return &productExpr{j.(*joinExpr)}
}

func (r *productExpr) Zero() interface{} {
	return r.join.Zero()
}

func (r *productExpr) Eval() ([]interface{}, error) {
	return r.join.Eval()
}

func (r *productExpr) Err() error {
	return nil
}

func (r *productExpr) String() string {
	return r.join.source1.String() + " × " + r.join.source2.String()
}
