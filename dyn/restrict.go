package dyn

import (
	"reflect"

	"github.com/jonlawlor/rel/internal/typeinfo"
)

var boolType = reflect.TypeOf(true)

type selectExpr struct {
	source1 Expr

	// p is a func(T) bool, where T is the row type of source1
	p reflect.Value
}

// Select creates a new expression with the rows of e1 that satisfy p, which
// has to be a func taking a row of e1 and returning bool.
func Select(e1 Expr, p interface{}) Expr {
	if e, ok := sourceErr(e1); ok {
		return e
	}
	rp, err := ensureFunc(p, []reflect.Type{rowType(e1)}, boolType)
	if err != nil {
		return &errorExpr{e1.Zero(), err}
	}
	return &selectExpr{e1, rp}
}

func (r *selectExpr) Zero() interface{} {
	return r.source1.Zero()
}

func (r *selectExpr) Eval() ([]interface{}, error) {
	rows1, err := r.source1.Eval()
	if err != nil {
		return nil, err
	}
	rows2 := make([]interface{}, 0, len(rows1))
	for _, tup := range rows1 {
		if call1(r.p, tup).Bool() {
			rows2 = append(rows2, tup)
		}
	}
	return rows2, nil
}

func (r *selectExpr) Err() error {
	return nil
}

func (r *selectExpr) String() string {
	return "σ{" + typeinfo.FuncName(r.p) + "}(" + r.source1.String() + ")"
}
