package dyn

import (
	"reflect"

	"github.com/jonlawlor/rel/internal/typeinfo"
)

type projectExpr struct {
	source1 Expr

	// m is a func(S) T, where S is the row type of source1
	m reflect.Value

	zero interface{}
}

// Project creates a new expression which maps every row of e1 with m.  m has
// to be a func taking a row of e1 and returning a comparable, non interface
// type, which becomes the row type of the new expression.
func Project(e1 Expr, m interface{}) Expr {
	if e, ok := sourceErr(e1); ok {
		return e
	}
	rm, err := ensureFunc(m, []reflect.Type{rowType(e1)}, nil)
	if err != nil {
		return &errorExpr{nil, err}
	}
	return &projectExpr{e1, rm, reflect.Zero(rm.Type().Out(0)).Interface()}
}

func (r *projectExpr) Zero() interface{} {
	return r.zero
}

func (r *projectExpr) Eval() ([]interface{}, error) {
	rows1, err := r.source1.Eval()
	if err != nil {
		return nil, err
	}
	rows2 := make([]interface{}, len(rows1))
	for i, tup := range rows1 {
		rows2[i] = call1(r.m, tup).Interface()
	}
	return rows2, nil
}

func (r *projectExpr) Err() error {
	return nil
}

func (r *projectExpr) String() string {
	return "π{" + typeinfo.FuncName(r.m) + "}(" + r.source1.String() + ")"
}
