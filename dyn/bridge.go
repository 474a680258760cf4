package dyn

import (
	"reflect"

	"github.com/jonlawlor/rel"
)

// typedExpr adapts a statically typed expression
type typedExpr[T rel.Relation] struct {
	source1 rel.Expr[T]
}

// Wrap turns a statically typed expression into a dynamic one, so that it
// can be combined with expressions built at run time.
func Wrap[T rel.Relation](e rel.Expr[T]) Expr {
	if e == nil {
		return &errorExpr{nil, ErrNilExpr}
	}
	if err := ensureRowType(reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		return &errorExpr{nil, err}
	}
	return &typedExpr[T]{e}
}

func (r *typedExpr[T]) Zero() interface{} {
	var zero T
	return zero
}

func (r *typedExpr[T]) Eval() ([]interface{}, error) {
	rows1 := r.source1.Eval()
	rows2 := make([]interface{}, len(rows1))
	for i, tup := range rows1 {
		rows2[i] = tup
	}
	return rows2, nil
}

func (r *typedExpr[T]) Err() error {
	return nil
}

func (r *typedExpr[T]) String() string {
	return r.source1.String()
}

// dynExpr adapts a dynamic expression with rows of type T
type dynExpr[T rel.Relation] struct {
	source1 Expr
}

// Typed turns a dynamic expression into a statically typed one.  It returns
// the construction error of e, or an *ElemError if the rows of e are not of
// type T.
//
// The Eval method of the result panics if e fails during evaluation, which
// expressions from this package only do when one of their sources is a
// foreign Expr implementation that fails.
func Typed[T rel.Relation](e Expr) (rel.Expr[T], error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	if err := e.Err(); err != nil {
		return nil, err
	}
	want := reflect.TypeOf((*T)(nil)).Elem()
	if got := rowType(e); got != want {
		return nil, &ElemError{want, got}
	}
	return &dynExpr[T]{e}, nil
}

func (r *dynExpr[T]) Eval() []T {
	rows1, err := r.source1.Eval()
	if err != nil {
		panic(err)
	}
	rows2 := make([]T, len(rows1))
	for i, tup := range rows1 {
		rows2[i] = tup.(T)
	}
	return rows2
}

func (r *dynExpr[T]) GoString() string {
	return "dyn.Typed(" + r.source1.String() + ")"
}

func (r *dynExpr[T]) String() string {
	return r.source1.String()
}

// EvalInto evaluates e and stores the rows in the slice dst points to, which
// has to have elements of the row type of e.
func EvalInto(e Expr, dst interface{}) error {
	if e == nil {
		return ErrNilExpr
	}
	if err := e.Err(); err != nil {
		return err
	}
	rdst := reflect.ValueOf(dst)
	if k := rdst.Kind(); k != reflect.Ptr {
		return &ContainerError{reflect.Ptr, k}
	}
	if rdst.IsNil() {
		return &ContainerError{reflect.Ptr, reflect.Invalid}
	}
	rslice := rdst.Elem()
	if k := rslice.Kind(); k != reflect.Slice {
		return &ContainerError{reflect.Slice, k}
	}
	if want, got := rowType(e), rslice.Type().Elem(); want != got {
		return &ElemError{want, got}
	}

	rows, err := e.Eval()
	if err != nil {
		return err
	}
	res := reflect.MakeSlice(rslice.Type(), len(rows), len(rows))
	for i, tup := range rows {
		res.Index(i).Set(reflect.ValueOf(tup))
	}
	rslice.Set(res)
	return nil
}
