package dyn

import (
	"fmt"
	"reflect"

	"github.com/jonlawlor/rel/internal/typeinfo"
)

// literal represents a relation that came from a slice or array of rows
type literal struct {
	// a private copy of the rows
	rows []interface{}

	zero interface{}
}

// New creates a new literal relation from a slice or array of rows.  The
// rows are copied, so later changes to v are not seen by the expression.
func New(v interface{}) Expr {
	rbody := reflect.ValueOf(v)
	switch k := rbody.Kind(); k {
	case reflect.Slice, reflect.Array:
	default:
		return &errorExpr{nil, &ContainerError{reflect.Slice, k}}
	}

	e := rbody.Type().Elem()
	if err := ensureRowType(e); err != nil {
		return &errorExpr{nil, err}
	}

	rows := make([]interface{}, rbody.Len())
	for i := range rows {
		rows[i] = rbody.Index(i).Interface()
	}
	return &literal{rows, reflect.Zero(e).Interface()}
}

func (r *literal) Zero() interface{} {
	return r.zero
}

func (r *literal) Eval() ([]interface{}, error) {
	rows := make([]interface{}, len(r.rows))
	copy(rows, r.rows)
	return rows, nil
}

func (r *literal) Err() error {
	return nil
}

func (r *literal) String() string {
	return "Relation(" + typeinfo.HeadingString(reflect.TypeOf(r.zero)) + ")"
}

// GoString returns a text representation of the expression
func (r *literal) GoString() string {
	return fmt.Sprintf("dyn.New(%#v)", r.rows)
}
