// Package dyn builds relational expressions whose shape and row types are
// only known at run time, such as expressions read from configuration.
//
// It has the same operations and the same semantics as the rel package:
// the same row order, bag semantics, a cartesian product that is a join with
// a predicate that always holds, and an intersection that is a membership
// test.  The difference is that rows are interface{} values, predicates and
// mappers are arbitrary funcs, and the type checks the go compiler does for
// rel happen when each expression is constructed.
//
// A constructor never panics on bad input.  Instead it returns an expression
// which carries the error, reported by Err and Eval.  Building on top of such
// an expression returns an expression with the same error, so a whole tree
// can be built before checking for errors once at the end:
//
//	e := dyn.Select(dyn.New(suppliers), inLondon)
//	e = dyn.Project(e, supplierName)
//	if err := e.Err(); err != nil {
//		...
//	}
//
// Rows have to be of a comparable type that neither is nor contains an
// interface, in a struct field or an array element, so that equality is
// defined for every row and never panics.
package dyn

import (
	"reflect"
)

// Expr is a relational expression with rows of the type of its Zero value.
type Expr interface {
	// Zero is the zero value of the rows of the expression
	Zero() interface{}

	// Eval evaluates the expression, returning rows in the same order the
	// equivalent rel expression would.  Every row has the type of Zero.
	Eval() ([]interface{}, error)

	// Err returns the error encountered during construction, if any
	Err() error

	// String returns a text representation of the expression
	String() string
}

// errorExpr is the result of a construction which failed
type errorExpr struct {
	// the type of the rows, which may be nil if it could not be determined
	zero interface{}

	err error
}

func (e *errorExpr) Zero() interface{} {
	return e.zero
}

func (e *errorExpr) Eval() ([]interface{}, error) {
	return nil, e.err
}

func (e *errorExpr) Err() error {
	return e.err
}

func (e *errorExpr) String() string {
	return "error{" + e.err.Error() + "}"
}

// sourceErr returns the first construction error of the sources, or
// ErrNilExpr if one of them is missing.
func sourceErr(es ...Expr) (Expr, bool) {
	for _, e := range es {
		if e == nil {
			return &errorExpr{nil, ErrNilExpr}, true
		}
		if e.Err() != nil {
			return e, true
		}
	}
	return nil, false
}

// rowType is the type of the rows of e
func rowType(e Expr) reflect.Type {
	return reflect.TypeOf(e.Zero())
}

// call1 calls a func of one argument
func call1(fcn reflect.Value, tup interface{}) reflect.Value {
	return fcn.Call([]reflect.Value{reflect.ValueOf(tup)})[0]
}

// call2 calls a func of two arguments
func call2(fcn reflect.Value, tup1, tup2 interface{}) reflect.Value {
	return fcn.Call([]reflect.Value{reflect.ValueOf(tup1), reflect.ValueOf(tup2)})[0]
}
