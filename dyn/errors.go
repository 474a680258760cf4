// errors are the type checks that take the place of static type checking,
// which expressions built with reflection do not get.

package dyn

import (
	"errors"
	"fmt"
	"reflect"
)

// I've tried to reproduce go's type error strings here, because these errors
// act as a (poor) replacement for static type checking.

// ErrNilExpr is the error of expressions built on a nil source.
var ErrNilExpr = errors.New("dyn: nil source expression")

// ContainerError represents an error that occurs when the wrong kind of
// value is given where a container of rows or a function is expected.
type ContainerError struct {
	Expected reflect.Kind
	Found    reflect.Kind
}

func (e *ContainerError) Error() string {
	return "dyn: expected '" + e.Expected.String() + "', found '" + e.Found.String() + "'"
}

// ElemError represents an error that occurs when a row type does not match
// the row type of an expression, or a function has the wrong argument or
// result type.
type ElemError struct {
	Expected reflect.Type
	Found    reflect.Type
}

func (e *ElemError) Error() string {
	return "dyn: expected tuple element '" + typeString(e.Expected) + "', found '" + typeString(e.Found) + "'"
}

// ComparableError represents an error that occurs when a row type does not
// support equality, or is or contains an interface type whose dynamic values
// may not.
type ComparableError struct {
	Type reflect.Type
}

func (e *ComparableError) Error() string {
	return "dyn: tuple type '" + typeString(e.Type) + "' is not a comparable concrete type"
}

// funcArityError represents an error that occurs when the wrong number of
// inputs or outputs to a function are provided to select, project or join
type funcArityError struct {
	Expected int
	Found    int
}

// NumInError represents an error that occurs when the wrong number of
// inputs to a function are provided
type NumInError funcArityError

func (e *NumInError) Error() string {
	return fmt.Sprintf("dyn: expected input arity %d, found %d", e.Expected, e.Found)
}

// NumOutError represents an error that occurs when the wrong number of
// outputs to a function are provided
type NumOutError funcArityError

func (e *NumOutError) Error() string {
	return fmt.Sprintf("dyn: expected output arity %d, found %d", e.Expected, e.Found)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}

// ensureRowType returns an error if values of type e can not be rows.  A
// struct or array type is comparable even when it holds interfaces, but
// comparing two of its values panics if the dynamic types are not, so those
// are rejected too.
func ensureRowType(e reflect.Type) error {
	if e == nil || !e.Comparable() || hasInterface(e) {
		return &ComparableError{e}
	}
	return nil
}

// hasInterface reports whether values of type e are, or contain, interface
// values.  e has to be comparable, so it has no slices or maps to descend.
func hasInterface(e reflect.Type) bool {
	switch e.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return hasInterface(e.Elem())
	case reflect.Struct:
		for i := 0; i < e.NumField(); i++ {
			if hasInterface(e.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// ensureFunc returns an error if fcn is not a function which takes arguments
// of the types in, and returns one value.  If out is nil, the result has to
// be a valid row type, otherwise it has to be out.
func ensureFunc(fcn interface{}, in []reflect.Type, out reflect.Type) (reflect.Value, error) {
	rfcn := reflect.ValueOf(fcn)
	if k := rfcn.Kind(); k != reflect.Func {
		return rfcn, &ContainerError{reflect.Func, k}
	}
	if rfcn.IsNil() {
		return rfcn, &ContainerError{reflect.Func, reflect.Invalid}
	}
	ft := rfcn.Type()
	if ni := ft.NumIn(); ni != len(in) {
		return rfcn, &NumInError{len(in), ni}
	}
	if no := ft.NumOut(); no != 1 {
		return rfcn, &NumOutError{1, no}
	}
	for i, e := range in {
		if !e.AssignableTo(ft.In(i)) {
			return rfcn, &ElemError{e, ft.In(i)}
		}
	}
	if out == nil {
		return rfcn, ensureRowType(ft.Out(0))
	}
	if ft.Out(0) != out {
		return rfcn, &ElemError{out, ft.Out(0)}
	}
	return rfcn, nil
}

// ensureSameType returns an error if the rows of e1 and e2 differ in type.
func ensureSameType(e1, e2 Expr) error {
	t1 := reflect.TypeOf(e1.Zero())
	t2 := reflect.TypeOf(e2.Zero())
	if t1 != t2 {
		return &ElemError{t1, t2}
	}
	return nil
}
