package rel

import (
	"reflect"

	"github.com/jonlawlor/rel/internal/typeinfo"
)

// rowType is the static type of rows of type T
func rowType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// headingString returns the heading of rows of type T, comma separated
func headingString[T any]() string {
	return typeinfo.HeadingString(rowType[T]())
}

// funcName returns the name of a predicate or mapper, as used in the text
// representation of expressions.
func funcName(f interface{}) string {
	return typeinfo.FuncName(reflect.ValueOf(f))
}
