// Package typeinfo describes row types and funcs for the text
// representations of expressions, both static and dynamic.
package typeinfo

import (
	"reflect"
	"runtime"
	"strings"
)

// Heading returns the column names of rows of type t.  Rows which are not
// structs have a single column, named Value.
func Heading(t reflect.Type) []string {
	if t == nil || t.Kind() != reflect.Struct {
		return []string{"Value"}
	}
	names := make([]string, t.NumField())
	for i := range names {
		names[i] = t.Field(i).Name
	}
	return names
}

// HeadingString returns the heading of rows of type t, comma separated.
func HeadingString(t reflect.Type) string {
	return strings.Join(Heading(t), ", ")
}

// FuncName returns the name of a predicate or mapper without its package
// path.  Closures get the names the runtime gives them, like TestJoin.func1,
// and anything that is not a non-nil func is named ?.
func FuncName(fcn reflect.Value) string {
	if fcn.Kind() != reflect.Func || fcn.IsNil() {
		return "?"
	}
	fn := runtime.FuncForPC(fcn.Pointer())
	if fn == nil {
		return "?"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
