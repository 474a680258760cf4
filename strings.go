// strings deals with the text representation of materialized relations

package rel

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/jonlawlor/rel/internal/typeinfo"
)

// PrettyPrint renders rows as a table, with one column per struct field.
// Rows which are not structs get a single column named Value.  If T is an
// interface type, such as the rows of the dyn package, the columns come from
// the dynamic type of the first row.
func PrettyPrint[T any](rows []T) string {

	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	// align elements to the right as well
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape|tabwriter.AlignRight)

	e := rowType[T]()
	if e.Kind() == reflect.Interface && len(rows) > 0 {
		e = reflect.TypeOf(rows[0])
	}
	cn := typeinfo.Heading(e)

	// make a spacer, to be replaced later
	for range cn {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	// heading
	for _, name := range cn {
		fmt.Fprintf(w, "|\t \xff%s\xff ", name)
	}
	fmt.Fprintf(w, "\t|\n")

	// body
	for _, tup := range rows {
		for _, f := range fields(tup) {
			fmt.Fprintf(w, "|\t \xff%v\xff ", f)
		}
		fmt.Fprintf(w, "\t|\n")
	}

	w.Flush()
	str := s.String()

	// replace the blanks in the spacer with "-"
	lineWidth := strings.Index(str, "\n")
	sep := " " + strings.Replace(str[1:lineWidth], " ", "-", -1)
	if len(rows) == 0 {
		return sep + str[lineWidth:lineWidth*2+2] + sep
	}
	return sep + str[lineWidth:lineWidth*2+2] + sep + str[lineWidth*2+1:] + sep
}

// fields returns the attribute values of a row, in heading order.
func fields[T any](tup T) []interface{} {
	rtup := reflect.ValueOf(&tup).Elem()
	if rtup.Kind() == reflect.Interface {
		rtup = rtup.Elem()
	}
	if rtup.Kind() != reflect.Struct {
		return []interface{}{tup}
	}
	vals := make([]interface{}, rtup.NumField())
	for i := range vals {
		// fmt prints the value held by a reflect.Value, including the
		// values of unexported fields
		vals[i] = rtup.Field(i)
	}
	return vals
}
