// terminal implements the leaves of expressions: literal relations

package rel

import (
	"fmt"
	"slices"
)

// TerminalExpr represents a relation that came from a slice of rows.
type TerminalExpr[T Relation] struct {
	// the rows in the relation, owned by the expression
	rows []T
}

// NewTerminal creates a new literal relation.  It keeps its own copy of the
// rows, so later changes to the input slice are not seen by the expression.
func NewTerminal[T Relation](rows []T) *TerminalExpr[T] {
	return &TerminalExpr[T]{slices.Clone(rows)}
}

// Eval returns a copy of the rows, in the order they were given.
func (e *TerminalExpr[T]) Eval() []T {
	rows := make([]T, len(e.rows))
	copy(rows, e.rows)
	return rows
}

// GoString returns a text representation of the expression
func (e *TerminalExpr[T]) GoString() string {
	return fmt.Sprintf("rel.NewTerminal(%#v)", e.rows)
}

// String returns a text representation of the expression
func (e *TerminalExpr[T]) String() string {
	return "Relation(" + headingString[T]() + ")"
}
