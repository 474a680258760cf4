// Package rel implements relational algebra over in-memory collections of
// tuples, as defined by E. F. Codd.
//
// # Basics
//
// Relations here are finite, ordered sequences of rows of a single Go type.
// Any comparable type can be a row: structs with comparable fields, arrays,
// strings, numbers.  The Relation constraint captures this.  Unlike the
// relations in C. J. Date's "Database in Depth", these relations use bag
// semantics: duplicate rows are kept unless an operation says otherwise.
//
// The operations which define the algebra are:
//
// Select, which removes rows from a relation that do not satisfy a
// particular predicate.
//
// Project, which maps every row to a (possibly different) row type.
//
// Join, which combines every pair of rows from two relations that satisfy a
// predicate into a new row.
//
// CartesianProduct, which is a Join with a predicate that is always true.
//
// Union, which appends the rows of one relation to another.
//
// Intersect, which keeps the rows of one relation that also occur in
// another.
//
// Difference, which keeps the rows of one relation that do not occur in
// another.
//
// Distinct, which removes duplicate rows.
//
// GroupBy, which aggregates the rows with the same key into a single row.
//
// # Expressions
//
// Every operation is a node in an expression tree, and every node implements
// Expr.  Terminal nodes hold a private copy of literal rows; the others hold
// their sub expressions and a predicate or mapper.  Trees are immutable once
// built.  Nothing is computed until Eval is called, and every call to Eval
// recomputes the whole tree, so calling it twice gives the same rows as long
// as the predicates and mappers are deterministic.
//
// Expressions can be built directly with the NewXxx constructors, or with a
// Builder:
//
//	rows := rel.Join(
//		rel.From(parts).Select(isRed),
//		orders,
//		func(p part, o order) bool { return p.PNO == o.PNO },
//		func(p part, o order) partOrder { return partOrder{p.PName, o.SNO, o.Qty} },
//	).Eval()
//
// Type changing steps (Project, Join, CartesianProduct, GroupBy) are functions rather
// than methods because methods in Go cannot introduce type parameters.
//
// Trees whose shape is only known at run time are built with the
// github.com/jonlawlor/rel/dyn package.
package rel

// variable naming conventions
//
// e, e1, e2, ... all represent expressions.  If there is an operation which
// has an output expression, the output will have the highest number after
// the e.
//
// rows, rows1, rows2, ... all represent materialized relations.
//
// tup, tup1, tup2, ... all represent individual rows going through some
// relational transformation.
