package plan

import (
	"fmt"

	"github.com/jonlawlor/rel/dyn"
)

// Registry holds the relations and funcs a plan can refer to.  It is not
// safe to add to a Registry while plans are being built from it.
type Registry struct {
	relations map[string]dyn.Expr
	funcs     map[string]interface{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		relations: make(map[string]dyn.Expr),
		funcs:     make(map[string]interface{}),
	}
}

// AddRelation registers a slice or array of rows under name.  It returns the
// error of dyn.New if the rows can not form a relation.
func (r *Registry) AddRelation(name string, rows interface{}) error {
	return r.AddExpr(name, dyn.New(rows))
}

// AddExpr registers an expression under name, so that it can be used as a
// relation in plans.
func (r *Registry) AddExpr(name string, e dyn.Expr) error {
	if e == nil {
		return fmt.Errorf("plan: relation %q: %w", name, dyn.ErrNilExpr)
	}
	if err := e.Err(); err != nil {
		return fmt.Errorf("plan: relation %q: %w", name, err)
	}
	r.relations[name] = e
	return nil
}

// AddFunc registers a predicate or mapper under name.  Its signature is
// checked when it is used in a plan, because that is when the row types are
// known.
func (r *Registry) AddFunc(name string, fcn interface{}) {
	r.funcs[name] = fcn
}
