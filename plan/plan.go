// Package plan builds relational expressions from declarative YAML plans.
//
// A plan is a tree of nodes.  Every node names its operation with op, and
// refers to relations and funcs by the names they were registered under in a
// Registry, since neither rows nor go code can be written in YAML:
//
//	op: project
//	map: supplierName
//	input:
//	  op: select
//	  pred: inLondon
//	  input:
//	    op: relation
//	    relation: suppliers
//
// Unary operations (select, project, distinct) take an input; binary
// operations (join, product, union, intersect, difference) take a left and
// a right.  Join takes a pred and a map, product only a map.
package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/jonlawlor/rel/dyn"
)

// The operations a node can perform.
const (
	OpRelation   = "relation"
	OpSelect     = "select"
	OpProject    = "project"
	OpJoin       = "join"
	OpProduct    = "product"
	OpUnion      = "union"
	OpIntersect  = "intersect"
	OpDifference = "difference"
	OpDistinct   = "distinct"
)

var (
	ErrMissingNode     = errors.New("missing node")
	ErrUnexpectedNode  = errors.New("unexpected node")
	ErrUnknownOp       = errors.New("unknown op")
	ErrUnknownRelation = errors.New("unknown relation")
	ErrUnknownFunc     = errors.New("unknown func")
)

// Node is one operation of a plan.
type Node struct {
	Op       string `yaml:"op"`
	Relation string `yaml:"relation,omitempty"`
	Pred     string `yaml:"pred,omitempty"`
	Map      string `yaml:"map,omitempty"`

	Input *Node `yaml:"input,omitempty"`
	Left  *Node `yaml:"left,omitempty"`
	Right *Node `yaml:"right,omitempty"`
}

// Error is an error in the node at Path, such as root.left.input.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return "plan: " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse decodes a YAML plan.  Unknown fields are errors, so that a
// misspelled field is not silently ignored.
func Parse(data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var n Node
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("plan: decoding: %w", err)
	}
	return &n, nil
}

// Load parses a YAML plan and builds its expression.
func Load(ctx context.Context, data []byte, reg *Registry) (dyn.Expr, error) {
	n, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(ctx, n, reg)
}

// Build builds the expression of a plan.  Every type error is found here,
// before anything is evaluated; the error is an *Error naming the node, and
// wraps the dyn error describing the problem.
func Build(ctx context.Context, n *Node, reg *Registry) (dyn.Expr, error) {
	b := &builder{reg, zerolog.Ctx(ctx)}
	e, err := b.build(n, "root")
	if err != nil {
		return nil, err
	}
	b.log.Debug().Str("expr", e.String()).Msg("built plan")
	return e, nil
}

type builder struct {
	reg *Registry
	log *zerolog.Logger
}

func (b *builder) build(n *Node, path string) (dyn.Expr, error) {
	if n == nil {
		return nil, &Error{path, ErrMissingNode}
	}

	var e dyn.Expr
	switch n.Op {
	case OpRelation:
		if err := b.children(n, path, false, false); err != nil {
			return nil, err
		}
		var ok bool
		if e, ok = b.reg.relations[n.Relation]; !ok {
			return nil, &Error{path, fmt.Errorf("%w %q", ErrUnknownRelation, n.Relation)}
		}

	case OpSelect, OpProject, OpDistinct:
		if err := b.children(n, path, true, false); err != nil {
			return nil, err
		}
		e1, err := b.build(n.Input, path+".input")
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case OpSelect:
			p, err := b.fn(n.Pred, path)
			if err != nil {
				return nil, err
			}
			e = dyn.Select(e1, p)
		case OpProject:
			m, err := b.fn(n.Map, path)
			if err != nil {
				return nil, err
			}
			e = dyn.Project(e1, m)
		default:
			e = dyn.Distinct(e1)
		}

	case OpJoin, OpProduct, OpUnion, OpIntersect, OpDifference:
		if err := b.children(n, path, false, true); err != nil {
			return nil, err
		}
		e1, err := b.build(n.Left, path+".left")
		if err != nil {
			return nil, err
		}
		e2, err := b.build(n.Right, path+".right")
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case OpJoin:
			p, err := b.fn(n.Pred, path)
			if err != nil {
				return nil, err
			}
			m, err := b.fn(n.Map, path)
			if err != nil {
				return nil, err
			}
			e = dyn.Join(e1, e2, p, m)
		case OpProduct:
			m, err := b.fn(n.Map, path)
			if err != nil {
				return nil, err
			}
			e = dyn.CartesianProduct(e1, e2, m)
		case OpUnion:
			e = dyn.Union(e1, e2)
		case OpIntersect:
			e = dyn.Intersect(e1, e2)
		default:
			e = dyn.Difference(e1, e2)
		}

	default:
		return nil, &Error{path, fmt.Errorf("%w %q", ErrUnknownOp, n.Op)}
	}

	if err := e.Err(); err != nil {
		return nil, &Error{path, err}
	}
	b.log.Debug().Str("path", path).Str("op", n.Op).Msg("built plan node")
	return e, nil
}

// children checks that n has exactly the children its operation uses
func (b *builder) children(n *Node, path string, unary, binary bool) error {
	switch {
	case unary && n.Input == nil:
		return &Error{path + ".input", ErrMissingNode}
	case !unary && n.Input != nil:
		return &Error{path + ".input", ErrUnexpectedNode}
	case binary && n.Left == nil:
		return &Error{path + ".left", ErrMissingNode}
	case binary && n.Right == nil:
		return &Error{path + ".right", ErrMissingNode}
	case !binary && n.Left != nil:
		return &Error{path + ".left", ErrUnexpectedNode}
	case !binary && n.Right != nil:
		return &Error{path + ".right", ErrUnexpectedNode}
	}
	return nil
}

func (b *builder) fn(name, path string) (interface{}, error) {
	fcn, ok := b.reg.funcs[name]
	if !ok {
		return nil, &Error{path, fmt.Errorf("%w %q", ErrUnknownFunc, name)}
	}
	return fcn, nil
}
