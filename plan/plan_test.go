package plan

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jonlawlor/rel/dyn"
)

type supplierTup struct {
	SNO    int
	SName  string
	Status int
	City   string
}

type orderTup struct {
	PNO int
	SNO int
	Qty int
}

func inLondon(tup supplierTup) bool { return tup.City == "London" }

func supplierName(tup supplierTup) string { return tup.SName }

func orderedBy(s supplierTup, o orderTup) bool { return s.SNO == o.SNO }

func orderQty(s supplierTup, o orderTup) int { return o.Qty }

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.AddRelation("suppliers", []supplierTup{
		{1, "Smith", 20, "London"},
		{2, "Jones", 10, "Paris"},
		{4, "Clark", 20, "London"},
	}))
	require.NoError(t, reg.AddRelation("orders", []orderTup{
		{1, 1, 300},
		{1, 2, 200},
		{2, 4, 100},
	}))
	require.NoError(t, reg.AddExpr("names", dyn.New([]string{"Smith", "Adams"})))
	reg.AddFunc("inLondon", inLondon)
	reg.AddFunc("supplierName", supplierName)
	reg.AddFunc("orderedBy", orderedBy)
	reg.AddFunc("orderQty", orderQty)
	return reg
}

func load(t *testing.T, src string) []interface{} {
	t.Helper()
	e, err := Load(context.Background(), []byte(src), testRegistry(t))
	require.NoError(t, err)
	rows, err := e.Eval()
	require.NoError(t, err)
	return rows
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		src  string
		out  []interface{}
	}{
		{"relation", `
op: relation
relation: names
`, []interface{}{"Smith", "Adams"}},
		{"select project", `
op: project
map: supplierName
input:
  op: select
  pred: inLondon
  input: {op: relation, relation: suppliers}
`, []interface{}{"Smith", "Clark"}},
		{"join", `
op: join
pred: orderedBy
map: orderQty
left: {op: relation, relation: suppliers}
right: {op: relation, relation: orders}
`, []interface{}{300, 200, 100}},
		{"product", `
op: distinct
input:
  op: product
  map: orderQty
  left: {op: relation, relation: suppliers}
  right: {op: relation, relation: orders}
`, []interface{}{300, 200, 100}},
		{"union", `
op: union
left: {op: relation, relation: names}
right: {op: relation, relation: names}
`, []interface{}{"Smith", "Adams", "Smith", "Adams"}},
		{"intersect", `
op: intersect
left: {op: relation, relation: names}
right:
  op: project
  map: supplierName
  input: {op: relation, relation: suppliers}
`, []interface{}{"Smith"}},
		{"difference", `
op: difference
left: {op: relation, relation: names}
right:
  op: project
  map: supplierName
  input: {op: relation, relation: suppliers}
`, []interface{}{"Adams"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, load(t, tt.src))
		})
	}
}

func TestBuildErrors(t *testing.T) {
	rel := func(name string) *Node { return &Node{Op: OpRelation, Relation: name} }
	tests := []struct {
		name string
		in   *Node
		path string
		err  error
	}{
		{"nil", nil, "root", ErrMissingNode},
		{"unknown op", &Node{Op: "rename"}, "root", ErrUnknownOp},
		{"unknown relation", rel("parts"), "root", ErrUnknownRelation},
		{"unknown func", &Node{Op: OpSelect, Pred: "inParis", Input: rel("suppliers")}, "root", ErrUnknownFunc},
		{"missing input", &Node{Op: OpDistinct}, "root.input", ErrMissingNode},
		{"missing right", &Node{Op: OpUnion, Left: rel("names")}, "root.right", ErrMissingNode},
		{"unexpected input", &Node{Op: OpUnion, Input: rel("names"), Left: rel("names"), Right: rel("names")}, "root.input", ErrUnexpectedNode},
		{"unexpected left", &Node{Op: OpSelect, Pred: "inLondon", Input: rel("suppliers"), Left: rel("names")}, "root.left", ErrUnexpectedNode},
		{"leaf with input", &Node{Op: OpRelation, Relation: "names", Input: rel("names")}, "root.input", ErrUnexpectedNode},
		{"nested", &Node{Op: OpUnion, Left: rel("names"), Right: &Node{Op: OpDistinct, Input: rel("nobody")}}, "root.right.input", ErrUnknownRelation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(context.Background(), tt.in, testRegistry(t))
			require.ErrorIs(t, err, tt.err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.path, perr.Path)
		})
	}
}

// type errors are found when the plan is built, and name the node
func TestBuildTypeErrors(t *testing.T) {
	_, err := Load(context.Background(), []byte(`
op: union
left: {op: relation, relation: names}
right:
  op: select
  pred: inLondon
  input: {op: relation, relation: orders}
`), testRegistry(t))

	var elemErr *dyn.ElemError
	require.ErrorAs(t, err, &elemErr)
	require.EqualError(t, err, "plan: root.right: dyn: expected tuple element 'plan.orderTup', found 'plan.supplierTup'")

	_, err = Load(context.Background(), []byte(`
op: union
left: {op: relation, relation: names}
right: {op: relation, relation: suppliers}
`), testRegistry(t))
	require.ErrorAs(t, err, &elemErr)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "root", perr.Path)
}

func TestParse(t *testing.T) {
	n, err := Parse([]byte(`
op: join
pred: orderedBy
map: orderQty
left: {op: relation, relation: suppliers}
right: {op: relation, relation: orders}
`))
	require.NoError(t, err)
	require.Equal(t, &Node{
		Op:    OpJoin,
		Pred:  "orderedBy",
		Map:   "orderQty",
		Left:  &Node{Op: OpRelation, Relation: "suppliers"},
		Right: &Node{Op: OpRelation, Relation: "orders"},
	}, n)

	_, err = Parse([]byte("op: relation\nrelations: suppliers\n"))
	require.ErrorContains(t, err, "relations")

	_, err = Parse([]byte("op: [relation"))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.Error(t, reg.AddRelation("ints", 1))
	require.Error(t, reg.AddRelation("boxed", []interface{}{1}))
	require.True(t, errors.Is(reg.AddExpr("nothing", nil), dyn.ErrNilExpr))

	_, err := Build(context.Background(), &Node{Op: OpRelation, Relation: "ints"}, reg)
	require.ErrorIs(t, err, ErrUnknownRelation)
}

func TestBuildLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	_, err := Load(ctx, []byte(`
op: distinct
input: {op: relation, relation: names}
`), testRegistry(t))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"path":"root.input"`)
	require.Contains(t, buf.String(), `"op":"distinct"`)
	require.Contains(t, buf.String(), `"message":"built plan"`)
}
