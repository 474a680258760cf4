package rel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

// property based tests of the operators, on small ints so that duplicates
// and matches are common

func drawRows(t *rapid.T, label string) []int {
	return rapid.SliceOf(rapid.IntRange(-5, 5)).Draw(t, label)
}

func requireRows(t *rapid.T, want, got []int, what string) {
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", what, diff)
	}
}

func TestTerminalProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := drawRows(t, "rows")
		requireRows(t, rows, NewTerminal(rows).Eval(), "Terminal")
	})
}

func TestSelectProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := drawRows(t, "rows")
		k := rapid.IntRange(-5, 5).Draw(t, "k")
		p := func(i int) bool { return i > k }
		e := NewTerminal(rows)

		var want []int
		for _, i := range rows {
			if p(i) {
				want = append(want, i)
			}
		}
		requireRows(t, want, NewSelect(e, p).Eval(), "Select")
		requireRows(t, rows, NewSelect(e, True[int]).Eval(), "Select(true)")
		requireRows(t, nil, NewSelect(e, False[int]).Eval(), "Select(false)")
	})
}

func TestProjectProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := drawRows(t, "rows")
		e := NewTerminal(rows)

		if got := Card[bool](NewProject(e, func(i int) bool { return i > 0 })); got != len(rows) {
			t.Fatalf("Project Card => %d, want %d", got, len(rows))
		}
		requireRows(t, rows, NewProject(e, func(i int) int { return i }).Eval(), "Project(identity)")
	})
}

func TestJoinProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows1 := drawRows(t, "rows1")
		rows2 := drawRows(t, "rows2")
		n := rapid.IntRange(1, 4).Draw(t, "n")
		p := func(a, b int) bool { return (a-b)%n == 0 }
		m := Tup2[int, int]
		e1, e2 := NewTerminal(rows1), NewTerminal(rows2)

		pairs := 0
		for _, a := range rows1 {
			for _, b := range rows2 {
				if p(a, b) {
					pairs++
				}
			}
		}
		if got := Card[Tuple2[int, int]](NewJoin(e1, e2, p, m)); got != pairs {
			t.Fatalf("Join Card => %d, want %d", got, pairs)
		}
		if got := Card[Tuple2[int, int]](NewJoin(e1, e2, func(int, int) bool { return false }, m)); got != 0 {
			t.Fatalf("Join(false) Card => %d, want 0", got)
		}
		product := NewProduct(e1, e2, m).Eval()
		join := NewJoin(e1, e2, func(int, int) bool { return true }, m).Eval()
		if diff := cmp.Diff(join, product, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("CartesianProduct and Join(true) mismatch (-join +product):\n%s", diff)
		}
		if len(product) != len(rows1)*len(rows2) {
			t.Fatalf("CartesianProduct Card => %d, want %d", len(product), len(rows1)*len(rows2))
		}
	})
}

func TestUnionProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows1 := drawRows(t, "rows1")
		rows2 := drawRows(t, "rows2")
		e1, e2 := NewTerminal(rows1), NewTerminal(rows2)

		want := append(append([]int{}, rows1...), rows2...)
		requireRows(t, want, NewUnion[int](e1, e2).Eval(), "Union")
		requireRows(t, rows1, NewUnion[int](e1, NewTerminal[int](nil)).Eval(), "Union(empty)")
	})
}

func TestIntersectProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows1 := drawRows(t, "rows1")
		rows2 := drawRows(t, "rows2")
		e1, e2 := NewTerminal(rows1), NewTerminal(rows2)

		// the result is the subsequence of rows1 which occur in rows2
		var want []int
		for _, a := range rows1 {
			for _, b := range rows2 {
				if a == b {
					want = append(want, a)
					break
				}
			}
		}
		requireRows(t, want, NewIntersect[int](e1, e2).Eval(), "Intersect")
		requireRows(t, nil, NewIntersect[int](e1, NewTerminal[int](nil)).Eval(), "Intersect(empty)")

		// every row of the left side occurs in the right side
		superset := NewUnion[int](e2, e1)
		requireRows(t, rows1, NewIntersect[int](e1, superset).Eval(), "Intersect(superset)")
	})
}

func TestDifferenceProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows1 := drawRows(t, "rows1")
		rows2 := drawRows(t, "rows2")
		e1, e2 := NewTerminal(rows1), NewTerminal(rows2)

		// intersection and difference partition the left side
		in := NewIntersect[int](e1, e2).Eval()
		out := NewDifference[int](e1, e2).Eval()
		if len(in)+len(out) != len(rows1) {
			t.Fatalf("Intersect and Difference Card => %d + %d, want %d", len(in), len(out), len(rows1))
		}
		requireRows(t, nil, NewIntersect[int](NewTerminal(out), e2).Eval(), "Intersect(Difference)")
	})
}

func TestDistinctProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := drawRows(t, "rows")
		res := NewDistinct[int](NewTerminal(rows)).Eval()

		seen := make(map[int]bool)
		for _, i := range res {
			if seen[i] {
				t.Fatalf("Distinct returned %d more than once in %v", i, res)
			}
			seen[i] = true
		}
		for _, i := range rows {
			if !seen[i] {
				t.Fatalf("Distinct dropped %d", i)
			}
		}
		requireRows(t, res, NewDistinct[int](NewTerminal(res)).Eval(), "Distinct(Distinct)")
	})
}

// evaluating twice gives the same rows
func TestEvalIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := drawRows(t, "rows")
		b := Project(From(rows).Select(func(i int) bool { return i != 0 }), func(i int) int { return i * i }).
			Union(rows).
			Distinct()
		requireRows(t, b.Eval(), b.Eval(), "second Eval")
	})
}
