package main

import (
	"github.com/jonlawlor/rel"
	"github.com/jonlawlor/rel/plan"
)

var (
	letters = []rel.Tuple2[int, string]{{V0: 1, V1: "a"}, {V0: 2, V1: "b"}, {V0: 3, V1: "c"}}
	numbers = []int{1, 2}
	joins   = []rel.Tuple2[int, string]{{V0: 1, V1: "Join1"}, {V0: 2, V1: "Join2"}}
	extra   = []rel.Tuple3[string, int, string]{{V0: "d", V1: 3, V2: "Union"}}
	keep    = []rel.Tuple3[string, int, string]{
		{V0: "c", V1: 1, V2: "Join1"},
		{V0: "c", V1: 2, V2: "Join2"},
		{V0: "d", V1: 3, V2: "Union"},
		{V0: "e", V1: 4, V2: "Removed"},
	}
)

func afterFirst(tup rel.Tuple2[int, string]) bool {
	return tup.V0 > 1
}

func letter(tup rel.Tuple2[int, string]) string {
	return tup.V1
}

func pair(s string, n int) rel.Tuple2[string, int] {
	return rel.Tup2(s, n)
}

func sameNumber(tup1 rel.Tuple2[string, int], tup2 rel.Tuple2[int, string]) bool {
	return tup1.V1 == tup2.V0
}

func merge(tup1 rel.Tuple2[string, int], tup2 rel.Tuple2[int, string]) rel.Tuple3[string, int, string] {
	return rel.Tup3(tup1.V0, tup2.V0, tup2.V1)
}

// demoRegistry names the demo relations and funcs for plans
func demoRegistry() (*plan.Registry, error) {
	reg := plan.NewRegistry()
	relations := map[string]interface{}{
		"letters": letters,
		"numbers": numbers,
		"joins":   joins,
		"extra":   extra,
		"keep":    keep,
	}
	for name, rows := range relations {
		if err := reg.AddRelation(name, rows); err != nil {
			return nil, err
		}
	}
	reg.AddFunc("afterFirst", afterFirst)
	reg.AddFunc("letter", letter)
	reg.AddFunc("pair", pair)
	reg.AddFunc("sameNumber", sameNumber)
	reg.AddFunc("merge", merge)
	return reg, nil
}
