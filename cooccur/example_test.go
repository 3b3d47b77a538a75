package cooccur_test

import (
	"fmt"

	"github.com/katalvlaran/costar/cooccur"
)

// ExampleBuild builds a small cast graph and inspects it.
//
//	1 ──A── 2 ──B── 3 ──A── 4      5 (self-pair in C)
func ExampleBuild() {
	rel := []cooccur.Triple[int, string]{
		{A: 1, B: 2, Group: "A"},
		{A: 2, B: 3, Group: "B"},
		{A: 3, B: 4, Group: "A"},
		{A: 5, B: 5, Group: "C"},
	}
	g, err := cooccur.Build(rel)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	peers, _ := g.CoMembers(3)
	fmt.Println("co-members of 3:", peers)

	together, _ := g.ActedTogether(1, 3)
	fmt.Println("1 with 3:", together)

	members, _ := g.Members("C")
	fmt.Println("members of C:", members, "5 has edges:", g.HasEntity(5))
	// Output:
	// co-members of 3: [2 4]
	// 1 with 3: false
	// members of C: [5] 5 has edges: false
}
