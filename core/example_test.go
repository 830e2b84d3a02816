package core_test

import (
	"fmt"

	"github.com/katalvlaran/opentsp/core"
)

// ExampleInstance builds a unit square, populates its relative edge store
// and inspects the edges leaving node 1.
func ExampleInstance() {
	in, err := core.NewInstance([]core.Point{
		core.NewPoint(0, 0),
		core.NewPoint(0, 1),
		core.NewPoint(1, 1),
		core.NewPoint(1, 0),
	}, core.WithRelativeEdges(true))
	if err != nil {
		fmt.Println(err)
		return
	}
	in.PopulateEdges()

	ids, _ := in.EdgesFrom(1, true)
	for _, id := range ids {
		e, _ := in.Edge(id)
		fmt.Printf("%d: %d->%d %.3f\n", id, e.From, e.To, e.Length())
	}
	fmt.Println("edges:", in.NumEdges())

	// Output:
	// 1: 1->2 1.000
	// 2: 1->3 1.414
	// 3: 1->4 1.000
	// edges: 12
}

// ExamplePath_Equal shows that closed tours compare equal under rotation.
func ExamplePath_Equal() {
	a, b, c := core.NewPoint(0, 0), core.NewPoint(4, 0), core.NewPoint(0, 3)
	p := core.NewPath(a, b, c, a)
	q := core.NewPath(b, c, a, b)
	r := core.NewPath(a, c, b, a)

	fmt.Println(p.Equal(q), p.Equal(r), p.Length())

	// Output:
	// true false 12
}

// ExampleSignedAngle measures the turn at the origin from +x to +y.
func ExampleSignedAngle() {
	o := core.NewPoint(0, 0)
	deg, err := core.SignedAngle(o, core.NewPoint(1, 0), core.NewPoint(0, 1))
	fmt.Println(deg, err)

	// Output:
	// 90 <nil>
}
