package transform_test

import (
	"fmt"

	"github.com/matzehuels/untangle/pkg/dag"
	"github.com/matzehuels/untangle/pkg/dag/transform"
)

func ExampleAssignLayers() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "app"})
	_ = g.AddNode(dag.Node{ID: "lib"})
	_ = g.AddNode(dag.Node{ID: "core"})
	_ = g.AddEdge(dag.Edge{From: "app", To: "lib"})
	_ = g.AddEdge(dag.Edge{From: "lib", To: "core"})

	transform.AssignLayers(g)

	app, _ := g.Node("app")
	lib, _ := g.Node("lib")
	core, _ := g.Node("core")

	fmt.Println("app row:", app.Row)
	fmt.Println("lib row:", lib.Row)
	fmt.Println("core row:", core.Row)
	// Output:
	// app row: 0
	// lib row: 1
	// core row: 2
}

func ExampleBreakCycles() {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "A"})
	_ = g.AddNode(dag.Node{ID: "B"})
	_ = g.AddNode(dag.Node{ID: "C"})
	_ = g.AddEdge(dag.Edge{From: "A", To: "B"})
	_ = g.AddEdge(dag.Edge{From: "B", To: "C"})
	_ = g.AddEdge(dag.Edge{From: "C", To: "A"})

	fmt.Println("Edges before:", g.EdgeCount())
	transform.BreakCycles(g)
	fmt.Println("Edges after:", g.EdgeCount())
	// Output:
	// Edges before: 3
	// Edges after: 2
}
