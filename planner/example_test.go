package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/terrapath/cost"
	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

// ExamplePlanner_Plan routes a three-waypoint chain along a flat corridor
// with a lake blocking the last leg.
//
//	. . . .
//	. . # #
//	. . # .
func ExamplePlanner_Plan() {
	O, L := terrain.OpenLand, terrain.LakeSwampMarsh
	g, _ := gridgraph.NewGrid(
		[][]terrain.Class{{O, O, O, O}, {O, O, L, L}, {O, O, L, O}},
		[][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	)
	m, _ := cost.New(g, terrain.DefaultModel())
	p, _ := planner.New(m)

	wps := []gridgraph.Coordinate{gridgraph.C(0, 2), gridgraph.C(3, 0), gridgraph.C(3, 2)}
	segs, err := p.Plan(context.Background(), wps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range segs {
		fmt.Printf("%s -> %s reached=%v\n", s.Source, s.Target, s.Reached)
	}
	fmt.Printf("total: %.2f m\n", planner.TotalDistance(segs))

	// Output:
	// 0,2 -> 3,0 reached=true
	// 3,0 -> 3,2 reached=false
	// total: 45.97 m
}
