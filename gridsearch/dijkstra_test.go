package gridsearch

import (
	"testing"

	"github.com/katalvlaran/hpath/neighborhood"
	"github.com/katalvlaran/hpath/point"
	"github.com/stretchr/testify/require"
)

// e1Grid reproduces the E1 scenario grid verbatim: 0=empty,
// 1=swamp, 2=wall, with cost map [1, 10, -1].
var e1Grid = [5][5]int{
	{0, 2, 0, 0, 0},
	{0, 2, 2, 2, 2},
	{0, 1, 0, 0, 0},
	{0, 1, 0, 2, 0},
	{0, 0, 0, 2, 0},
}

var e1CostMap = [3]point.SignedCost{1, 10, -1}

func e1StepCost(p point.Point) point.SignedCost {
	if p.Y < 0 || p.Y >= 5 || p.X < 0 || p.X >= 5 {
		return -1
	}
	return e1CostMap[e1Grid[p.Y][p.X]]
}

func alwaysValid(point.Point) bool { return true }

func TestMultiGoalDijkstra_E1(t *testing.T) {
	nh := neighborhood.NewManhattan()
	start := point.Point{X: 0, Y: 0}
	goals := []point.Point{{X: 4, Y: 4}, {X: 2, Y: 0}}

	results, err := MultiGoalDijkstra(nh, alwaysValid, e1StepCost, start, goals, WithFrontierSizeHint(40))
	require.NoError(t, err)

	_, reached := results[point.Point{X: 4, Y: 4}]
	require.True(t, reached, "(4,4) must be reachable")

	_, walledOff := results[point.Point{X: 2, Y: 0}]
	require.False(t, walledOff, "(2,0) must be walled off")
}

func TestMultiGoalDijkstra_PathShapeInvariant(t *testing.T) {
	// Every returned path must satisfy: P[0]==start, P[last]==goal,
	// P.cost == sum(step_cost(P[i]) for i in 0..len-1).
	nh := neighborhood.NewManhattan()
	start := point.Point{X: 0, Y: 0}
	goal := point.Point{X: 4, Y: 4}

	results, err := MultiGoalDijkstra(nh, alwaysValid, e1StepCost, start, []point.Point{goal})
	require.NoError(t, err)

	p, ok := results[goal]
	require.True(t, ok)
	require.Equal(t, start, p.Start())
	require.Equal(t, goal, p.End())

	var sum point.Cost
	for i := 0; i < p.Len()-1; i++ {
		sum = point.AddCost(sum, e1StepCost(p.Points[i]).AsCost())
	}
	require.Equal(t, sum, p.Cost)
}

func TestMultiGoalDijkstra_NoGoals(t *testing.T) {
	nh := neighborhood.NewManhattan()
	_, err := MultiGoalDijkstra(nh, alwaysValid, e1StepCost, point.Point{}, nil)
	require.ErrorIs(t, err, ErrNoGoals)
}

func TestMultiGoalDijkstra_ImpassableStartYieldsEmpty(t *testing.T) {
	nh := neighborhood.NewManhattan()
	impassable := func(point.Point) point.SignedCost { return -1 }
	results, err := MultiGoalDijkstra(nh, alwaysValid, impassable, point.Point{}, []point.Point{{X: 1, Y: 0}})
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestMultiGoalDijkstra_OnlyClosestGoal(t *testing.T) {
	nh := neighborhood.NewManhattan()
	unitCost := func(point.Point) point.SignedCost { return 1 }
	start := point.Point{X: 0, Y: 0}
	near := point.Point{X: 1, Y: 0}
	far := point.Point{X: 5, Y: 0}

	results, err := MultiGoalDijkstra(nh, alwaysValid, unitCost, start, []point.Point{near, far}, WithOnlyClosestGoal())
	require.NoError(t, err)
	require.Contains(t, results, near)
	require.NotContains(t, results, far)
}
