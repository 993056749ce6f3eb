package highlight

import (
	"testing"

	"github.com/exploratory-ai/treelight/feature"
	"github.com/exploratory-ai/treelight/path"
	"github.com/exploratory-ai/treelight/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(id, samples, class0, class1 int) *tree.Node {
	predicted := 0
	if class1 > class0 {
		predicted = 1
	}
	return &tree.Node{
		ID:             id,
		Leaf:           true,
		Samples:        samples,
		Class0:         class0,
		Class1:         class1,
		PredictedClass: predicted,
		Probability:    float64(class1) / float64(samples),
	}
}

func split(id int, f string, threshold float64, left, right *tree.Node) *tree.Node {
	return &tree.Node{
		ID:        id,
		Feature:   f,
		Threshold: threshold,
		Children:  []*tree.Node{left, right},
		Samples:   left.Samples + right.Samples,
		Class0:    left.Class0 + right.Class0,
		Class1:    left.Class1 + right.Class1,
	}
}

// A depth-3 tree: pclass over two sex splits. Female leaves
// survive, male leaves die.
func testTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.New(split(0, feature.Pclass, 2.5,
		split(1, feature.Sex, 0.5, leaf(3, 100, 20, 80), leaf(4, 120, 90, 30)),
		split(2, feature.Sex, 0.5, leaf(5, 140, 60, 80), leaf(6, 354, 300, 54))))
	require.NoError(t, err)
	return tr
}

var (
	firstClassWoman = feature.Vector{feature.Pclass: 1, feature.Sex: 0}
	firstClassMan   = feature.Vector{feature.Pclass: 1, feature.Sex: 1}
	thirdClassMan   = feature.Vector{feature.Pclass: 3, feature.Sex: 1}
)

func TestIdleMapTagsEverythingNone(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeIdle})

	assert.Len(t, m.Nodes, 7)
	assert.Len(t, m.Edges, 6)
	for _, state := range m.Nodes {
		assert.Equal(t, NodeState{}, state)
	}
	for _, state := range m.Edges {
		assert.Equal(t, EdgeState{}, state)
	}
}

func TestBuildNilTree(t *testing.T) {
	m := Build(nil, Input{Mode: ModeSingle, Vector: firstClassWoman, Reveal: path.Full()})

	assert.Empty(t, m.Nodes)
	assert.Empty(t, m.Edges)
}

func TestSingleFullPath(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeSingle, Vector: firstClassWoman, Reveal: path.Full()})

	for _, id := range []int{0, 1, 3} {
		assert.Equal(t, IdentityActive, m.Nodes[id].Identity)
	}
	for _, id := range []int{2, 4, 5, 6} {
		assert.Equal(t, IdentityNone, m.Nodes[id].Identity)
	}
	// Only the terminal leaf of a fully revealed path is Final.
	assert.True(t, m.Nodes[3].Final)
	assert.False(t, m.Nodes[0].Final)
	assert.False(t, m.Nodes[1].Final)
	// Every path edge carries the terminal leaf's outcome.
	for _, e := range []tree.Edge{{Source: 0, Target: 1}, {Source: 1, Target: 3}} {
		assert.Equal(t, IdentityActive, m.Edges[e].Identity)
		assert.Equal(t, OutcomeSurvived, m.Edges[e].Outcome)
	}
	assert.Equal(t, EdgeState{}, m.Edges[tree.Edge{Source: 0, Target: 2}])
}

func TestSingleFullPathDiedOutcome(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeSingle, Vector: thirdClassMan, Reveal: path.Full()})

	for _, e := range []tree.Edge{{Source: 0, Target: 2}, {Source: 2, Target: 6}} {
		assert.Equal(t, OutcomeDied, m.Edges[e].Outcome)
	}
}

func TestSingleFirstSplitTutorial(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeSingle, Vector: firstClassWoman, Reveal: path.FirstSplit()})

	assert.Equal(t, IdentityTutorial, m.Nodes[0].Identity)
	assert.Equal(t, IdentityTutorial, m.Nodes[1].Identity)
	assert.Equal(t, IdentityNone, m.Nodes[3].Identity)
	// No attention animation during a tutorial reveal.
	for id, state := range m.Nodes {
		assert.False(t, state.Final, "node %d", id)
	}
	e := tree.Edge{Source: 0, Target: 1}
	assert.Equal(t, IdentityTutorial, m.Edges[e].Identity)
	// The revealed prefix still previews where the full path
	// ultimately leads.
	assert.Equal(t, OutcomeSurvived, m.Edges[e].Outcome)
	assert.Equal(t, EdgeState{}, m.Edges[tree.Edge{Source: 1, Target: 3}])
}

func TestSingleDepthReveal(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeSingle, Vector: firstClassWoman, Reveal: path.Depth(0)})

	assert.Equal(t, IdentityTutorial, m.Nodes[0].Identity)
	assert.Equal(t, IdentityNone, m.Nodes[1].Identity)
	for _, state := range m.Edges {
		assert.Equal(t, EdgeState{}, state)
	}
}

func TestSingleMissingFeatureDegradesToIdle(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeSingle, Vector: feature.Vector{feature.Pclass: 1}, Reveal: path.Full()})

	for _, state := range m.Nodes {
		assert.Equal(t, NodeState{}, state)
	}
	for _, state := range m.Edges {
		assert.Equal(t, EdgeState{}, state)
	}
}

func TestDualTagsPartition(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeDual, CohortA: firstClassWoman, CohortB: firstClassMan})

	assert.Equal(t, IdentityShared, m.Nodes[0].Identity)
	assert.Equal(t, IdentityShared, m.Nodes[1].Identity)
	assert.Equal(t, IdentityPathA, m.Nodes[3].Identity)
	assert.Equal(t, IdentityPathB, m.Nodes[4].Identity)
	assert.Equal(t, IdentityNone, m.Nodes[2].Identity)

	// Shared edges carry no outcome; unique segments preview
	// their branch's final verdict.
	trunk := m.Edges[tree.Edge{Source: 0, Target: 1}]
	assert.Equal(t, IdentityShared, trunk.Identity)
	assert.Equal(t, OutcomeNone, trunk.Outcome)
	intoA := m.Edges[tree.Edge{Source: 1, Target: 3}]
	assert.Equal(t, IdentityPathA, intoA.Identity)
	assert.Equal(t, OutcomeSurvived, intoA.Outcome)
	intoB := m.Edges[tree.Edge{Source: 1, Target: 4}]
	assert.Equal(t, IdentityPathB, intoB.Identity)
	assert.Equal(t, OutcomeDied, intoB.Outcome)
	assert.Equal(t, EdgeState{}, m.Edges[tree.Edge{Source: 0, Target: 2}])
}

func TestDualIdenticalCohorts(t *testing.T) {
	tr := testTree(t)

	m := Build(tr, Input{Mode: ModeDual, CohortA: firstClassWoman, CohortB: firstClassWoman.Clone()})

	for _, id := range []int{0, 1, 3} {
		assert.Equal(t, IdentityShared, m.Nodes[id].Identity)
	}
	for _, e := range []tree.Edge{{Source: 0, Target: 1}, {Source: 1, Target: 3}} {
		assert.Equal(t, IdentityShared, m.Edges[e].Identity)
		assert.Equal(t, OutcomeNone, m.Edges[e].Outcome)
	}
}

func TestDualBadCohortDegradesWholeMapToIdle(t *testing.T) {
	tr := testTree(t)

	// Cohort B misses the sex feature its path would test: the
	// whole map degrades rather than showing a half comparison.
	m := Build(tr, Input{Mode: ModeDual, CohortA: firstClassWoman, CohortB: feature.Vector{feature.Pclass: 1}})

	for _, state := range m.Nodes {
		assert.Equal(t, NodeState{}, state)
	}
	for _, state := range m.Edges {
		assert.Equal(t, EdgeState{}, state)
	}
}

func TestModeSwitchLeavesNoResidue(t *testing.T) {
	tr := testTree(t)

	single := Build(tr, Input{Mode: ModeSingle, Vector: firstClassWoman, Reveal: path.Full()})
	dual := Build(tr, Input{Mode: ModeDual, CohortA: firstClassWoman, CohortB: firstClassMan})

	require.Equal(t, IdentityActive, single.Nodes[0].Identity)
	for id, state := range dual.Nodes {
		assert.NotEqual(t, IdentityActive, state.Identity, "node %d", id)
		assert.False(t, state.Final, "node %d", id)
	}
	for e, state := range dual.Edges {
		assert.NotEqual(t, IdentityActive, state.Identity, "edge %v", e)
	}
}
