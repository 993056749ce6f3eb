/*
Package highlight computes, for a tree and the current
exploration inputs, which identity and outcome tag every node and
edge of the tree should carry. The computation is a pure function
from inputs to a fresh tag map: no previous map is ever mutated,
so a mode switch can never leave stale tags behind.
*/
package highlight

import (
	"github.com/exploratory-ai/treelight/feature"
	"github.com/exploratory-ai/treelight/path"
	"github.com/exploratory-ai/treelight/tree"
)

/*
Identity tags a node or edge with the exploration state it
belongs to: the single traced path, a tutorial reveal, one of two
compared cohorts, or the trunk both cohorts share.
*/
type Identity int

const (
	IdentityNone Identity = iota
	IdentityActive
	IdentityTutorial
	IdentityPathA
	IdentityPathB
	IdentityShared
)

func (i Identity) String() string {
	switch i {
	case IdentityActive:
		return "active"
	case IdentityTutorial:
		return "tutorial"
	case IdentityPathA:
		return "path-a"
	case IdentityPathB:
		return "path-b"
	case IdentityShared:
		return "shared"
	default:
		return "none"
	}
}

/*
Outcome tags an edge with the final verdict of the path segment
it belongs to, regardless of how far from the leaf the edge is.
*/
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDied
	OutcomeSurvived
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDied:
		return "died"
	case OutcomeSurvived:
		return "survived"
	default:
		return "none"
	}
}

/*
NodeState is the tag set of one node: its identity, whether it is
the terminal leaf of a fully revealed path (used downstream for
an attention animation), and whether the transient hover overlay
currently covers it.
*/
type NodeState struct {
	Identity Identity
	Final    bool
	Hover    bool
}

/*
EdgeState is the tag set of one edge.
*/
type EdgeState struct {
	Identity Identity
	Outcome  Outcome
	Hover    bool
}

/*
Map holds the tags of every node and every edge of a tree for one
computation. A Map is always rebuilt whole and replaced, never
partially updated.
*/
type Map struct {
	Nodes map[int]NodeState
	Edges map[tree.Edge]EdgeState
}

/*
Mode selects which exploration the tags describe.
*/
type Mode int

const (
	// ModeIdle tags everything None.
	ModeIdle Mode = iota
	// ModeSingle tags the path one vector takes.
	ModeSingle
	// ModeDual tags the shared and unique segments of two
	// cohorts' paths.
	ModeDual
)

/*
Input carries the per-computation inputs: the mode, the vector
and reveal for ModeSingle, and the two cohort vectors for
ModeDual.
*/
type Input struct {
	Mode    Mode
	Vector  feature.Vector
	Reveal  path.Mode
	CohortA feature.Vector
	CohortB feature.Vector
}

/*
Idle returns the all-None map for the tree: every node and edge
present, every tag zero. A nil tree yields an empty map.
*/
func Idle(t *tree.Tree) Map {
	m := Map{
		Nodes: make(map[int]NodeState),
		Edges: make(map[tree.Edge]EdgeState),
	}
	if t == nil {
		return m
	}
	for _, n := range t.Nodes() {
		m.Nodes[n.ID] = NodeState{}
	}
	for _, e := range t.Edges() {
		m.Edges[e] = EdgeState{}
	}
	return m
}

/*
Build takes a tree and the current inputs and returns the
complete tag map for them.

In ModeSingle the nodes and edges of the (possibly limited)
traced path are tagged Active, or Tutorial under a partial
reveal; every tagged edge carries the outcome of the full path's
terminal leaf, and under a full reveal that leaf is additionally
marked Final. In ModeDual shared nodes and edges are tagged
Shared with no outcome, and each cohort's unique segment is
tagged with its path identity and the outcome of that cohort's
terminal leaf.

A trace that fails because the vector is missing a tested feature
degrades the computation to the Idle map: in ModeDual a single
bad cohort un-highlights the whole tree rather than showing a
misleading half comparison. A nil tree always yields the empty
Idle map.
*/
func Build(t *tree.Tree, in Input) Map {
	if t == nil {
		return Idle(t)
	}
	switch in.Mode {
	case ModeSingle:
		return buildSingle(t, in)
	case ModeDual:
		return buildDual(t, in)
	default:
		return Idle(t)
	}
}

func buildSingle(t *tree.Tree, in Input) Map {
	full, err := path.Trace(t, in.Vector)
	if err != nil {
		return Idle(t)
	}
	m := Idle(t)
	revealed := path.Limit(full, in.Reveal)
	identity := IdentityActive
	if in.Reveal.Tutorial() {
		identity = IdentityTutorial
	}
	leafID, _ := full.Leaf()
	outcome := outcomeOf(t.Get(leafID).PredictedClass)
	for _, id := range revealed {
		state := m.Nodes[id]
		state.Identity = identity
		// The attention animation on the terminal leaf is
		// suppressed for tutorial reveals.
		state.Final = !in.Reveal.Tutorial() && id == leafID
		m.Nodes[id] = state
	}
	for _, e := range revealed.Edges() {
		m.Edges[e] = EdgeState{Identity: identity, Outcome: outcome}
	}
	return m
}

func buildDual(t *tree.Tree, in Input) Map {
	pathA, err := path.Trace(t, in.CohortA)
	if err != nil {
		return Idle(t)
	}
	pathB, err := path.Trace(t, in.CohortB)
	if err != nil {
		return Idle(t)
	}
	m := Idle(t)
	dual := path.ResolveDual(pathA, pathB)
	leafA, _ := pathA.Leaf()
	leafB, _ := pathB.Leaf()
	outcomeA := outcomeOf(t.Get(leafA).PredictedClass)
	outcomeB := outcomeOf(t.Get(leafB).PredictedClass)
	for id := range m.Nodes {
		switch {
		case dual.SharedNode(id):
			m.Nodes[id] = NodeState{Identity: IdentityShared}
		case dual.UniqueANode(id):
			m.Nodes[id] = NodeState{Identity: IdentityPathA}
		case dual.UniqueBNode(id):
			m.Nodes[id] = NodeState{Identity: IdentityPathB}
		}
	}
	for e := range m.Edges {
		// Outcome coloring is authoritative for unique
		// segments: every edge of a cohort's exclusive branch
		// previews that branch's final verdict.
		switch dual.ClassifyEdge(e) {
		case path.EdgeShared:
			m.Edges[e] = EdgeState{Identity: IdentityShared}
		case path.EdgePathA:
			m.Edges[e] = EdgeState{Identity: IdentityPathA, Outcome: outcomeA}
		case path.EdgePathB:
			m.Edges[e] = EdgeState{Identity: IdentityPathB, Outcome: outcomeB}
		}
	}
	return m
}

func outcomeOf(predictedClass int) Outcome {
	if predictedClass == 1 {
		return OutcomeSurvived
	}
	return OutcomeDied
}
