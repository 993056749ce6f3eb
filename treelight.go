/*
Package treelight traces and explains the decision paths a
pre-trained binary classification tree takes for hypothetical
profiles. It exposes a single Engine that a UI event loop drives
with the current exploration inputs and reads back as a complete
per-node and per-edge tag map.
*/
package treelight

import (
	"github.com/exploratory-ai/treelight/feature"
	"github.com/exploratory-ai/treelight/highlight"
	"github.com/exploratory-ai/treelight/path"
	"github.com/exploratory-ai/treelight/tree"
)

/*
Engine combines tracing, reveal limiting, dual-path resolution
and hover into one synchronous computation per Snapshot call.

The only state it holds across calls is the immutable tree
reference, the last requested inputs and the currently hovered
node id; every Snapshot rebuilds the whole tag map from them, so
there is nothing to lock and nothing to invalidate. It is meant
to be driven by a single logical caller.
*/
type Engine struct {
	tree     *tree.Tree
	in       highlight.Input
	hovered  int
	hovering bool
}

/*
New takes a validated tree, which may be nil for a session whose
tree has not been delivered yet, and returns an Engine in idle
state.
*/
func New(t *tree.Tree) *Engine {
	return &Engine{tree: t}
}

// Tree returns the tree the engine computes over.
func (e *Engine) Tree() *tree.Tree {
	return e.tree
}

/*
Idle clears the exploration: the next Snapshot tags every node
and edge None.
*/
func (e *Engine) Idle() {
	e.in = highlight.Input{Mode: highlight.ModeIdle}
}

/*
Single requests highlighting of the path the given vector takes,
revealed according to the given mode. A full reveal tags the path
Active and marks its terminal leaf; a partial reveal tags the
revealed prefix Tutorial.
*/
func (e *Engine) Single(v feature.Vector, reveal path.Mode) {
	e.in = highlight.Input{
		Mode:   highlight.ModeSingle,
		Vector: v.Clone(),
		Reveal: reveal,
	}
}

/*
Dual requests highlighting of the shared and unique segments of
the paths the two given cohort vectors take.
*/
func (e *Engine) Dual(cohortA, cohortB feature.Vector) {
	e.in = highlight.Input{
		Mode:    highlight.ModeDual,
		CohortA: cohortA.Clone(),
		CohortB: cohortB.Clone(),
	}
}

/*
Hover sets the node currently under the pointer. The emphasis is
transient: it is layered over the persisted tags at Snapshot time
and never stored in them.
*/
func (e *Engine) Hover(id int) {
	e.hovered = id
	e.hovering = true
}

// Unhover clears the transient hover emphasis.
func (e *Engine) Unhover() {
	e.hovering = false
}

/*
Snapshot recomputes the persisted tag map from the current inputs
and then layers the hover overlay on top, in that order, so the
emphasis is always computed against the current state even when
an input and a hover change arrive in the same tick.
*/
func (e *Engine) Snapshot() highlight.Map {
	m := highlight.Build(e.tree, e.in)
	if e.hovering {
		m = highlight.Overlay(m, e.tree, e.hovered)
	}
	return m
}
