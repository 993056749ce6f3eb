package highlight

import "github.com/exploratory-ai/treelight/tree"

/*
Overlay takes a persisted tag map, the tree it was built for and
the id of the node under the pointer, and returns a copy of the
map with the transient Hover emphasis set on every node and edge
of the chain from the root down to the hovered node. The
persisted identity and outcome tags are layered under the
emphasis, never replaced, and the input map is left untouched, so
clearing the overlay is just going back to the persisted map.

An unknown node id returns a plain copy with no emphasis: pointer
events can race a tree swap upstream and must not fault the view.
*/
func Overlay(m Map, t *tree.Tree, hoveredID int) Map {
	out := m.clone()
	if t == nil {
		return out
	}
	chain, ok := t.Ancestors(hoveredID)
	if !ok {
		return out
	}
	for _, id := range chain {
		state := out.Nodes[id]
		state.Hover = true
		out.Nodes[id] = state
	}
	for i := 1; i < len(chain); i++ {
		e := tree.Edge{Source: chain[i-1], Target: chain[i]}
		state := out.Edges[e]
		state.Hover = true
		out.Edges[e] = state
	}
	return out
}

func (m Map) clone() Map {
	out := Map{
		Nodes: make(map[int]NodeState, len(m.Nodes)),
		Edges: make(map[tree.Edge]EdgeState, len(m.Edges)),
	}
	for id, state := range m.Nodes {
		out.Nodes[id] = state
	}
	for e, state := range m.Edges {
		out.Edges[e] = state
	}
	return out
}
