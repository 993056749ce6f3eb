package path

import "github.com/exploratory-ai/treelight/tree"

/*
EdgeClass is the classification of a tree edge against a resolved
pair of paths. Every edge classifies as exactly one of the four
values: the unique segments of the two paths are disjoint and an
edge's class is keyed off its target's unique membership.
*/
type EdgeClass int

const (
	// EdgeUnclassified marks an edge on neither path.
	EdgeUnclassified EdgeClass = iota
	// EdgeShared marks an edge both paths traverse.
	EdgeShared
	// EdgePathA marks an edge only path A traverses, including
	// the divergence edge leaving the shared trunk into A.
	EdgePathA
	// EdgePathB marks an edge only path B traverses, including
	// the divergence edge leaving the shared trunk into B.
	EdgePathB
)

/*
DualPaths is the partition of two traced paths into the node set
they have in common and the node sets each traverses alone.

Shared together with UniqueA covers exactly path A's nodes, and
together with UniqueB exactly path B's; UniqueA and UniqueB are
disjoint. When both paths are non-empty the root is always in
Shared, since both traces start there.
*/
type DualPaths struct {
	// The nodes on both paths, in path A's order.
	Shared Path
	// The nodes only on path A, in path A's order.
	UniqueA Path
	// The nodes only on path B, in path B's order.
	UniqueB Path

	inA     map[int]bool
	inB     map[int]bool
	shared  map[int]bool
	uniqueA map[int]bool
	uniqueB map[int]bool
}

/*
ResolveDual takes the traced paths of two cohorts through the
same tree and returns their DualPaths partition.
*/
func ResolveDual(a, b Path) DualPaths {
	d := DualPaths{
		inA:     make(map[int]bool, len(a)),
		inB:     make(map[int]bool, len(b)),
		shared:  make(map[int]bool),
		uniqueA: make(map[int]bool),
		uniqueB: make(map[int]bool),
	}
	for _, id := range a {
		d.inA[id] = true
	}
	for _, id := range b {
		d.inB[id] = true
	}
	for _, id := range a {
		if d.inB[id] {
			d.Shared = append(d.Shared, id)
			d.shared[id] = true
		} else {
			d.UniqueA = append(d.UniqueA, id)
			d.uniqueA[id] = true
		}
	}
	for _, id := range b {
		if !d.inA[id] {
			d.UniqueB = append(d.UniqueB, id)
			d.uniqueB[id] = true
		}
	}
	return d
}

/*
ClassifyEdge takes an edge and returns its EdgeClass under the
resolved partition:

  - both endpoints shared: EdgeShared
  - both endpoints on path A and the target unique to A: EdgePathA
  - both endpoints on path B and the target unique to B: EdgePathB
  - anything else: EdgeUnclassified
*/
func (d DualPaths) ClassifyEdge(e tree.Edge) EdgeClass {
	switch {
	case d.shared[e.Source] && d.shared[e.Target]:
		return EdgeShared
	case d.inA[e.Source] && d.inA[e.Target] && d.uniqueA[e.Target]:
		return EdgePathA
	case d.inB[e.Source] && d.inB[e.Target] && d.uniqueB[e.Target]:
		return EdgePathB
	default:
		return EdgeUnclassified
	}
}

/*
SharedNode returns whether the node with the given id is on both
paths.
*/
func (d DualPaths) SharedNode(id int) bool {
	return d.shared[id]
}

/*
UniqueANode returns whether the node with the given id is only on
path A.
*/
func (d DualPaths) UniqueANode(id int) bool {
	return d.uniqueA[id]
}

/*
UniqueBNode returns whether the node with the given id is only on
path B.
*/
func (d DualPaths) UniqueBNode(id int) bool {
	return d.uniqueB[id]
}
