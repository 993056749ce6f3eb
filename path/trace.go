/*
Package path computes the decision paths a classification tree
takes for given feature vectors: tracing a single root-to-leaf
path, limiting it for progressive reveal, and partitioning two
paths into their shared and unique segments.
*/
package path

import (
	"fmt"

	"github.com/exploratory-ai/treelight/feature"
	"github.com/exploratory-ai/treelight/tree"
)

/*
Path is the ordered sequence of node ids from the root of a tree
down to a leaf, both inclusive. It is derived from a tree and a
vector and never stored on the tree itself.
*/
type Path []int

/*
MissingFeatureError is the error returned by Trace when a feature
tested along the path has no value in the supplied vector.
*/
type MissingFeatureError struct {
	// The name of the feature with no value.
	Feature string
	// The id of the node whose split needed the value.
	NodeID int
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("tracing path: no value for feature %s tested at node %d", e.Feature, e.NodeID)
}

/*
Trace takes a tree and a feature vector and returns the path the
vector takes through the tree: starting at the root, each
internal node sends the vector into its left child when the
vector's value for the split feature is less than or equal to the
split threshold, and into its right child otherwise, until a leaf
is reached.

Trace is deterministic: the same tree and vector always produce
the same path. Only features actually tested along the taken path
need to be present in the vector; if a tested feature is missing,
a *MissingFeatureError is returned and no partial path.
*/
func Trace(t *tree.Tree, v feature.Vector) (Path, error) {
	if t == nil {
		return nil, fmt.Errorf("tracing path: nil tree")
	}
	p := Path{}
	n := t.Root()
	for !n.Leaf {
		value, ok := v[n.Feature]
		if !ok {
			return nil, &MissingFeatureError{Feature: n.Feature, NodeID: n.ID}
		}
		p = append(p, n.ID)
		if value <= n.Threshold {
			n = n.Children[0]
		} else {
			n = n.Children[1]
		}
	}
	p = append(p, n.ID)
	return p, nil
}

/*
Leaf returns the id of the terminal node of the path and true, or
0 and false for an empty path.
*/
func (p Path) Leaf() (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

/*
Contains returns whether the given node id is on the path.
*/
func (p Path) Contains(id int) bool {
	for _, n := range p {
		if n == id {
			return true
		}
	}
	return false
}

/*
Edges returns the consecutive parent-to-child edges of the path.
*/
func (p Path) Edges() []tree.Edge {
	if len(p) < 2 {
		return nil
	}
	edges := make([]tree.Edge, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		edges = append(edges, tree.Edge{Source: p[i-1], Target: p[i]})
	}
	return edges
}
