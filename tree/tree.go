/*
Package tree provides a read-only in-memory representation of a
binary classification tree, validated on construction so that
consumers can traverse it without re-checking its structure.
*/
package tree

import (
	"fmt"
	"strings"
)

/*
Tree is an immutable binary classification tree. It is built once
with New, which validates the whole structure, and is then safe to
share for the rest of the session.
*/
type Tree struct {
	root    *Node
	nodes   map[int]*Node
	parents map[int]*Node
	order   []*Node
}

/*
New takes the root node of a fully-built tree, validates the
structure hanging from it and returns a Tree indexing its nodes,
or an error describing the first violation found.

A tree is refused when it has no root, a node id appears more than
once, a node is reachable through two different parents (a cycle
or a shared subtree), a leaf carries a split feature or children,
an internal node does not have exactly two non-nil children, or a
node has a negative sample count.
*/
func New(root *Node) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("validating tree: no root node")
	}
	t := &Tree{
		root:    root,
		nodes:   make(map[int]*Node),
		parents: make(map[int]*Node),
	}
	visited := make(map[*Node]bool)
	err := t.index(root, nil, visited)
	if err != nil {
		return nil, fmt.Errorf("validating tree: %v", err)
	}
	return t, nil
}

func (t *Tree) index(n *Node, parent *Node, visited map[*Node]bool) error {
	if visited[n] {
		return fmt.Errorf("node %d is reachable through more than one parent", n.ID)
	}
	visited[n] = true
	if _, taken := t.nodes[n.ID]; taken {
		return fmt.Errorf("duplicate node id %d", n.ID)
	}
	if n.Samples < 0 {
		return fmt.Errorf("node %d has negative sample count %d", n.ID, n.Samples)
	}
	if n.Leaf {
		if n.Feature != "" {
			return fmt.Errorf("leaf node %d has split feature %q", n.ID, n.Feature)
		}
		if len(n.Children) > 0 {
			return fmt.Errorf("leaf node %d has %d children", n.ID, len(n.Children))
		}
	} else {
		if n.Feature == "" {
			return fmt.Errorf("internal node %d has no split feature", n.ID)
		}
		if len(n.Children) != 2 {
			return fmt.Errorf("internal node %d has %d children instead of 2", n.ID, len(n.Children))
		}
		for _, c := range n.Children {
			if c == nil {
				return fmt.Errorf("internal node %d has a dangling child reference", n.ID)
			}
		}
	}
	t.nodes[n.ID] = n
	t.parents[n.ID] = parent
	t.order = append(t.order, n)
	for _, c := range n.Children {
		if err := t.index(c, n, visited); err != nil {
			return err
		}
	}
	return nil
}

/*
Root returns the root node of the tree.
*/
func (t *Tree) Root() *Node {
	return t.root
}

/*
Get takes a node id and returns the node with that id, or nil if
the tree has no such node.
*/
func (t *Tree) Get(id int) *Node {
	return t.nodes[id]
}

/*
Parent takes a node id and returns the parent of the node with
that id, or nil if the id is unknown or belongs to the root.
*/
func (t *Tree) Parent(id int) *Node {
	return t.parents[id]
}

/*
Len returns the number of nodes in the tree.
*/
func (t *Tree) Len() int {
	return len(t.order)
}

/*
Nodes returns every node of the tree in preorder. The returned
slice is shared and must not be modified.
*/
func (t *Tree) Nodes() []*Node {
	return t.order
}

/*
Edges returns every parent-to-child edge of the tree, in the
preorder of the parent nodes.
*/
func (t *Tree) Edges() []Edge {
	edges := make([]Edge, 0, len(t.order)-1)
	for _, n := range t.order {
		for _, c := range n.Children {
			edges = append(edges, Edge{Source: n.ID, Target: c.ID})
		}
	}
	return edges
}

/*
Ancestors takes a node id and returns the chain of node ids from
the root down to that node, both inclusive, and true; or nil and
false if the id is unknown.
*/
func (t *Tree) Ancestors(id int) ([]int, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	var chain []int
	for n != nil {
		chain = append(chain, n.ID)
		n = t.parents[n.ID]
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, true
}

func (t *Tree) String() string {
	return t.subtreeString(t.root)
}

func (t *Tree) subtreeString(n *Node) string {
	result := fmt.Sprintf("[%d]\n", n.ID)
	if n.Leaf {
		verdict := "died"
		if n.PredictedClass == 1 {
			verdict = "survived"
		}
		result = fmt.Sprintf("%s{ predict %s (p=%.3f, %d samples) }\n", result, verdict, n.Probability, n.Samples)
	} else {
		result = fmt.Sprintf("%s{ %s <= %.2f (%d samples) }\n", result, n.Feature, n.Threshold, n.Samples)
	}
	if len(n.Children) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	}
	for i, c := range n.Children {
		for j, line := range strings.Split(t.subtreeString(c), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(n.Children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
