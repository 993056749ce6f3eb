/*
Package json provides methods to decode and encode trees in the
nested JSON format the model-serving backend delivers: every node
is an object with its id, class distribution and, on internal
nodes, the split and a two-element children array.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/exploratory-ai/treelight/tree"
)

type node struct {
	ID             int      `json:"id"`
	Feature        *string  `json:"feature"`
	Threshold      *float64 `json:"threshold"`
	Samples        int      `json:"samples"`
	Class0         int      `json:"class_0"`
	Class1         int      `json:"class_1"`
	PredictedClass int      `json:"predicted_class"`
	Probability    float64  `json:"probability"`
	Leaf           bool     `json:"is_leaf"`
	Children       []*node  `json:"children,omitempty"`
	LeftLabel      string   `json:"left_label,omitempty"`
	RightLabel     string   `json:"right_label,omitempty"`
}

/*
ReadTree takes an io.Reader with a tree serialized as nested JSON
and returns the decoded and validated tree or an error. Decoding
goes through tree.New, so a structurally malformed tree is refused
here rather than surfacing later during traversal.
*/
func ReadTree(r io.Reader) (*tree.Tree, error) {
	jn := &node{}
	err := json.NewDecoder(r).Decode(jn)
	if err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	t, err := tree.New(buildNode(jn))
	if err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	return t, nil
}

/*
ReadTreeFile takes a filepath string, reads its contents and uses
ReadTree to parse it and return the decoded tree or an error.
*/
func ReadTreeFile(filepath string) (*tree.Tree, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading tree file %s: %v", filepath, err)
	}
	defer f.Close()
	t, err := ReadTree(f)
	if err != nil {
		err = fmt.Errorf("parsing tree file %s: %v", filepath, err)
	}
	return t, err
}

/*
WriteTree takes a tree and an io.Writer and serializes the tree
onto the io.Writer in the same nested JSON format ReadTree
expects. An error is returned if the tree cannot be written.
*/
func WriteTree(t *tree.Tree, w io.Writer) error {
	err := json.NewEncoder(w).Encode(encodeNode(t.Root()))
	if err != nil {
		return fmt.Errorf("encoding tree: %v", err)
	}
	return nil
}

func buildNode(jn *node) *tree.Node {
	n := &tree.Node{
		ID:             jn.ID,
		Leaf:           jn.Leaf,
		Samples:        jn.Samples,
		Class0:         jn.Class0,
		Class1:         jn.Class1,
		PredictedClass: jn.PredictedClass,
		Probability:    jn.Probability,
		LeftLabel:      jn.LeftLabel,
		RightLabel:     jn.RightLabel,
	}
	if jn.Feature != nil {
		n.Feature = *jn.Feature
	}
	if jn.Threshold != nil {
		n.Threshold = *jn.Threshold
	}
	for _, jc := range jn.Children {
		n.Children = append(n.Children, buildNode(jc))
	}
	return n
}

func encodeNode(n *tree.Node) *node {
	jn := &node{
		ID:             n.ID,
		Leaf:           n.Leaf,
		Samples:        n.Samples,
		Class0:         n.Class0,
		Class1:         n.Class1,
		PredictedClass: n.PredictedClass,
		Probability:    n.Probability,
		LeftLabel:      n.LeftLabel,
		RightLabel:     n.RightLabel,
	}
	if !n.Leaf {
		f := n.Feature
		th := n.Threshold
		jn.Feature = &f
		jn.Threshold = &th
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, encodeNode(c))
	}
	return jn
}
