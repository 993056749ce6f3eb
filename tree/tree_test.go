package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(id, samples, class0, class1 int) *Node {
	predicted := 0
	if class1 > class0 {
		predicted = 1
	}
	return &Node{
		ID:             id,
		Leaf:           true,
		Samples:        samples,
		Class0:         class0,
		Class1:         class1,
		PredictedClass: predicted,
		Probability:    float64(class1) / float64(samples),
	}
}

func split(id int, feature string, threshold float64, left, right *Node) *Node {
	return &Node{
		ID:        id,
		Feature:   feature,
		Threshold: threshold,
		Children:  []*Node{left, right},
		Samples:   left.Samples + right.Samples,
		Class0:    left.Class0 + right.Class0,
		Class1:    left.Class1 + right.Class1,
	}
}

func sexSplitTree(t *testing.T) *Tree {
	t.Helper()
	root := split(0, "sex", 0.5, leaf(1, 259, 67, 192), leaf(2, 455, 368, 87))
	tr, err := New(root)
	require.NoError(t, err)
	return tr
}

func TestNewIndexesTree(t *testing.T) {
	tr := sexSplitTree(t)

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 0, tr.Root().ID)
	require.NotNil(t, tr.Get(1))
	assert.Equal(t, 1, tr.Get(1).PredictedClass)
	assert.Nil(t, tr.Get(42))
	assert.Nil(t, tr.Parent(0))
	require.NotNil(t, tr.Parent(2))
	assert.Equal(t, 0, tr.Parent(2).ID)
}

func TestNewRejectsMalformedTrees(t *testing.T) {
	cases := []struct {
		name string
		root *Node
	}{
		{"nil root", nil},
		{"leaf with feature", &Node{ID: 0, Leaf: true, Feature: "sex", Samples: 10}},
		{"leaf with children", &Node{ID: 0, Leaf: true, Samples: 10, Children: []*Node{leaf(1, 5, 2, 3), leaf(2, 5, 4, 1)}}},
		{"internal with one child", &Node{ID: 0, Feature: "sex", Threshold: 0.5, Children: []*Node{leaf(1, 5, 2, 3)}}},
		{"internal without feature", &Node{ID: 0, Children: []*Node{leaf(1, 5, 2, 3), leaf(2, 5, 4, 1)}}},
		{"dangling child", &Node{ID: 0, Feature: "sex", Threshold: 0.5, Children: []*Node{leaf(1, 5, 2, 3), nil}}},
		{"duplicate id", split(0, "sex", 0.5, leaf(1, 5, 2, 3), leaf(1, 5, 4, 1))},
		{"negative sample count", &Node{ID: 0, Leaf: true, Samples: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := New(tc.root)
			assert.Error(t, err)
			assert.Nil(t, tr)
		})
	}
}

func TestNewRejectsCycles(t *testing.T) {
	shared := leaf(3, 5, 2, 3)
	left := split(1, "age", 18, shared, leaf(4, 5, 4, 1))
	right := split(2, "fare", 20, shared, leaf(5, 5, 1, 4))
	_, err := New(split(0, "sex", 0.5, left, right))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one parent")
}

func TestEdges(t *testing.T) {
	tr := sexSplitTree(t)

	assert.Equal(t, []Edge{{Source: 0, Target: 1}, {Source: 0, Target: 2}}, tr.Edges())
}

func TestAncestors(t *testing.T) {
	root := split(0, "pclass", 2.5,
		split(1, "sex", 0.5, leaf(3, 100, 20, 80), leaf(4, 120, 90, 30)),
		split(2, "sex", 0.5, leaf(5, 140, 60, 80), leaf(6, 354, 300, 54)))
	tr, err := New(root)
	require.NoError(t, err)

	chain, ok := tr.Ancestors(5)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 5}, chain)

	chain, ok = tr.Ancestors(0)
	require.True(t, ok)
	assert.Equal(t, []int{0}, chain)

	_, ok = tr.Ancestors(42)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	out := sexSplitTree(t).String()

	assert.Contains(t, out, "[0]")
	assert.Contains(t, out, "sex <= 0.50")
	assert.Contains(t, out, "{ predict survived (p=0.741, 259 samples) }")
	assert.Contains(t, out, "{ predict died (p=0.191, 455 samples) }")
}
