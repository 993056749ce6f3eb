package tree

/*
Node is a node of a classification tree. Internal nodes carry a
split on a feature; leaves carry a final prediction. Sample and
class counts are kept on every node so consumers can display the
class distribution at any point of a path.
*/
type Node struct {
	// An ID to identify the node, unique and stable for the
	// lifetime of the tree.
	ID int
	// Leaf indicates whether the node is a leaf of the tree.
	Leaf bool
	// The feature the node splits on. Empty for leaves.
	Feature string
	// The split threshold: samples whose value for the split
	// feature is less than or equal to it continue into
	// Children[0], the rest into Children[1].
	Threshold float64
	// The left and right subtrees, in that order. Nil for
	// leaves.
	Children []*Node
	// The number of training samples that reached this node.
	Samples int
	// The number of those samples in class 0 (died) and in
	// class 1 (survived) respectively.
	Class0 int
	Class1 int
	// The majority class among the samples at this node.
	PredictedClass int
	// The fraction of class-1 samples at this node.
	Probability float64
	// Optional captions for the edges into Children[0] and
	// Children[1], e.g. "female"/"male" on an encoded sex
	// split.
	LeftLabel  string
	RightLabel string
}

/*
Edge identifies a parent-to-child connection between two nodes of
a tree by their IDs.
*/
type Edge struct {
	Source int
	Target int
}
