/*
Package render prints a highlighted tree as text. It is the
in-repo consumer of the highlight tag maps: every identity,
outcome, final and hover tag ends up as a plain-text marker on
the node or edge line it belongs to. Geometry, colors and any
other pixel concern stay with external renderers.
*/
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/exploratory-ai/treelight/highlight"
	"github.com/exploratory-ai/treelight/tree"
)

/*
Tree writes the given tree onto the io.Writer, one node per line
in the usual branch layout, decorated with the tags the map
assigns to each node and to each incoming edge. An error is
returned if the writer fails.
*/
func Tree(t *tree.Tree, m highlight.Map, w io.Writer) error {
	if t == nil {
		return nil
	}
	_, err := io.WriteString(w, subtree(t, m, t.Root()))
	return err
}

func subtree(t *tree.Tree, m highlight.Map, n *tree.Node) string {
	result := fmt.Sprintf("%s\n", nodeLine(n, m.Nodes[n.ID]))
	if len(n.Children) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	}
	for i, c := range n.Children {
		caption := edgeCaption(n, i)
		mark := edgeMark(m.Edges[tree.Edge{Source: n.ID, Target: c.ID}])
		for j, line := range strings.Split(subtree(t, m, c), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s%s%s\n", result, caption, mark, line)
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

func nodeLine(n *tree.Node, state highlight.NodeState) string {
	var line string
	if n.Leaf {
		verdict := "died"
		if n.PredictedClass == 1 {
			verdict = "survived"
		}
		line = fmt.Sprintf("[%d] predict %s (p=%.3f, %d samples)", n.ID, verdict, n.Probability, n.Samples)
	} else {
		line = fmt.Sprintf("[%d] %s <= %.2f (%d samples)", n.ID, n.Feature, n.Threshold, n.Samples)
	}
	if state.Identity != highlight.IdentityNone {
		line = fmt.Sprintf("%s [%s]", line, state.Identity)
	}
	if state.Final {
		line = fmt.Sprintf("%s [final]", line)
	}
	if state.Hover {
		line = fmt.Sprintf("%s [hover]", line)
	}
	return line
}

func edgeCaption(parent *tree.Node, childIndex int) string {
	if childIndex == 0 {
		if parent.LeftLabel != "" {
			return fmt.Sprintf("%s: ", parent.LeftLabel)
		}
		return fmt.Sprintf("<= %.2f: ", parent.Threshold)
	}
	if parent.RightLabel != "" {
		return fmt.Sprintf("%s: ", parent.RightLabel)
	}
	return fmt.Sprintf("> %.2f: ", parent.Threshold)
}

func edgeMark(state highlight.EdgeState) string {
	var parts []string
	if state.Identity != highlight.IdentityNone {
		parts = append(parts, state.Identity.String())
	}
	if state.Outcome != highlight.OutcomeNone {
		parts = append(parts, state.Outcome.String())
	}
	if state.Hover {
		parts = append(parts, "hover")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s) ", strings.Join(parts, " "))
}
