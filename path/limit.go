package path

import "fmt"

const (
	kindFull = iota
	kindFirstSplit
	kindDepth
)

/*
Mode selects how much of a traced path a progressive reveal shows.
Full shows the whole path; FirstSplit only the root and its first
child; Depth(n) the first n+1 nodes. FirstSplit and Depth are the
tutorial reveals: they exist so an animation script can uncover a
path step by step without re-tracing it.
*/
type Mode struct {
	kind  int
	depth int
}

// Full returns the mode that reveals the whole path.
func Full() Mode {
	return Mode{kind: kindFull}
}

// FirstSplit returns the mode that reveals only the root and its
// first child.
func FirstSplit() Mode {
	return Mode{kind: kindFirstSplit}
}

// Depth returns the mode that reveals the first n+1 nodes of the
// path.
func Depth(n int) Mode {
	return Mode{kind: kindDepth, depth: n}
}

/*
Tutorial returns whether the mode is one of the partial,
progressive-reveal modes as opposed to Full.
*/
func (m Mode) Tutorial() bool {
	return m.kind != kindFull
}

func (m Mode) String() string {
	switch m.kind {
	case kindFirstSplit:
		return "first-split"
	case kindDepth:
		return fmt.Sprintf("depth(%d)", m.depth)
	default:
		return "full"
	}
}

/*
Limit takes a path and a mode and returns the revealed prefix of
the path, clipped to the path's actual length when the path is
shorter than the reveal. Full returns the path unchanged.
*/
func Limit(p Path, m Mode) Path {
	var n int
	switch m.kind {
	case kindFull:
		return p
	case kindFirstSplit:
		n = 2
	case kindDepth:
		n = m.depth + 1
	}
	if n > len(p) {
		n = len(p)
	}
	return p[:n]
}
