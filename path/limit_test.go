package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitFull(t *testing.T) {
	p := Path{0, 1, 2, 3}

	assert.Equal(t, p, Limit(p, Full()))
}

func TestLimitFirstSplit(t *testing.T) {
	assert.Equal(t, Path{0, 1}, Limit(Path{0, 1, 2, 3}, FirstSplit()))
	// Clipped to the path's actual length when shorter.
	assert.Equal(t, Path{0}, Limit(Path{0}, FirstSplit()))
	assert.Equal(t, Path{}, Limit(Path{}, FirstSplit()))
}

func TestLimitDepth(t *testing.T) {
	p := Path{0, 1, 2, 3}

	assert.Equal(t, Path{0}, Limit(p, Depth(0)))
	assert.Equal(t, Path{0, 1, 2}, Limit(p, Depth(2)))
	assert.Equal(t, p, Limit(p, Depth(3)))
	assert.Equal(t, p, Limit(p, Depth(10)))
}

func TestLimitDepthBounds(t *testing.T) {
	p := Path{0, 1, 2, 3}
	for n := 0; n < 6; n++ {
		want := n + 1
		if want > len(p) {
			want = len(p)
		}
		assert.Len(t, Limit(p, Depth(n)), want)
	}
}

func TestModeTutorial(t *testing.T) {
	assert.False(t, Full().Tutorial())
	assert.True(t, FirstSplit().Tutorial())
	assert.True(t, Depth(2).Tutorial())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "full", Full().String())
	assert.Equal(t, "first-split", FirstSplit().String())
	assert.Equal(t, "depth(2)", Depth(2).String())
}
