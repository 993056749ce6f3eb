package cohort

import (
	"testing"

	"github.com/exploratory-ai/treelight/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	for _, tc := range []struct {
		query string
		want  feature.Vector
	}{
		{
			query: "show me a woman in 1st class",
			want:  feature.Vector{feature.Sex: 0, feature.Pclass: 1, feature.Age: 30, feature.Fare: 84},
		},
		{
			query: "a young boy in 3rd class",
			want:  feature.Vector{feature.Sex: 1, feature.Pclass: 3, feature.Age: 8, feature.Fare: 13},
		},
		{
			query: "wealthy gentleman",
			want:  feature.Vector{feature.Sex: 1, feature.Pclass: 1, feature.Age: 30, feature.Fare: 84},
		},
		{
			query: "an elderly lady",
			want:  feature.Vector{feature.Sex: 0, feature.Pclass: 2, feature.Age: 65, feature.Fare: 20},
		},
		{
			query: "a 25 yr man in second class",
			want:  feature.Vector{feature.Sex: 1, feature.Pclass: 2, feature.Age: 25, feature.Fare: 20},
		},
		{
			query: "poor passenger",
			want:  feature.Vector{feature.Sex: 0, feature.Pclass: 3, feature.Age: 30, feature.Fare: 13},
		},
	} {
		t.Run(tc.query, func(t *testing.T) {
			v, ok := ParseQuery(tc.query)
			require.True(t, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestParseQueryFemaleBeforeMale(t *testing.T) {
	// "women" contains "men" as a substring, so the female word
	// list must win.
	v, ok := ParseQuery("women in third class")
	require.True(t, ok)
	assert.Equal(t, 0.0, v[feature.Sex])
}

func TestParseQueryAgeWordsBeatExplicitAge(t *testing.T) {
	// "old" in "45 year old" matches the senior word list, which
	// takes precedence over the numeric age.
	v, ok := ParseQuery("a 45 year old woman")
	require.True(t, ok)
	assert.Equal(t, 65.0, v[feature.Age])
}

func TestParseQueryUnrecognized(t *testing.T) {
	for _, query := range []string{"", "what happened to the ship", "42"} {
		v, ok := ParseQuery(query)
		assert.False(t, ok, "query %q", query)
		assert.Nil(t, v, "query %q", query)
	}
}
