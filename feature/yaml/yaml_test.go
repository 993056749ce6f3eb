package yaml

import (
	"testing"

	"github.com/exploratory-ai/treelight/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadataYML = `
features:
  sex: [0, 1]
  pclass: [1, 2, 3]
  age: continuous
  fare: continuous
`

func TestReadFeatures(t *testing.T) {
	fields, err := ReadFeatures([]byte(metadataYML))
	require.NoError(t, err)
	require.Len(t, fields, 4)

	byName := map[string]feature.Feature{}
	for _, f := range fields {
		byName[f.Name()] = f
	}

	sex, ok := byName[feature.Sex].(*feature.Discrete)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, sex.Codes())
	_, ok = byName[feature.Age].(*feature.Continuous)
	assert.True(t, ok)

	err = fields.Validate(feature.Vector{feature.Sex: 0, feature.Pclass: 2, feature.Age: 30, feature.Fare: 20})
	assert.NoError(t, err)
	err = fields.Validate(feature.Vector{feature.Pclass: 5})
	assert.Error(t, err)
}

func TestReadFeaturesErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		yml  string
	}{
		{"not yml", ":\n-"},
		{"no features", "other: thing"},
		{"bad declaration string", "features:\n  sex: sometimes"},
		{"bad code type", "features:\n  sex: [zero, one]"},
		{"bad declaration type", "features:\n  sex: 7"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadFeatures([]byte(tc.yml))
			assert.Error(t, err)
		})
	}
}

func TestReadFeaturesFromMissingFile(t *testing.T) {
	_, err := ReadFeaturesFromFile("testdata/does-not-exist.yml")
	assert.Error(t, err)
}
