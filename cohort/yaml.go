package cohort

import (
	"fmt"
	"os"
	"sort"

	"github.com/exploratory-ai/treelight/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadCohorts takes a slice of bytes with cohort definitions in YML
and returns the cohorts parsed from it, sorted by key, or an
error. The YML is expected to be an object containing a cohorts
property whose value is an object with a property per cohort: its
key mapping to an object with a label string and a values object
of feature names to numbers.
*/
func ReadCohorts(data []byte) ([]Cohort, error) {
	doc := struct {
		Cohorts map[string]struct {
			Label  string             `yaml:"label"`
			Values map[string]float64 `yaml:"values"`
		}
	}{}
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml cohorts: %v", err)
	}
	if doc.Cohorts == nil {
		return nil, fmt.Errorf("cohort file has no cohort information")
	}
	cohorts := []Cohort{}
	for key, c := range doc.Cohorts {
		if len(c.Values) == 0 {
			return nil, fmt.Errorf("cohort %s has no values", key)
		}
		values := make(feature.Vector, len(c.Values))
		for f, v := range c.Values {
			values[f] = v
		}
		cohorts = append(cohorts, Cohort{Key: key, Label: c.Label, Values: values})
	}
	sort.Slice(cohorts, func(i, j int) bool { return cohorts[i].Key < cohorts[j].Key })
	return cohorts, nil
}

/*
ReadCohortsFromFile takes a filepath string, reads its contents
and uses ReadCohorts to parse it and return the parsed cohorts or
an error.
*/
func ReadCohortsFromFile(filepath string) ([]Cohort, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading cohorts yml file %s: %v", filepath, err)
	}
	cohorts, err := ReadCohorts(data)
	if err != nil {
		err = fmt.Errorf("parsing cohorts yml file %s: %v", filepath, err)
	}
	return cohorts, err
}
