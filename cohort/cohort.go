/*
Package cohort names hypothetical passenger profiles: built-in
presets for quick exploration, priority-based matching of a
profile to its best-known cohort, and parsing of free-text
passenger descriptions into feature vectors.
*/
package cohort

import (
	"fmt"
	"sort"

	"github.com/exploratory-ai/treelight/feature"
)

/*
Cohort is a named feature vector representing one hypothetical
profile, usable as one side of a two-cohort comparison.
*/
type Cohort struct {
	Key    string
	Label  string
	Values feature.Vector
}

// Average fare by passenger class, from historical Titanic data.
var classAvgFares = map[int]float64{
	1: 84.0,
	2: 20.0,
	3: 13.0,
}

/*
ClassAvgFare returns the historical average fare for the given
passenger class, or 0 for an unknown class.
*/
func ClassAvgFare(pclass int) float64 {
	return classAvgFares[pclass]
}

var presets = []Cohort{
	{
		Key:    "woman-path",
		Label:  "Women's path (high survival)",
		Values: feature.Vector{feature.Sex: 0, feature.Pclass: 2, feature.Age: 30, feature.Fare: 20.0},
	},
	{
		Key:    "man-path",
		Label:  "Men's path (low survival)",
		Values: feature.Vector{feature.Sex: 1, feature.Pclass: 3, feature.Age: 30, feature.Fare: 13.0},
	},
	{
		Key:    "first-class-child",
		Label:  "1st class child (best odds)",
		Values: feature.Vector{feature.Sex: 0, feature.Pclass: 1, feature.Age: 5, feature.Fare: 84.0},
	},
	{
		Key:    "third-class-male",
		Label:  "3rd class male (worst odds)",
		Values: feature.Vector{feature.Sex: 1, feature.Pclass: 3, feature.Age: 40, feature.Fare: 8.0},
	},
}

/*
Presets returns the built-in quick-exploration cohorts.
*/
func Presets() []Cohort {
	out := make([]Cohort, len(presets))
	for i, p := range presets {
		out[i] = Cohort{Key: p.Key, Label: p.Label, Values: p.Values.Clone()}
	}
	return out
}

/*
Preset takes a preset key and returns the cohort with that key
and true, or a zero cohort and false if the key is unknown.
*/
func Preset(key string) (Cohort, bool) {
	for _, p := range presets {
		if p.Key == key {
			return Cohort{Key: p.Key, Label: p.Label, Values: p.Values.Clone()}, true
		}
	}
	return Cohort{}, false
}

/*
Pattern describes one known cohort: the criteria a profile must
meet to match it and the educational context shown when it does.
More specific patterns carry a higher priority.
*/
type Pattern struct {
	Key      string
	Label    string
	Priority int
	// Criteria; nil means the pattern does not constrain that
	// feature.
	Sex      *float64
	Pclass   *float64
	AgeRange *[2]float64
	Response string
}

func code(v float64) *float64 {
	return &v
}

var patterns = []Pattern{
	{
		Key:      "first-class-child",
		Label:    "1st Class Child",
		Priority: 3,
		Pclass:   code(1),
		AgeRange: &[2]float64{0, 12},
		Response: "First class children had the best odds. Children, especially in 1st and 2nd class, had high survival rates.",
	},
	{
		Key:      "third-class-male",
		Label:    "3rd Class Male",
		Priority: 2,
		Sex:      code(1),
		Pclass:   code(3),
		Response: "Third class males had the worst odds (24% survival rate). They were located furthest from lifeboats and had limited access to the deck.",
	},
	{
		Key:      "first-class",
		Label:    "1st Class Passenger",
		Priority: 2,
		Pclass:   code(1),
		Response: "First class passengers had a 63% survival rate (136 survived out of 216). Wealth and proximity to lifeboats mattered.",
	},
	{
		Key:      "third-class",
		Label:    "3rd Class Passenger",
		Priority: 2,
		Pclass:   code(3),
		Response: "Third class passengers had the worst odds (119 survived out of 491, 24% survival rate). They were located furthest from lifeboats.",
	},
	{
		Key:      "women",
		Label:    "Woman Passenger",
		Priority: 1,
		Sex:      code(0),
		Response: "Women had a 74% survival rate. The 'women and children first' protocol was largely followed.",
	},
	{
		Key:      "men",
		Label:    "Man Passenger",
		Priority: 1,
		Sex:      code(1),
		Response: "Men had only a 19% survival rate (109 survived out of 577).",
	},
}

/*
Match takes a profile vector and returns the best matching cohort
pattern and true, trying patterns from most to least specific, or
a zero pattern and false when no pattern matches.
*/
func Match(v feature.Vector) (Pattern, bool) {
	sorted := make([]Pattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	for _, p := range sorted {
		if p.Sex != nil && v[feature.Sex] != *p.Sex {
			continue
		}
		if p.Pclass != nil && v[feature.Pclass] != *p.Pclass {
			continue
		}
		if p.AgeRange != nil {
			age := v[feature.Age]
			if age < p.AgeRange[0] || age > p.AgeRange[1] {
				continue
			}
		}
		return p, true
	}
	return Pattern{}, false
}

/*
Describe takes a profile vector and formats it into a
human-readable passenger description like "30-year-old female in
2nd class, £20 fare".
*/
func Describe(v feature.Vector) string {
	sexLabel := "female"
	if v[feature.Sex] == 1 {
		sexLabel = "male"
	}
	classLabels := map[int]string{1: "1st class", 2: "2nd class", 3: "3rd class"}
	classLabel, ok := classLabels[int(v[feature.Pclass])]
	if !ok {
		classLabel = fmt.Sprintf("class %v", v[feature.Pclass])
	}
	return fmt.Sprintf("%d-year-old %s in %s, £%.0f fare", int(v[feature.Age]), sexLabel, classLabel, v[feature.Fare])
}
