package cohort

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/exploratory-ai/treelight/feature"
)

var (
	femaleWords = []string{"woman", "women", "female", "lady", "ladies", "girl"}
	maleWords   = []string{"man", "men", "male", "gentleman", "boy"}

	firstClassPhrases  = []string{"1st class", "first class", "upper class", "wealthy", "rich"}
	secondClassPhrases = []string{"2nd class", "second class", "middle class"}
	thirdClassPhrases  = []string{"3rd class", "third class", "lower class", "poor", "cheap"}

	childWords  = []string{"child", "children", "kid", "young", "baby", "infant"}
	seniorWords = []string{"elderly", "senior", "older", "old"}
	adultWords  = []string{"adult", "middle-aged", "middle aged"}

	agePattern = regexp.MustCompile(`\b(\d+)[\s-]*(year|yr|y\.o\.|old)?\b`)
)

/*
ParseQuery takes a free-text passenger description like "a woman
in 1st class" or "young boy in 3rd" and returns the profile
vector it describes and true. At least a sex or a passenger class
must be recognizable in the text; otherwise nil and false are
returned.

Unstated values fall back to the same defaults the dashboard
uses: age 30, 2nd class, female, and the class's historical
average fare. The female word list is checked before the male
one, since "woman" and "women" contain "man" and "men" as
substrings.
*/
func ParseQuery(query string) (feature.Vector, bool) {
	q := strings.ToLower(query)

	sex := -1.0
	if containsAny(q, femaleWords) {
		sex = 0
	} else if containsAny(q, maleWords) {
		sex = 1
	}

	pclass := 0
	if containsAny(q, firstClassPhrases) {
		pclass = 1
	} else if containsAny(q, secondClassPhrases) {
		pclass = 2
	} else if containsAny(q, thirdClassPhrases) {
		pclass = 3
	}

	age := -1.0
	switch {
	case containsAny(q, childWords):
		age = 8
	case containsAny(q, seniorWords):
		age = 65
	case containsAny(q, adultWords):
		age = 35
	default:
		if m := agePattern.FindStringSubmatch(q); m != nil {
			if parsed, err := strconv.Atoi(m[1]); err == nil {
				age = float64(parsed)
			}
		}
	}
	if age < 0 {
		age = 30
	}

	if sex < 0 && pclass == 0 {
		return nil, false
	}
	if sex < 0 {
		sex = 0
	}
	if pclass == 0 {
		pclass = 2
	}
	fare := ClassAvgFare(pclass)

	return feature.Vector{
		feature.Sex:    sex,
		feature.Pclass: float64(pclass),
		feature.Age:    age,
		feature.Fare:   fare,
	}, true
}

func containsAny(q string, words []string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
