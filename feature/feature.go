/*
Package feature provides feature vectors describing hypothetical
profiles and the metadata used to validate them.
*/
package feature

import (
	"fmt"
	"sort"
)

// Canonical feature names of the survival model.
const (
	Sex    = "sex"
	Pclass = "pclass"
	Age    = "age"
	Fare   = "fare"
)

/*
Vector maps feature names to their numeric values for one
profile. Encoded features use their numeric codes (sex: 0 female,
1 male; pclass: 1, 2 or 3).
*/
type Vector map[string]float64

/*
Clone returns an independent copy of the vector.
*/
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	c := make(Vector, len(v))
	for f, value := range v {
		c[f] = value
	}
	return c
}

/*
Equal returns whether the vector and the given one assign the
same value to the same set of features.
*/
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for f, value := range v {
		ov, ok := other[f]
		if !ok || ov != value {
			return false
		}
	}
	return true
}

/*
Feature represents a property of a profile that can be set on a
vector.
*/
type Feature interface {
	Name() string
	Valid(float64) (bool, error)
}

/*
Continuous represents a property that can take any numeric value.
*/
type Continuous struct {
	name string
}

/*
Discrete represents an encoded property that can only take a
value among a finite set of numeric codes.
*/
type Discrete struct {
	name  string
	codes []float64
}

/*
NewContinuous takes a name string and returns a continuous
feature with the given name.
*/
func NewContinuous(name string) *Continuous {
	return &Continuous{name}
}

/*
NewDiscrete takes a name string and a slice of valid numeric
codes and returns a discrete feature with the given name and
codes.
*/
func NewDiscrete(name string, codes []float64) *Discrete {
	return &Discrete{name, codes}
}

/*
Name returns a string with the name of the feature
*/
func (cf *Continuous) Name() string {
	return cf.name
}

/*
Valid receives a float64 value and returns true and nil: any
numeric value is acceptable for a continuous feature.
*/
func (cf *Continuous) Valid(value float64) (bool, error) {
	return true, nil
}

func (cf *Continuous) String() string {
	return cf.name
}

/*
Name returns a string with the name of the feature
*/
func (df *Discrete) Name() string {
	return df.name
}

/*
Valid receives a float64 value and returns a boolean and an
error. When the value is one of the feature's codes the method
returns true and nil, otherwise false and an error describing the
reason.
*/
func (df *Discrete) Valid(value float64) (bool, error) {
	for _, c := range df.codes {
		if c == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown code %v", df.name, value)
}

/*
Codes returns a float64 slice with the codes available for the
feature
*/
func (df *Discrete) Codes() []float64 {
	return df.codes
}

func (df *Discrete) String() string {
	return df.name
}

/*
Fields is a set of features against which whole vectors can be
validated.
*/
type Fields []Feature

/*
Validate takes a vector and checks every one of its values
against the field set. It returns an error naming the first
feature with an invalid value, or a value for a feature the set
does not know about.
*/
func (fs Fields) Validate(v Vector) error {
	byName := make(map[string]Feature, len(fs))
	for _, f := range fs {
		byName[f.Name()] = f
	}
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return fmt.Errorf("validating vector: unknown feature %s", name)
		}
		ok, err := f.Valid(v[name])
		if err != nil {
			return fmt.Errorf("validating vector: %v", err)
		}
		if !ok {
			return fmt.Errorf("validating vector: invalid value %v for feature %s", v[name], name)
		}
	}
	return nil
}
