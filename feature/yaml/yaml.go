/*
Package yaml provides methods to parse feature.Feature
specifications, also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/exploratory-ai/treelight/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification
in YML and returns the features parsed from it or an error.
The YML is expected to be an object containing a features
property. The value for this should be an object with a property
for each feature with its name and either a string value of
'continuous' for continuous features or a list of valid numeric
codes for discrete features.
*/
func ReadFeatures(md []byte) (feature.Fields, error) {
	metadata := struct {
		Features map[string]interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := feature.Fields{}
	for fn, vs := range metadata.Features {
		switch values := vs.(type) {
		case string:
			if values != "continuous" {
				return nil, fmt.Errorf("invalid declaration %q for feature %s", values, fn)
			}
			features = append(features, feature.NewContinuous(fn))
		case []interface{}:
			codes := []float64{}
			for _, v := range values {
				c, err := numericCode(v)
				if err != nil {
					return nil, fmt.Errorf("parsing codes for feature %s: %v", fn, err)
				}
				codes = append(codes, c)
			}
			features = append(features, feature.NewDiscrete(fn, codes))
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T", vs)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents
and uses ReadFeatures to parse it and return the parsed features
or an error. If the file indicated by the filepath cannot be
opened for reading an error will be returned.
*/
func ReadFeaturesFromFile(filepath string) (feature.Fields, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}

func numericCode(v interface{}) (float64, error) {
	switch value := v.(type) {
	case int:
		return float64(value), nil
	case float64:
		return value, nil
	default:
		return 0, fmt.Errorf("expected numeric code, got %T value %v", v, v)
	}
}
