package main

import (
	"context"
	"fmt"

	"github.com/exploratory-ai/treelight/cohort"
	"github.com/exploratory-ai/treelight/feature"
	featureyaml "github.com/exploratory-ai/treelight/feature/yaml"
	"github.com/exploratory-ai/treelight/tree"
	treejson "github.com/exploratory-ai/treelight/tree/json"
	"github.com/exploratory-ai/treelight/tree/rediscache"
	"github.com/spf13/cobra"
	"gopkg.in/redis.v5"
)

type treeSourceConfig struct {
	treeInput string
	redisAddr string
	cacheKey  string
}

func (tsc *treeSourceConfig) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(tsc.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON (required)")
	cmd.Flags().StringVar(&(tsc.redisAddr), "redis", "", "address of a redis server on which the fetched tree is cached for the session")
	cmd.Flags().StringVar(&(tsc.cacheKey), "cache-key", "session", "key under which the tree is cached on redis")
}

func (tsc *treeSourceConfig) Validate() error {
	if tsc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (tsc *treeSourceConfig) loadTree(ctx context.Context, l logger) (*tree.Tree, error) {
	if tsc.redisAddr == "" {
		return treejson.ReadTreeFile(tsc.treeInput)
	}
	rc := redis.NewClient(&redis.Options{Addr: tsc.redisAddr})
	cache := rediscache.New(rc, "treelight:tree")
	t, err := cache.Fetch(ctx, tsc.cacheKey)
	if err != nil {
		l.Logf("Ignoring tree cache: %v", err)
	}
	if t != nil {
		l.Logf("Using tree cached under %q", tsc.cacheKey)
		return t, nil
	}
	t, err = treejson.ReadTreeFile(tsc.treeInput)
	if err != nil {
		return nil, err
	}
	err = cache.Store(ctx, tsc.cacheKey, t)
	if err != nil {
		l.Logf("Could not cache tree: %v", err)
	}
	return t, nil
}

type profileSourceConfig struct {
	metadataInput string
	cohortsInput  string
}

func (psc *profileSourceConfig) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(psc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features profiles may set")
	cmd.Flags().StringVarP(&(psc.cohortsInput), "cohorts", "c", "", "path to a YML file with additional cohort presets")
}

/*
resolveProfile turns a profile argument into a cohort: it is
tried as a built-in preset key, then as a key of the custom
cohorts file, then as a free-text passenger description.
*/
func (psc *profileSourceConfig) resolveProfile(profile string) (cohort.Cohort, error) {
	c, ok := cohort.Preset(profile)
	if ok {
		return c, nil
	}
	if psc.cohortsInput != "" {
		custom, err := cohort.ReadCohortsFromFile(psc.cohortsInput)
		if err != nil {
			return cohort.Cohort{}, err
		}
		for _, cc := range custom {
			if cc.Key == profile {
				return cc, nil
			}
		}
	}
	v, ok := cohort.ParseQuery(profile)
	if !ok {
		return cohort.Cohort{}, fmt.Errorf("could not understand profile %q: give a preset key or a description mentioning a sex or a passenger class", profile)
	}
	label := cohort.Describe(v)
	if p, matched := cohort.Match(v); matched {
		label = p.Label
	}
	return cohort.Cohort{Key: "custom", Label: label, Values: v}, nil
}

func (psc *profileSourceConfig) validateVector(v feature.Vector) error {
	if psc.metadataInput == "" {
		return nil
	}
	fields, err := featureyaml.ReadFeaturesFromFile(psc.metadataInput)
	if err != nil {
		return err
	}
	return fields.Validate(v)
}
