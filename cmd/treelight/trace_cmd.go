package main

import (
	"context"
	"fmt"
	"os"

	"github.com/exploratory-ai/treelight"
	"github.com/exploratory-ai/treelight/cohort"
	"github.com/exploratory-ai/treelight/path"
	"github.com/exploratory-ai/treelight/render"
	"github.com/spf13/cobra"
)

type traceCmdConfig struct {
	*rootCmdConfig
	treeSourceConfig
	profileSourceConfig
	profile    string
	firstSplit bool
	depth      int
}

func traceCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &traceCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace and highlight the path a profile takes",
		Long:  `Trace the root-to-leaf path the tree takes for a passenger profile and print the tree with the path highlighted and the prediction it leads to`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			l := logger(config.verbose)
			ctx := context.Background()
			t, err := config.loadTree(ctx, l)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			l.Logf("Tree with %d nodes loaded", t.Len())
			profile, err := config.resolveProfile(config.profile)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			err = config.validateVector(profile.Values)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			engine := treelight.New(t)
			engine.Single(profile.Values, config.reveal())
			fmt.Printf("Profile: %s (%s)\n", cohort.Describe(profile.Values), profile.Label)
			if p, matched := cohort.Match(profile.Values); matched {
				fmt.Println(p.Response)
			}
			traced, err := path.Trace(t, profile.Values)
			if err != nil {
				fmt.Printf("No prediction: %v\n", err)
			} else {
				leafID, _ := traced.Leaf()
				leaf := t.Get(leafID)
				verdict := "died"
				if leaf.PredictedClass == 1 {
					verdict = "survived"
				}
				fmt.Printf("Prediction: %s (%.1f%% survival probability)\n", verdict, leaf.Probability*100)
			}
			fmt.Println()
			err = render.Tree(t, engine.Snapshot(), os.Stdout)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.treeSourceConfig.registerFlags(cmd)
	config.profileSourceConfig.registerFlags(cmd)
	cmd.Flags().StringVarP(&(config.profile), "profile", "p", "", "profile to trace: a preset key, a key from the cohorts file, or a free-text description like 'a woman in 1st class' (required)")
	cmd.Flags().BoolVar(&(config.firstSplit), "first-split", false, "reveal only the root and the first split of the path")
	cmd.Flags().IntVarP(&(config.depth), "depth", "d", -1, "reveal only the first depth+1 nodes of the path")
	return cmd
}

func (tcc *traceCmdConfig) Validate() error {
	if err := tcc.treeSourceConfig.Validate(); err != nil {
		return err
	}
	if tcc.profile == "" {
		return fmt.Errorf("required profile flag was not set")
	}
	if tcc.firstSplit && tcc.depth >= 0 {
		return fmt.Errorf("first-split and depth flags cannot be combined")
	}
	return nil
}

func (tcc *traceCmdConfig) reveal() path.Mode {
	if tcc.firstSplit {
		return path.FirstSplit()
	}
	if tcc.depth >= 0 {
		return path.Depth(tcc.depth)
	}
	return path.Full()
}
