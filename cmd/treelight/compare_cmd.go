package main

import (
	"context"
	"fmt"
	"os"

	"github.com/exploratory-ai/treelight"
	"github.com/exploratory-ai/treelight/cohort"
	"github.com/exploratory-ai/treelight/feature"
	"github.com/exploratory-ai/treelight/path"
	"github.com/exploratory-ai/treelight/render"
	"github.com/exploratory-ai/treelight/tree"
	"github.com/spf13/cobra"
)

type compareCmdConfig struct {
	*rootCmdConfig
	treeSourceConfig
	profileSourceConfig
	cohortA string
	cohortB string
}

func compareCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &compareCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the paths two cohorts take",
		Long:  `Trace the paths two passenger cohorts take through the tree and print the tree with their shared trunk and each cohort's exclusive branch highlighted`,
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
			cohortA, err := config.resolveProfile(config.cohortA)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			cohortB, err := config.resolveProfile(config.cohortB)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			for _, vErr := range []error{config.validateVector(cohortA.Values), config.validateVector(cohortB.Values)} {
				if vErr != nil {
					fmt.Fprintln(os.Stderr, vErr)
					os.Exit(4)
				}
			}
			engine := treelight.New(t)
			engine.Dual(cohortA.Values, cohortB.Values)
			fmt.Printf("Cohort A: %s (%s)\n", cohort.Describe(cohortA.Values), cohortA.Label)
			printVerdict(t, cohortA.Values)
			fmt.Printf("Cohort B: %s (%s)\n", cohort.Describe(cohortB.Values), cohortB.Label)
			printVerdict(t, cohortB.Values)
			if cohortA.Values.Equal(cohortB.Values) {
				fmt.Println("The cohorts are identical: the whole path is shared.")
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
	cmd.Flags().StringVarP(&(config.cohortA), "cohort-a", "a", "", "first cohort: a preset key, a key from the cohorts file, or a free-text description (required)")
	cmd.Flags().StringVarP(&(config.cohortB), "cohort-b", "b", "", "second cohort, in the same formats (required)")
	return cmd
}

func (ccc *compareCmdConfig) Validate() error {
	if err := ccc.treeSourceConfig.Validate(); err != nil {
		return err
	}
	if ccc.cohortA == "" {
		return fmt.Errorf("required cohort-a flag was not set")
	}
	if ccc.cohortB == "" {
		return fmt.Errorf("required cohort-b flag was not set")
	}
	return nil
}

func printVerdict(t *tree.Tree, v feature.Vector) {
	traced, err := path.Trace(t, v)
	if err != nil {
		fmt.Printf("  no prediction: %v\n", err)
		return
	}
	leafID, _ := traced.Leaf()
	leaf := t.Get(leafID)
	verdict := "died"
	if leaf.PredictedClass == 1 {
		verdict = "survived"
	}
	fmt.Printf("  prediction: %s (%.1f%% survival probability)\n", verdict, leaf.Probability*100)
}
