package main

import (
	"context"
	"fmt"
	"os"

	"github.com/exploratory-ai/treelight/highlight"
	"github.com/exploratory-ai/treelight/render"
	"github.com/exploratory-ai/treelight/tutorial"
	"github.com/spf13/cobra"
)

type tutorialCmdConfig struct {
	*rootCmdConfig
	treeSourceConfig
}

func tutorialCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &tutorialCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Replay the guided tutorial",
		Long:  `Print every step of the guided tutorial, revealing the example passenger's path through the tree a little further at each step`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.treeSourceConfig.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			l := logger(config.verbose)
			t, err := config.loadTree(context.Background(), l)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			script := tutorial.New()
			for !script.Done() {
				step := script.Current()
				fmt.Printf("Tutorial: Step %d of %d\n", script.StepNumber(), script.Len())
				fmt.Println(step.Message)
				fmt.Println()
				err = render.Tree(t, highlight.Build(t, step.Input()), os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(3)
				}
				fmt.Printf("[%s]\n\n", step.ButtonText)
				script.Advance()
			}
			fmt.Println("Tutorial complete! You're ready to explore. Try the preset buttons or ask questions in the chat.")
		},
	}
	config.treeSourceConfig.registerFlags(cmd)
	return cmd
}
