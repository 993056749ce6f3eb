package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treelight",
		Short: "treelight explains decision-tree predictions",
		Long:  `A tool to trace the paths a pre-trained classification tree takes for hypothetical passenger profiles, compare how two cohorts' paths diverge, and replay the guided tutorial`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), traceCmd(config), compareCmd(config), tutorialCmd(config))
	return rootCmd
}
