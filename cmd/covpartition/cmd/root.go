package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "covpartition",
	Short: "partition a workspace polygon into coverage cells for a robot team",
	Long: `covpartition loads a workspace polygon and its initial per-robot
decomposition, iteratively re-optimizes the boundary between adjacent
cells to reduce each robot's coverage cost, and reports the cost vector
before and after.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
