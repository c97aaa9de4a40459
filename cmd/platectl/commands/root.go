package commands

import "github.com/spf13/cobra"

// rootCmd is the base command when platectl is called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "platectl",
	Short: "platectl - 384-well plate layout planner",
	Long: `platectl plans physical layouts for 384-well assay plates and computes
reagent-mix volumes per target, without a running server. Requests are the
same JSON documents the planner-api accepts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}
