package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")
}
