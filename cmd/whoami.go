package cmd

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"status"},
	Short:   "Show the currently signed in player",
	Run: func(cmd *cobra.Command, args []string) {
		record := newOrchestrator(nil).Status()
		if record == nil {
			logger.Info("Not signed in. Run \"thunder login\" to sign in.")
			return
		}
		logger.Info(record.DisplayName + " (" + record.AccountID + ")")
		logger.Log("signed in " + record.Age())
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
