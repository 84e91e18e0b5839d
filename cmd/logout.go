package cmd

import (
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var logoutForce bool

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"signout", "reset"},
	Short:   "Sign out and clear all cached tokens",
	Run: func(cmd *cobra.Command, args []string) {
		if !logoutForce {
			prompt := promptui.Prompt{
				Label:     "Sign out and forget this account",
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				logger.Info("Aborting")
				return
			}
		}

		if err := newOrchestrator(nil).Reset(); err != nil {
			logger.Fail(err.Error())
		}
		logger.Info("Signed out")
	},
}

func init() {
	logoutCmd.Flags().BoolVarP(&logoutForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(logoutCmd)
}
