package cmd

import (
	"github.com/spf13/cobra"

	"github.com/isahakgaming-beep/thunderclient/gui"
)

var guiCmd = &cobra.Command{
	Use:    "gui",
	Short:  "Start the Thunder Client desktop app",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		gui.Start(newOrchestrator(nil), newLauncher())
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
