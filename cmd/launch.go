package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/isahakgaming-beep/thunderclient/internals/auth"
)

var launchVersion string

var launchCmd = &cobra.Command{
	Use:     "launch",
	Aliases: []string{"run", "start"},
	Short:   "Launch Minecraft",
	Run: func(cmd *cobra.Command, args []string) {
		launch()
	},
}

func init() {
	launchCmd.Flags().StringVar(&launchVersion, "version", "", "minecraft version to launch (defaults to "+`"1.21"`+")")
	rootCmd.AddCommand(launchCmd)
}

func launch() {
	orch := newOrchestrator(printDeviceCode)

	// a launch needs a fresh access token. with a cached sign-in this
	// resolves silently, otherwise it walks the user through the device code.
	sess, err := orch.Authenticate(context.Background(), auth.PreferAuto)
	if err != nil {
		if auth.CodeOf(err) == auth.CodeSignInRequired {
			logger.Fail("You need to sign in first. Run \"thunder login\".")
		}
		logger.Fail(err.Error())
	}

	l := newLauncher()
	l.Stdout = os.Stdout
	l.Stderr = os.Stderr

	logger.Headline("Launching Minecraft for " + sess.DisplayName)
	cmd, err := l.Launch(context.Background(), sess, launchVersion)
	if err != nil {
		logger.Fail(err.Error())
	}

	if err := cmd.Wait(); err != nil {
		logger.Warn("Minecraft exited with an error: " + err.Error())
		os.Exit(1)
	}
}
